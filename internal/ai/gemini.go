package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/codementor/codementor-api/pkg/circuitbreaker"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiCollaborator talks to the Gemini API for execution prediction and
// mentor matching. Every call is guarded by a circuit breaker and falls
// back to the offline engine instead of surfacing upstream failures.
type GeminiCollaborator struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	breaker  *gobreaker.CircuitBreaker
	fallback *OfflineCollaborator
}

// NewGeminiCollaborator creates the live collaborator. An empty API key is
// not an error: the instance simply reports unavailable and serves
// offline results.
func NewGeminiCollaborator(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiCollaborator, error) {
	g := &GeminiCollaborator{
		model:    model,
		timeout:  timeout,
		breaker:  circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("gemini")),
		fallback: NewOfflineCollaborator(),
	}

	if apiKey == "" {
		logger.Warn("No Gemini API key configured, AI collaborator will run offline")
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	g.client = client
	logger.Info("Gemini collaborator initialized", zap.String("model", model))
	return g, nil
}

func (g *GeminiCollaborator) IsAvailable() bool {
	return g.client != nil && !circuitbreaker.IsCircuitOpen(g.breaker)
}

// predictionSchema constrains the model to the run-result shape
var predictionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"output":      {Type: genai.TypeString, Description: "Predicted stdout or error text"},
		"explanation": {Type: genai.TypeString, Description: "Short explanation of what the code does"},
	},
	Required: []string{"output", "explanation"},
}

// matchSchema constrains the model to a ranked match list
var matchSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":     {Type: genai.TypeString, Description: "Mentor id from the catalog"},
			"score":  {Type: genai.TypeInteger, Description: "Match score from 0 to 100"},
			"reason": {Type: genai.TypeString, Description: "One sentence explaining the score"},
		},
		Required: []string{"id", "score", "reason"},
	},
}

// PredictExecution asks the model what the code would do when run.
// Oversized code is rejected before any tokens are spent.
func (g *GeminiCollaborator) PredictExecution(ctx context.Context, code, language string) (*models.RunCodeResponse, error) {
	if err := validation.WithinLimit("code", code, validation.MaxCodeLength); err != nil {
		return nil, err
	}

	if g.client == nil {
		metrics.AIFallbackTotal.WithLabelValues("predict_execution", "no_credential").Inc()
		return g.fallback.PredictExecution(ctx, code, language)
	}

	lang := language
	if lang == "" {
		lang = "javascript"
	}

	prompt := fmt.Sprintf(
		"You are a code execution simulator. Predict the exact output of running the following %s code. "+
			"If it would throw, put the error message in output. "+
			"Keep the explanation to two sentences.\n\n```%s\n%s\n```",
		lang, lang, code)

	raw, err := g.generateJSON(ctx, "predict_execution", prompt, predictionSchema)
	if err != nil {
		return g.fallback.PredictExecution(ctx, code, language)
	}

	var result models.RunCodeResponse
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Warn("Failed to parse prediction response", zap.Error(err))
		metrics.AIFallbackTotal.WithLabelValues("predict_execution", "parse_failed").Inc()
		return g.fallback.PredictExecution(ctx, code, language)
	}

	result.Mode = ModeAI
	return &result, nil
}

// MatchMentors ranks the catalog against the query. Results always cover
/// the whole catalog: unmentioned mentors get score 0.
func (g *GeminiCollaborator) MatchMentors(ctx context.Context, query string, mentors []models.Mentor) ([]models.Mentor, string, error) {
	if g.client == nil {
		metrics.AIFallbackTotal.WithLabelValues("match_mentors", "no_credential").Inc()
		return g.fallback.MatchMentors(ctx, query, mentors)
	}

	catalog, err := json.Marshal(mentors)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode mentor catalog: %w", err)
	}

	prompt := fmt.Sprintf(
		"A mentee is looking for a mentor. Their request: %q\n\n"+
			"Rank the mentors below by how well they fit. Return an entry for each relevant mentor "+
			"with a score from 0 to 100 and a one sentence reason.\n\nMentor catalog:\n%s",
		query, catalog)

	raw, err := g.generateJSON(ctx, "match_mentors", prompt, matchSchema)
	if err != nil {
		return g.fallback.MatchMentors(ctx, query, mentors)
	}

	var matches []MentorMatch
	if err := json.Unmarshal([]byte(raw), &matches); err != nil {
		logger.Warn("Failed to parse match response", zap.Error(err))
		metrics.AIFallbackTotal.WithLabelValues("match_mentors", "parse_failed").Inc()
		return g.fallback.MatchMentors(ctx, query, mentors)
	}

	return MergeMatches(mentors, matches), ModeAI, nil
}

// generateJSON runs a structured-output generation through the breaker
func (g *GeminiCollaborator) generateJSON(ctx context.Context, operation, prompt string, schema *genai.Schema) (string, error) {
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := circuitbreaker.Execute(g.breaker, func() (string, error) {
		resp, genErr := g.client.Models.GenerateContent(callCtx, g.model,
			genai.Text(prompt),
			&genai.GenerateContentConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema:   schema,
			})
		if genErr != nil {
			return "", genErr
		}
		return resp.Text(), nil
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		status := "error"
		reason := "call_failed"
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			status = "breaker_open"
			reason = "breaker_open"
		}
		metrics.AIRequestDuration.WithLabelValues(operation, status).Observe(duration)
		metrics.AIRequestTotal.WithLabelValues(operation, status).Inc()
		metrics.AIFallbackTotal.WithLabelValues(operation, reason).Inc()
		logger.LogAPICall("gemini", operation, status, duration, zap.Error(err))
		return "", err
	}

	metrics.AIRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.AIRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("gemini", operation, "success", duration)

	return text, nil
}
