package services

import (
	"context"
	"time"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/validation"
	apperrors "github.com/codementor/codementor-api/pkg/errors"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/google/uuid"
)

// ErrProblemNotFound is returned for unknown problem ids
var ErrProblemNotFound = apperrors.NotFound("problem")

// ProblemService serves the practice repository. Problems are immutable
// after seeding; solutions are transient and never persisted.
type ProblemService struct {
	store        *store.Store
	collaborator ai.Collaborator
}

// NewProblemService creates the problem service
func NewProblemService(s *store.Store, collaborator ai.Collaborator) *ProblemService {
	return &ProblemService{store: s, collaborator: collaborator}
}

// List returns the problem repository
func (s *ProblemService) List(ctx context.Context) ([]models.Problem, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return data.Problems, nil
}

// Get returns a single problem by id
func (s *ProblemService) Get(ctx context.Context, id string) (*models.Problem, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range data.Problems {
		if data.Problems[i].ID == id {
			return &data.Problems[i], nil
		}
	}
	return nil, ErrProblemNotFound
}

// SubmitSolution validates the submission and asks the collaborator to
// predict its execution. The solution itself is transient.
func (s *ProblemService) SubmitSolution(ctx context.Context, problemID string, req models.SubmitSolutionRequest) (*models.Solution, *models.RunCodeResponse, error) {
	if err := validation.WithinLimit("code", req.Code, validation.MaxCodeLength); err != nil {
		metrics.SolutionSubmissions.WithLabelValues("rejected").Inc()
		return nil, nil, err
	}

	if _, err := s.Get(ctx, problemID); err != nil {
		return nil, nil, err
	}

	solution := &models.Solution{
		ID:          uuid.NewString(),
		ProblemID:   problemID,
		Code:        req.Code,
		Language:    req.Language,
		SubmittedAt: time.Now(),
	}

	prediction, err := s.collaborator.PredictExecution(ctx, req.Code, req.Language)
	if err != nil {
		metrics.SolutionSubmissions.WithLabelValues("error").Inc()
		return nil, nil, err
	}

	metrics.SolutionSubmissions.WithLabelValues("accepted").Inc()
	return solution, prediction, nil
}
