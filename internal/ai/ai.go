// Package ai implements the AI collaborator: execution prediction for the
// war room editor and mentor match ranking. Every operation degrades to a
// deterministic offline engine when no credential is configured, the
// upstream call fails, or the circuit breaker is open.
package ai

import (
	"context"

	"github.com/codementor/codementor-api/internal/models"
)

// Modes reported alongside results so callers can tell which engine answered
const (
	ModeAI      = "ai"
	ModeOffline = "offline"
)

// MentorMatch is one ranked entry returned by the matching engine
type MentorMatch struct {
	ID     string `json:"id"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Collaborator is the AI surface the services depend on
type Collaborator interface {
	// IsAvailable reports whether the live model can currently be reached
	IsAvailable() bool
	// PredictExecution predicts the outcome of running the given code
	PredictExecution(ctx context.Context, code, language string) (*models.RunCodeResponse, error)
	// MatchMentors ranks the catalog against a free-text query
	MatchMentors(ctx context.Context, query string, mentors []models.Mentor) ([]models.Mentor, string, error)
}

// MergeMatches applies ranked matches onto the mentor catalog. Mentors the
// engine did not mention get score 0 with a stock reason. The result is
// sorted by score, highest first, preserving catalog order on ties.
func MergeMatches(mentors []models.Mentor, matches []MentorMatch) []models.Mentor {
	byID := make(map[string]MentorMatch, len(matches))
	for _, m := range matches {
		byID[m.ID] = m
	}

	merged := make([]models.Mentor, len(mentors))
	copy(merged, mentors)

	for i := range merged {
		if match, ok := byID[merged[i].ID]; ok {
			merged[i].MatchScore = match.Score
			merged[i].MatchReason = match.Reason
		} else {
			merged[i].MatchScore = 0
			merged[i].MatchReason = "No specific match found"
		}
	}

	// Stable sort keeps catalog order for equal scores
	for i := 1; i < len(merged); i++ {
		for j := i; j > 0 && merged[j].MatchScore > merged[j-1].MatchScore; j-- {
			merged[j], merged[j-1] = merged[j-1], merged[j]
		}
	}

	return merged
}
