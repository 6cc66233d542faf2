package ai

import (
	"context"

	"github.com/codementor/codementor-api/internal/models"
)

// Canned prediction served whenever the live model cannot answer
const (
	offlineOutput      = "// Simulated output\n[1, 2]"
	offlineExplanation = "The AI collaborator is offline, so this is a canned simulation. Configure an API key for real execution predictions."
)

// OfflineCollaborator is the deterministic fallback engine. It never
// errors and never varies its answers.
type OfflineCollaborator struct{}

// NewOfflineCollaborator creates the offline engine
func NewOfflineCollaborator() *OfflineCollaborator {
	return &OfflineCollaborator{}
}

func (o *OfflineCollaborator) IsAvailable() bool {
	return false
}

// PredictExecution returns the fixed canned output/explanation pair
func (o *OfflineCollaborator) PredictExecution(_ context.Context, _, _ string) (*models.RunCodeResponse, error) {
	return &models.RunCodeResponse{
		Output:      offlineOutput,
		Explanation: offlineExplanation,
		Mode:        ModeOffline,
	}, nil
}

// MatchMentors returns the catalog unchanged and unscored
func (o *OfflineCollaborator) MatchMentors(_ context.Context, _ string, mentors []models.Mentor) ([]models.Mentor, string, error) {
	out := make([]models.Mentor, len(mentors))
	copy(out, mentors)
	return out, ModeOffline, nil
}
