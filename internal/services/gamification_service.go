package services

import (
	"context"
	"errors"
	"sync"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/validation"
)

// ErrNoSlots is returned when availability is saved with no slots
var ErrNoSlots = errors.New("at least one time slot is required")

// GamificationSummary bundles the gamification page data
type GamificationSummary struct {
	Badges  []models.Badge        `json:"badges"`
	Ranking []models.RankingEntry `json:"ranking"`
}

// GamificationService serves badges, the leaderboard and mentor
// availability. Availability is in-memory only: it is display state,
// not part of the persisted store.
type GamificationService struct {
	mu    sync.Mutex
	slots []models.TimeSlot
}

// NewGamificationService creates the service with the seeded availability grid
func NewGamificationService() *GamificationService {
	return &GamificationService{slots: store.SeedTimeSlots()}
}

// Summary returns badges and the ranking, with the current user's row marked
func (s *GamificationService) Summary(_ context.Context, userName string) *GamificationSummary {
	ranking := store.SeedRanking()
	for i := range ranking {
		ranking[i].IsUser = ranking[i].Name == userName
	}

	return &GamificationSummary{
		Badges:  store.SeedBadges(),
		Ranking: ranking,
	}
}

// ValidateRanking guards seeded and future leaderboard rows
func (s *GamificationService) ValidateRanking(entries []models.RankingEntry) error {
	for _, e := range entries {
		if err := validation.ValidatePoints(e.Points); err != nil {
			return err
		}
	}
	return nil
}

// TimeSlots returns the mentor's availability grid
func (s *GamificationService) TimeSlots(_ context.Context) []models.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// SaveTimeSlots replaces the availability grid
func (s *GamificationService) SaveTimeSlots(_ context.Context, slots []models.TimeSlot) error {
	if len(slots) == 0 {
		return ErrNoSlots
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = slots
	return nil
}
