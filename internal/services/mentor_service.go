package services

import (
	"context"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/cache"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"go.uber.org/zap"
)

// MentorService serves the mentor catalog and AI-assisted match searches
type MentorService struct {
	cache        *cache.MentorCache
	collaborator ai.Collaborator
}

// NewMentorService creates the mentor service
func NewMentorService(c *cache.MentorCache, collaborator ai.Collaborator) *MentorService {
	return &MentorService{cache: c, collaborator: collaborator}
}

// List returns the mentor catalog, cached between calls
func (s *MentorService) List(_ context.Context) []models.Mentor {
	if mentors, ok := s.cache.Get(); ok {
		return mentors
	}

	mentors := store.SeedMentors()
	s.cache.Set(mentors)
	return mentors
}

// Match ranks the catalog against a free-text query. The returned mode
// tells the caller whether the live model or the offline engine answered.
func (s *MentorService) Match(ctx context.Context, query string) (*models.MatchSearchResponse, error) {
	mentors := s.List(ctx)

	ranked, mode, err := s.collaborator.MatchMentors(ctx, query, mentors)
	if err != nil {
		return nil, err
	}

	metrics.MentorMatchSearches.WithLabelValues(mode).Inc()
	logger.Info("Mentor match search",
		zap.String("mode", mode),
		zap.Int("catalog_size", len(mentors)))

	return &models.MatchSearchResponse{Mentors: ranked, Mode: mode}, nil
}
