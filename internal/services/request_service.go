package services

import (
	"context"
	"errors"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	apperrors "github.com/codementor/codementor-api/pkg/errors"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"go.uber.org/zap"
)

var (
	ErrRequestNotFound         = apperrors.NotFound("session request")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// RequestService implements the mentor's review queue: each pending
// request is decided exactly once.
type RequestService struct {
	store *store.Store
}

// NewRequestService creates the request service
func NewRequestService(s *store.Store) *RequestService {
	return &RequestService{store: s}
}

// List returns session requests, optionally filtered by status
func (s *RequestService) List(ctx context.Context, status models.RequestStatus) ([]models.SessionRequest, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return data.Requests, nil
	}

	filtered := make([]models.SessionRequest, 0, len(data.Requests))
	for _, r := range data.Requests {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// UpdateStatus applies a review decision. The transition guard rejects
// decisions on already-decided requests and re-assertions of the current
// status. The full updated collection is persisted in the same lock.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, target models.RequestStatus) (*models.SessionRequest, error) {
	if !target.IsValid() {
		return nil, ErrInvalidStatusTransition
	}

	var updated *models.SessionRequest

	err := s.store.Update(ctx, func(data *store.StoredData) (store.Partial, error) {
		for i := range data.Requests {
			if data.Requests[i].ID != id {
				continue
			}

			from := data.Requests[i].Status
			if !from.CanTransitionTo(target) {
				return store.Partial{}, ErrInvalidStatusTransition
			}

			data.Requests[i].Status = target
			updated = &data.Requests[i]

			metrics.RequestStatusUpdates.WithLabelValues(string(from), string(target)).Inc()
			logger.Info("Session request reviewed",
				zap.String("request_id", id),
				zap.String("from", string(from)),
				zap.String("to", string(target)))

			return store.Partial{Requests: data.Requests}, nil
		}
		return store.Partial{}, ErrRequestNotFound
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
