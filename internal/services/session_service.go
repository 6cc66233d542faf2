package services

import (
	"context"
	"errors"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	apperrors "github.com/codementor/codementor-api/pkg/errors"
)

var (
	ErrSessionNotFound    = apperrors.NotFound("session")
	ErrSessionNotJoinable = errors.New("only upcoming sessions can be joined")
)

// SessionService serves the session history and join checks
type SessionService struct {
	store *store.Store
}

// NewSessionService creates the session service
func NewSessionService(s *store.Store) *SessionService {
	return &SessionService{store: s}
}

// List returns sessions, optionally filtered by status. Sessions are
// never deleted, so filtering is the only narrowing.
func (s *SessionService) List(ctx context.Context, status models.SessionStatus) ([]models.Session, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if status == "" {
		return data.Sessions, nil
	}

	filtered := make([]models.Session, 0, len(data.Sessions))
	for _, sess := range data.Sessions {
		if sess.Status == status {
			filtered = append(filtered, sess)
		}
	}
	return filtered, nil
}

// Get returns a single session by id
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range data.Sessions {
		if data.Sessions[i].ID == id {
			return &data.Sessions[i], nil
		}
	}
	return nil, ErrSessionNotFound
}

// Joinable checks that a session exists and is still upcoming
func (s *SessionService) Joinable(ctx context.Context, id string) (*models.Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.SessionStatusUpcoming {
		return nil, ErrSessionNotJoinable
	}
	return sess, nil
}

// RecordFeedback applies the mentee's rating to a session being closed
// and marks it completed.
func (s *SessionService) RecordFeedback(ctx context.Context, id string, feedback models.SessionFeedback) error {
	return s.store.Update(ctx, func(data *store.StoredData) (store.Partial, error) {
		for i := range data.Sessions {
			if data.Sessions[i].ID != id {
				continue
			}
			if data.Sessions[i].Status.CanTransitionTo(models.SessionStatusCompleted) {
				data.Sessions[i].Status = models.SessionStatusCompleted
			}
			data.Sessions[i].Rating = feedback.Rating
			return store.Partial{Sessions: data.Sessions}, nil
		}
		return store.Partial{}, ErrSessionNotFound
	})
}
