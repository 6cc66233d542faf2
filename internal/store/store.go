package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"go.uber.org/zap"
)

// Storage keys. One JSON document per key.
const (
	keyUser     = "user"
	keySessions = "sessions"
	keyRequests = "requests"
	keyProblems = "problems"
)

// StoredData is the full persisted application state
type StoredData struct {
	User     *models.User            `json:"user"`
	Sessions []models.Session        `json:"sessions"`
	Requests []models.SessionRequest `json:"requests"`
	Problems []models.Problem        `json:"problems"`
}

// Partial carries only the fields a caller wants to persist.
// Nil fields are left untouched.
type Partial struct {
	User     *models.User
	Sessions []models.Session
	Requests []models.SessionRequest
	Problems []models.Problem
}

// Store is the typed persistence adapter over a key-value backend.
// A mutex serializes read-modify-write cycles so partial updates from
// concurrent handlers cannot interleave.
type Store struct {
	kv KV
	mu sync.Mutex
}

// New creates a store over the given backend
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Initialize seeds sessions, requests and problems when they are absent.
// The user record is deliberately not seeded: an empty user means the
// client must go through login.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := 0

	if err := s.seedIfAbsent(ctx, keySessions, SeedSessions(), &seeded); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, keyRequests, SeedRequests(), &seeded); err != nil {
		return err
	}
	if err := s.seedIfAbsent(ctx, keyProblems, SeedProblems(), &seeded); err != nil {
		return err
	}

	if seeded > 0 {
		logger.Info("Store initialized with seed data", zap.Int("keys_seeded", seeded))
	}

	return nil
}

func (s *Store) seedIfAbsent(ctx context.Context, key string, value interface{}, seeded *int) error {
	_, exists, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to check key %q: %w", key, err)
	}
	if exists {
		return nil
	}
	if err := s.setJSON(ctx, key, value); err != nil {
		return err
	}
	*seeded++
	return nil
}

// Read loads the full persisted state, applying defaults for missing keys
func (s *Store) Read(ctx context.Context) (*StoredData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(ctx)
}

func (s *Store) readLocked(ctx context.Context) (*StoredData, error) {
	start := time.Now()

	data := &StoredData{
		Sessions: []models.Session{},
		Requests: []models.SessionRequest{},
		Problems: []models.Problem{},
	}

	if err := s.getJSON(ctx, keyUser, &data.User); err != nil {
		s.recordOp("read", "error", start)
		return nil, err
	}
	if err := s.getJSON(ctx, keySessions, &data.Sessions); err != nil {
		s.recordOp("read", "error", start)
		return nil, err
	}
	if err := s.getJSON(ctx, keyRequests, &data.Requests); err != nil {
		s.recordOp("read", "error", start)
		return nil, err
	}
	if err := s.getJSON(ctx, keyProblems, &data.Problems); err != nil {
		s.recordOp("read", "error", start)
		return nil, err
	}

	s.recordOp("read", "success", start)
	return data, nil
}

// Write persists only the fields present in the partial update
func (s *Store) Write(ctx context.Context, partial Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()

	if partial.User != nil {
		if err := s.setJSON(ctx, keyUser, partial.User); err != nil {
			s.recordOp("write", "error", start)
			return err
		}
	}
	if partial.Sessions != nil {
		if err := s.setJSON(ctx, keySessions, partial.Sessions); err != nil {
			s.recordOp("write", "error", start)
			return err
		}
	}
	if partial.Requests != nil {
		if err := s.setJSON(ctx, keyRequests, partial.Requests); err != nil {
			s.recordOp("write", "error", start)
			return err
		}
	}
	if partial.Problems != nil {
		if err := s.setJSON(ctx, keyProblems, partial.Problems); err != nil {
			s.recordOp("write", "error", start)
			return err
		}
	}

	s.recordOp("write", "success", start)
	return nil
}

// Clear wipes all persisted state and reseeds the defaults
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if err := s.kv.Reset(ctx); err != nil {
		s.recordOp("clear", "error", start)
		return err
	}
	s.recordOp("clear", "success", start)

	logger.Info("Store cleared")
	return nil
}

// Update runs fn inside the store lock with a fresh read of the state and
// persists the partial it returns. Callers use it for read-modify-write
// sequences such as status transitions.
func (s *Store) Update(ctx context.Context, fn func(data *StoredData) (Partial, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readLocked(ctx)
	if err != nil {
		return err
	}

	partial, err := fn(data)
	if err != nil {
		return err
	}

	start := time.Now()
	if partial.User != nil {
		if err := s.setJSON(ctx, keyUser, partial.User); err != nil {
			s.recordOp("update", "error", start)
			return err
		}
	}
	if partial.Sessions != nil {
		if err := s.setJSON(ctx, keySessions, partial.Sessions); err != nil {
			s.recordOp("update", "error", start)
			return err
		}
	}
	if partial.Requests != nil {
		if err := s.setJSON(ctx, keyRequests, partial.Requests); err != nil {
			s.recordOp("update", "error", start)
			return err
		}
	}
	if partial.Problems != nil {
		if err := s.setJSON(ctx, keyProblems, partial.Problems); err != nil {
			s.recordOp("update", "error", start)
			return err
		}
	}
	s.recordOp("update", "success", start)
	return nil
}

// Close releases the underlying backend
func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) getJSON(ctx context.Context, key string, out interface{}) error {
	raw, exists, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Corrupt documents fall back to defaults instead of failing reads
		logger.Warn("Discarding corrupt store document",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal key %q: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}

func (s *Store) recordOp(operation, status string, start time.Time) {
	metrics.StoreOperationDuration.WithLabelValues(operation, status).Observe(metrics.MeasureDuration(start))
	metrics.StoreOperationTotal.WithLabelValues(operation, status).Inc()
}
