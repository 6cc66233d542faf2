// Package notify implements the toast subsystem: short-lived notifications
// that expire independently a fixed interval after they appear.
package notify

import (
	"sync"
	"time"

	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/google/uuid"
)

// DefaultExpiry matches the on-screen lifetime of a toast
const DefaultExpiry = 3 * time.Second

// Severity styles a toast
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Toast is a single notification
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Service manages active toasts. Each toast gets its own expiry timer, so
// a burst of toasts disappears in the order it appeared, not all at once.
type Service struct {
	mu     sync.Mutex
	toasts []Toast
	timers map[string]*time.Timer
	expiry time.Duration
}

// NewService creates a toast service with the given expiry.
// A non-positive expiry disables automatic removal.
func NewService(expiry time.Duration) *Service {
	return &Service{
		timers: map[string]*time.Timer{},
		expiry: expiry,
	}
}

// Add emits a toast and schedules its removal
func (s *Service) Add(message string, severity Severity) Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	toast := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	s.toasts = append(s.toasts, toast)

	metrics.ToastsEmitted.WithLabelValues(string(severity)).Inc()
	metrics.ActiveToasts.Set(float64(len(s.toasts)))

	if s.expiry > 0 {
		id := toast.ID
		s.timers[id] = time.AfterFunc(s.expiry, func() {
			s.Remove(id)
		})
	}

	return toast
}

// Remove dismisses a toast by id. Removing an unknown or already expired
// toast is a no-op.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}

	metrics.ActiveToasts.Set(float64(len(s.toasts)))
}

// Active returns the currently visible toasts in insertion order
func (s *Service) Active() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Shutdown stops all pending expiry timers
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
