package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndActiveOrder(t *testing.T) {
	s := NewService(0)

	first := s.Add("saved", SeveritySuccess)
	second := s.Add("failed to reach mentor", SeverityError)

	active := s.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSeverityCoversAllStyles(t *testing.T) {
	s := NewService(0)

	for _, sev := range []Severity{SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo} {
		toast := s.Add("styled", sev)
		assert.Equal(t, sev, toast.Severity)
	}
	assert.Len(t, s.Active(), 4)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewService(0)

	toast := s.Add("hello", SeverityInfo)
	s.Remove(toast.ID)
	s.Remove(toast.ID)
	s.Remove("no-such-id")

	assert.Empty(t, s.Active())
}

func TestToastsExpireIndependently(t *testing.T) {
	s := NewService(30 * time.Millisecond)
	defer s.Shutdown()

	s.Add("first", SeverityInfo)
	time.Sleep(15 * time.Millisecond)
	second := s.Add("second", SeverityInfo)

	// First expires, second is still visible
	require.Eventually(t, func() bool {
		active := s.Active()
		return len(active) == 1 && active[0].ID == second.ID
	}, 200*time.Millisecond, 5*time.Millisecond)

	// Then the second expires too
	require.Eventually(t, func() bool {
		return len(s.Active()) == 0
	}, 200*time.Millisecond, 5*time.Millisecond)
}

func TestManualRemoveBeatsTimer(t *testing.T) {
	s := NewService(time.Hour)
	defer s.Shutdown()

	toast := s.Add("dismiss me", SeverityInfo)
	s.Remove(toast.ID)
	assert.Empty(t, s.Active())
}
