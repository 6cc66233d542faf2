package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{"pending to accepted", RequestStatusPending, RequestStatusAccepted, true},
		{"pending to rejected", RequestStatusPending, RequestStatusRejected, true},
		{"pending to pending", RequestStatusPending, RequestStatusPending, false},
		{"accepted to rejected", RequestStatusAccepted, RequestStatusRejected, false},
		{"rejected to accepted", RequestStatusRejected, RequestStatusAccepted, false},
		{"accepted to accepted", RequestStatusAccepted, RequestStatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatusTerminal(t *testing.T) {
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.True(t, RequestStatusAccepted.IsTerminal())
	assert.True(t, RequestStatusRejected.IsTerminal())
}

func TestSessionStatusTransitions(t *testing.T) {
	assert.True(t, SessionStatusUpcoming.CanTransitionTo(SessionStatusCompleted))
	assert.True(t, SessionStatusUpcoming.CanTransitionTo(SessionStatusCancelled))
	assert.False(t, SessionStatusUpcoming.CanTransitionTo(SessionStatusUpcoming))
	assert.False(t, SessionStatusCompleted.CanTransitionTo(SessionStatusCancelled))
	assert.False(t, SessionStatusCancelled.CanTransitionTo(SessionStatusUpcoming))
}

func TestUserNeedsOnboarding(t *testing.T) {
	mentee := &User{ID: "u1", Role: RoleMentee}
	assert.True(t, mentee.NeedsOnboarding())

	mentee.Name = "Alex"
	assert.False(t, mentee.NeedsOnboarding())

	mentor := &User{ID: "u2", Role: RoleMentor}
	assert.False(t, mentor.NeedsOnboarding())
}

func TestUserValidate(t *testing.T) {
	u := &User{ID: "u1", Role: RoleMentee, Level: LevelBeginner}
	assert.NoError(t, u.Validate())

	u.Role = "superuser"
	assert.Error(t, u.Validate())

	u.Role = RoleMentee
	u.XP = -5
	assert.Error(t, u.Validate())

	u.XP = 100
	u.Streak = -1
	assert.Error(t, u.Validate())
}

func TestLevelOrdinal(t *testing.T) {
	assert.Less(t, LevelBeginner.Ordinal(), LevelIntermediate.Ordinal())
	assert.Less(t, LevelIntermediate.Ordinal(), LevelAdvanced.Ordinal())
	assert.Equal(t, -1, Level("expert").Ordinal())
}
