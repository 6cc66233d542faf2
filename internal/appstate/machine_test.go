package appstate

import (
	"strings"
	"testing"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mentee(name string) *models.User {
	return &models.User{ID: "u1", Name: name, Email: "a@b.co", Role: models.RoleMentee, Level: models.LevelBeginner}
}

func TestInitialViewIsAuth(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, ViewAuth, m.State().View)
}

func TestLoginRoutesByRole(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want View
	}{
		{"mentor lands on dashboard", &models.User{ID: "u2", Role: models.RoleMentor}, ViewDashboard},
		{"admin lands on admin dashboard", &models.User{ID: "u3", Role: models.RoleAdmin}, ViewAdminDashboard},
		{"named mentee lands on dashboard", mentee("Alex"), ViewDashboard},
		{"unnamed mentee goes to onboarding", mentee(""), ViewOnboarding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			view, err := m.Login(tt.user)
			require.NoError(t, err)
			assert.Equal(t, tt.want, view)
		})
	}
}

func TestOnboardingFlow(t *testing.T) {
	m := NewMachine()
	_, err := m.Login(mentee(""))
	require.NoError(t, err)
	require.Equal(t, ViewOnboarding, m.State().View)

	// Invalid name blocks
	_, err = m.CompleteOnboarding(models.OnboardingRequest{Name: "1bad", Languages: []string{"Python"}})
	require.Error(t, err)
	assert.Equal(t, ViewOnboarding, m.State().View)

	// No languages blocks
	_, err = m.CompleteOnboarding(models.OnboardingRequest{Name: "Alex"})
	require.Error(t, err)

	// Oversized interests blocks
	_, err = m.CompleteOnboarding(models.OnboardingRequest{
		Name:      "Alex",
		Languages: []string{"Python"},
		Interests: strings.Repeat("x", validation.MaxInterestsLength+1),
	})
	require.Error(t, err)

	user, err := m.CompleteOnboarding(models.OnboardingRequest{
		Name:      "Alex",
		Languages: []string{"Python", "JavaScript"},
		Interests: "distributed systems",
		Level:     models.LevelIntermediate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, models.LevelIntermediate, user.Level)
	assert.Equal(t, ViewDashboard, m.State().View)

	// Onboarding is not repeatable once completed
	_, err = m.CompleteOnboarding(models.OnboardingRequest{Name: "Alex", Languages: []string{"Python"}})
	assert.ErrorIs(t, err, ErrOnboardingOnly)
}

func TestNavigateEnforcesRoleGates(t *testing.T) {
	m := NewMachine()
	_, err := m.Login(mentee("Alex"))
	require.NoError(t, err)

	view, err := m.Navigate(ViewFindMentor)
	require.NoError(t, err)
	assert.Equal(t, ViewFindMentor, view)

	// Mentor-only and admin-only views are rejected
	_, err = m.Navigate(ViewRequests)
	assert.ErrorIs(t, err, ErrViewNotReachable)
	_, err = m.Navigate(ViewReports)
	assert.ErrorIs(t, err, ErrViewNotReachable)

	// The war room is never a navigation target
	_, err = m.Navigate(ViewWarRoom)
	assert.ErrorIs(t, err, ErrViewNotReachable)
}

func TestNavigateRequiresLogin(t *testing.T) {
	m := NewMachine()
	_, err := m.Navigate(ViewDashboard)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestWarRoomFeedbackGate(t *testing.T) {
	m := NewMachine()
	_, err := m.Login(mentee("Alex"))
	require.NoError(t, err)

	view, err := m.JoinSession("s1")
	require.NoError(t, err)
	assert.Equal(t, ViewWarRoom, view)

	// No leaving through the menu
	_, err = m.Navigate(ViewDashboard)
	assert.ErrorIs(t, err, ErrCloseNotInitiated)

	// Feedback before BeginClose is rejected
	_, err = m.SubmitFeedback(models.SessionFeedback{Rating: 5})
	assert.ErrorIs(t, err, ErrCloseNotInitiated)

	require.NoError(t, m.BeginClose())

	// Rating zero blocks
	_, err = m.SubmitFeedback(models.SessionFeedback{Rating: 0})
	assert.ErrorIs(t, err, ErrRatingRequired)

	// Oversized comment blocks
	_, err = m.SubmitFeedback(models.SessionFeedback{
		Rating:  4,
		Comment: strings.Repeat("x", validation.MaxFeedbackCommentLength+1),
	})
	require.Error(t, err)

	view, err = m.SubmitFeedback(models.SessionFeedback{Rating: 4, Comment: "great session"})
	require.NoError(t, err)
	assert.Equal(t, ViewDashboard, view)

	_, active := m.ActiveSession()
	assert.False(t, active)
}

func TestMentorCannotJoinWarRoom(t *testing.T) {
	m := NewMachine()
	_, err := m.Login(&models.User{ID: "u2", Role: models.RoleMentor})
	require.NoError(t, err)

	_, err = m.JoinSession("s1")
	assert.ErrorIs(t, err, ErrViewNotReachable)
}

func TestLogoutResetsEverything(t *testing.T) {
	m := NewMachine()
	_, err := m.Login(mentee("Alex"))
	require.NoError(t, err)
	_, err = m.JoinSession("s1")
	require.NoError(t, err)

	assert.Equal(t, ViewAuth, m.Logout())
	assert.Nil(t, m.User())
	_, active := m.ActiveSession()
	assert.False(t, active)
}

func TestRegistryReturnsSameMachinePerSubject(t *testing.T) {
	r := NewRegistry()
	a := r.Get("sub-1")
	b := r.Get("sub-1")
	c := r.Get("sub-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)

	r.Drop("sub-1")
	assert.NotSame(t, a, r.Get("sub-1"))
}

func TestNavItemsPerRole(t *testing.T) {
	assert.Contains(t, NavItems(models.RoleMentee), ViewRepository)
	assert.Contains(t, NavItems(models.RoleMentor), ViewAvailability)
	assert.Contains(t, NavItems(models.RoleAdmin), ViewReports)
	assert.NotContains(t, NavItems(models.RoleMentee), ViewWarRoom)
	assert.Nil(t, NavItems(models.Role("ghost")))
}
