package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/cache"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(store.NewMemoryKV())
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestAuthLoginRejectsBadEmail(t *testing.T) {
	svc := NewAuthService(newStore(t))

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "not-an-email", Password: "x", Role: models.RoleMentee,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthSignupEnforcesPasswordStrength(t *testing.T) {
	svc := NewAuthService(newStore(t))

	_, err := svc.Signup(context.Background(), models.LoginRequest{
		Email: "a@b.co", Password: "abc12345", Role: models.RoleMentee,
	})
	assert.ErrorIs(t, err, ErrWeakPassword)

	user, err := svc.Signup(context.Background(), models.LoginRequest{
		Email: "a@b.co", Password: "abc!1234", Role: models.RoleMentee,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleMentee, user.Role)
	assert.Empty(t, user.Name, "mentees start unnamed and go through onboarding")
}

func TestAuthLoginReusesStoredProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStore(t))

	first, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.co", Password: "pw", Role: models.RoleMentor})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Name, "mentors get a display name immediately")

	second, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.co", Password: "pw", Role: models.RoleMentor})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestLogoutKeepsStoredProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newStore(t))

	user, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.co", Password: "pw", Role: models.RoleMentee})
	require.NoError(t, err)

	user.Name = "Alex"
	user.Languages = []string{"Go"}
	require.NoError(t, svc.SaveProfile(ctx, user))
	require.NoError(t, svc.Logout(ctx))

	// The saved profile survives the session; no second onboarding
	again, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.co", Password: "pw", Role: models.RoleMentee})
	require.NoError(t, err)
	assert.Equal(t, "Alex", again.Name)
	assert.False(t, again.NeedsOnboarding())
}

func TestRequestReviewHappyPath(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	svc := NewRequestService(s)

	updated, err := svc.UpdateStatus(ctx, "r1", models.RequestStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, updated.Status)

	// The decision is persisted, not just in memory
	data, err := s.Read(ctx)
	require.NoError(t, err)
	for _, r := range data.Requests {
		if r.ID == "r1" {
			assert.Equal(t, models.RequestStatusAccepted, r.Status)
		}
	}
}

func TestRequestReviewIsOneShot(t *testing.T) {
	ctx := context.Background()
	svc := NewRequestService(newStore(t))

	_, err := svc.UpdateStatus(ctx, "r1", models.RequestStatusRejected)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "r1", models.RequestStatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	// Re-asserting the current status is also an invalid transition
	_, err = svc.UpdateStatus(ctx, "r1", models.RequestStatusRejected)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestRequestReviewUnknownID(t *testing.T) {
	svc := NewRequestService(newStore(t))
	_, err := svc.UpdateStatus(context.Background(), "ghost", models.RequestStatusAccepted)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestListFiltersByStatus(t *testing.T) {
	svc := NewRequestService(newStore(t))

	pending, err := svc.List(context.Background(), models.RequestStatusPending)
	require.NoError(t, err)
	for _, r := range pending {
		assert.Equal(t, models.RequestStatusPending, r.Status)
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(pending))
}

func TestSessionJoinable(t *testing.T) {
	svc := NewSessionService(newStore(t))

	sess, err := svc.Joinable(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusUpcoming, sess.Status)

	_, err = svc.Joinable(context.Background(), "s3")
	assert.ErrorIs(t, err, ErrSessionNotJoinable)

	_, err = svc.Joinable(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRecordFeedback(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	svc := NewSessionService(s)

	require.NoError(t, svc.RecordFeedback(ctx, "s1", models.SessionFeedback{Rating: 4, Comment: "solid"}))

	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, sess.Status)
	assert.Equal(t, 4, sess.Rating)
}

func TestProblemSubmitSolutionOffline(t *testing.T) {
	svc := NewProblemService(newStore(t), ai.NewOfflineCollaborator())

	solution, prediction, err := svc.SubmitSolution(context.Background(), "p1", models.SubmitSolutionRequest{
		Code: "function twoSum() { return [0, 1]; }", Language: "javascript",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", solution.ProblemID)
	assert.WithinDuration(t, time.Now(), solution.SubmittedAt, time.Minute)
	assert.Equal(t, ai.ModeOffline, prediction.Mode)
}

func TestProblemSubmitSolutionRejectsOversizedCode(t *testing.T) {
	svc := NewProblemService(newStore(t), ai.NewOfflineCollaborator())

	_, _, err := svc.SubmitSolution(context.Background(), "p1", models.SubmitSolutionRequest{
		Code: strings.Repeat("x", validation.MaxCodeLength+1),
	})
	assert.Error(t, err)
}

func TestProblemSubmitSolutionUnknownProblem(t *testing.T) {
	svc := NewProblemService(newStore(t), ai.NewOfflineCollaborator())

	_, _, err := svc.SubmitSolution(context.Background(), "ghost", models.SubmitSolutionRequest{Code: "x"})
	assert.ErrorIs(t, err, ErrProblemNotFound)
}

func TestMentorListAndOfflineMatch(t *testing.T) {
	c := cache.NewMentorCache(time.Minute, time.Minute)
	svc := NewMentorService(c, ai.NewOfflineCollaborator())

	mentors := svc.List(context.Background())
	assert.NotEmpty(t, mentors)

	// Second call served from cache
	again := svc.List(context.Background())
	assert.Equal(t, mentors, again)

	res, err := svc.Match(context.Background(), "need help with python")
	require.NoError(t, err)
	assert.Equal(t, ai.ModeOffline, res.Mode)
	assert.Len(t, res.Mentors, len(mentors))
}

func TestGamificationSummaryMarksUser(t *testing.T) {
	svc := NewGamificationService()

	summary := svc.Summary(context.Background(), "Alex Johnson")
	assert.NotEmpty(t, summary.Badges)

	var marked int
	for _, entry := range summary.Ranking {
		if entry.IsUser {
			marked++
			assert.Equal(t, "Alex Johnson", entry.Name)
		}
	}
	assert.Equal(t, 1, marked)
}

func TestGamificationTimeSlots(t *testing.T) {
	svc := NewGamificationService()

	assert.Error(t, svc.SaveTimeSlots(context.Background(), nil))

	slots := []models.TimeSlot{{ID: "t9", Day: "Tuesday", Time: "12:00"}}
	require.NoError(t, svc.SaveTimeSlots(context.Background(), slots))
	assert.Equal(t, slots, svc.TimeSlots(context.Background()))
}

func TestGamificationValidateRanking(t *testing.T) {
	svc := NewGamificationService()

	assert.NoError(t, svc.ValidateRanking(store.SeedRanking()))
	assert.Error(t, svc.ValidateRanking([]models.RankingEntry{{Rank: 1, Name: "x", Points: validation.MaxPoints + 1}}))
}
