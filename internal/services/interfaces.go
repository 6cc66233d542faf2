package services

import (
	"context"

	"github.com/codementor/codementor-api/internal/models"
)

// AuthServiceInterface defines the auth service contract
type AuthServiceInterface interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Signup(ctx context.Context, req models.LoginRequest) (*models.User, error)
	SaveProfile(ctx context.Context, user *models.User) error
	Logout(ctx context.Context) error
}

// MentorServiceInterface defines the mentor catalog contract
type MentorServiceInterface interface {
	List(ctx context.Context) []models.Mentor
	Match(ctx context.Context, query string) (*models.MatchSearchResponse, error)
}

// SessionServiceInterface defines the session history contract
type SessionServiceInterface interface {
	List(ctx context.Context, status models.SessionStatus) ([]models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Joinable(ctx context.Context, id string) (*models.Session, error)
	RecordFeedback(ctx context.Context, id string, feedback models.SessionFeedback) error
}

// RequestServiceInterface defines the review queue contract
type RequestServiceInterface interface {
	List(ctx context.Context, status models.RequestStatus) ([]models.SessionRequest, error)
	UpdateStatus(ctx context.Context, id string, target models.RequestStatus) (*models.SessionRequest, error)
}

// ProblemServiceInterface defines the practice repository contract
type ProblemServiceInterface interface {
	List(ctx context.Context) ([]models.Problem, error)
	Get(ctx context.Context, id string) (*models.Problem, error)
	SubmitSolution(ctx context.Context, problemID string, req models.SubmitSolutionRequest) (*models.Solution, *models.RunCodeResponse, error)
}

// ProfileServiceInterface defines the profile contract
type ProfileServiceInterface interface {
	Get(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, req models.AvatarUploadRequest) (*models.User, error)
}

// GamificationServiceInterface defines the gamification contract
type GamificationServiceInterface interface {
	Summary(ctx context.Context, userName string) *GamificationSummary
	TimeSlots(ctx context.Context) []models.TimeSlot
	SaveTimeSlots(ctx context.Context, slots []models.TimeSlot) error
}

// ReportServiceInterface defines the reporting contract
type ReportServiceInterface interface {
	Metrics(ctx context.Context) []models.ReportMetric
	SubmitBug(ctx context.Context, report models.BugReportRequest, reporter string)
}

// Compile-time checks that implementations satisfy their interfaces
var (
	_ AuthServiceInterface         = (*AuthService)(nil)
	_ MentorServiceInterface       = (*MentorService)(nil)
	_ SessionServiceInterface      = (*SessionService)(nil)
	_ RequestServiceInterface      = (*RequestService)(nil)
	_ ProblemServiceInterface      = (*ProblemService)(nil)
	_ ProfileServiceInterface      = (*ProfileService)(nil)
	_ GamificationServiceInterface = (*GamificationService)(nil)
	_ ReportServiceInterface       = (*ReportService)(nil)
)
