package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/validation"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// AuthService resolves logins against the stored profile. This is a demo
// auth model: any well-formed credential pair succeeds, and the stored
// profile is reused when its role matches.
type AuthService struct {
	store *store.Store
}

// NewAuthService creates the auth service
func NewAuthService(s *store.Store) *AuthService {
	return &AuthService{store: s}
}

// Login validates the credentials and returns the account for the role.
// An existing stored profile with the same role is reused; otherwise a
// fresh profile is created and persisted.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err.Error())
	}
	if req.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role", ErrInvalidCredentials)
	}

	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	if data.User != nil && data.User.Role == req.Role && data.User.Email == req.Email {
		logger.Info("Returning user logged in",
			zap.String("user_id", data.User.ID),
			zap.String("role", string(req.Role)))
		return data.User, nil
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Email: req.Email,
		Role:  req.Role,
	}
	if req.Role != models.RoleMentee {
		// Mentors and admins skip onboarding, so they need a display name
		user.Name = displayNameFromEmail(req.Email)
	}
	if req.Role == models.RoleMentee {
		user.Level = models.LevelBeginner
	}

	if err := s.store.Write(ctx, store.Partial{User: user}); err != nil {
		return nil, err
	}

	logger.Info("New user created",
		zap.String("user_id", user.ID),
		zap.String("role", string(req.Role)))
	return user, nil
}

// Signup additionally enforces password strength before creating the account
func (s *AuthService) Signup(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWeakPassword, err.Error())
	}
	return s.Login(ctx, req)
}

// SaveProfile persists the user record after onboarding or profile edits
func (s *AuthService) SaveProfile(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	return s.store.Write(ctx, store.Partial{User: user})
}

// Logout ends the session without touching the stored profile: a
// returning user resumes where their saved profile left off. The caller
// resets the in-memory machine and clears the cookie.
func (s *AuthService) Logout(context.Context) error {
	logger.Info("User logged out")
	return nil
}

func displayNameFromEmail(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}
