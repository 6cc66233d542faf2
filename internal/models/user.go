package models

import "fmt"

// Role identifies which dashboard and operations a user may access
type Role string

const (
	RoleMentee Role = "mentee"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	switch r {
	case RoleMentee, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// Level represents a mentee's skill level, ordered beginner < intermediate < advanced
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// IsValid checks if the level is a known value
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Ordinal maps the level to its position in the progression
func (l Level) Ordinal() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	}
	return -1
}

// User is the authenticated account profile
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Role      Role     `json:"role"`
	Level     Level    `json:"level,omitempty"`
	XP        int      `json:"xp"`
	Streak    int      `json:"streak"`
	Languages []string `json:"languages,omitempty"`
	Interests string   `json:"interests,omitempty"`
}

// Validate checks structural invariants on the user record
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	if u.Level != "" && !u.Level.IsValid() {
		return fmt.Errorf("invalid level: %s", u.Level)
	}
	if u.XP < 0 {
		return fmt.Errorf("xp cannot be negative")
	}
	if u.Streak < 0 {
		return fmt.Errorf("streak cannot be negative")
	}
	return nil
}

// NeedsOnboarding reports whether the user must complete profile setup
// before reaching the dashboard. Mentors and admins skip onboarding.
func (u *User) NeedsOnboarding() bool {
	return u.Role == RoleMentee && u.Name == ""
}

// LoginRequest is the payload for login and signup
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"required"`
}

// OnboardingRequest is the payload for completing mentee onboarding
type OnboardingRequest struct {
	Name      string   `json:"name" binding:"required"`
	Languages []string `json:"languages" binding:"required,min=1"`
	Interests string   `json:"interests"`
	Level     Level    `json:"level"`
}

// UpdateProfileRequest is the payload for editing profile fields
type UpdateProfileRequest struct {
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
	Interests string   `json:"interests"`
	Level     Level    `json:"level"`
}

// AvatarUploadRequest carries a base64-encoded avatar image
type AvatarUploadRequest struct {
	ImageData   string `json:"imageData" binding:"required"`
	ContentType string `json:"contentType"`
}
