// Package validation holds the input limits and format checks shared by
// every write path. All functions are pure: they inspect the input and
// return nil or a descriptive error, never touching external state.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field length limits. Inputs longer than these are rejected before any
// persistence or AI call sees them.
const (
	MaxNameLength               = 100
	MaxInterestsLength          = 500
	MaxRequestMessageLength     = 500
	MaxChatMessageLength        = 1000
	MaxCodeLength               = 10000
	MaxFeedbackCommentLength    = 1000
	MaxProblemTitleLength       = 200
	MaxProblemDescriptionLength = 5000
	MaxPoints                   = 1000000
	MinPasswordLength           = 8
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// passwordSymbols is the set of special characters a password must contain one of
	passwordSymbols = `!@#$%^&*(),.?":{}|<>`
)

// Error is a validation failure carrying a human-readable reason.
// Handlers map it to a 400 and surface the reason directly.
type Error string

func (e Error) Error() string { return string(e) }

func failf(format string, args ...interface{}) error {
	return Error(fmt.Sprintf(format, args...))
}

// ValidateName checks a display name: non-empty after trimming, within the
// length limit, and starting with a letter or underscore.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return failf("name cannot be empty")
	}
	if len(trimmed) > MaxNameLength {
		return failf("name cannot exceed %d characters", MaxNameLength)
	}

	first := []rune(trimmed)[0]
	if unicode.IsDigit(first) || (!unicode.IsLetter(first) && first != '_') {
		return failf("name must start with a letter")
	}

	return nil
}

// ValidateEmail checks the address shape: local part, @, domain with a dot,
// no whitespace anywhere.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return failf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces signup password strength: at least 8 characters
// containing a letter, a digit, and a special character.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return failf("password must be at least %d characters", MinPasswordLength)
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasLetter {
		return failf("password must contain a letter")
	}
	if !hasDigit {
		return failf("password must contain a digit")
	}
	if !hasSymbol {
		return failf("password must contain a special character")
	}

	return nil
}

// WithinLimit checks a free-text field against its length limit. Limits
// count characters, not bytes, so multibyte input is not penalized.
// The field name appears in the error so handlers can surface it directly.
func WithinLimit(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return failf("%s cannot exceed %d characters", field, limit)
	}
	return nil
}

// ValidatePoints checks a problem's point reward
func ValidatePoints(points int) error {
	if points <= 0 {
		return failf("points must be positive")
	}
	if points > MaxPoints {
		return failf("points cannot exceed %d", MaxPoints)
	}
	return nil
}
