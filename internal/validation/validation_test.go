package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple name", "Alex", true},
		{"name with spaces", "Alex Johnson", true},
		{"underscore start", "_alex", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"starts with digit", "1Alex", false},
		{"starts with symbol", "@lex", false},
		{"at limit", strings.Repeat("a", MaxNameLength), true},
		{"over limit", strings.Repeat("a", MaxNameLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b.co"))
	assert.NoError(t, ValidateEmail("user.name+tag@example.org"))
	assert.Error(t, ValidateEmail("a@b"))
	assert.Error(t, ValidateEmail("a b@c.com"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("user@"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"letters and digits only", "abc12345", false},
		{"with symbol", "abc!1234", true},
		{"too short", "a!1", false},
		{"no digit", "abcdefg!", false},
		{"no letter", "1234567!", false},
		{"all three classes", `pass,word9`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWithinLimit(t *testing.T) {
	assert.NoError(t, WithinLimit("message", strings.Repeat("x", MaxRequestMessageLength), MaxRequestMessageLength))

	err := WithinLimit("message", strings.Repeat("x", MaxRequestMessageLength+1), MaxRequestMessageLength)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}

func TestWithinLimitCountsCharactersNotBytes(t *testing.T) {
	// "é" is two bytes; a limit-length multibyte string must still pass
	assert.NoError(t, WithinLimit("interests", strings.Repeat("é", MaxInterestsLength), MaxInterestsLength))
	assert.Error(t, WithinLimit("interests", strings.Repeat("é", MaxInterestsLength+1), MaxInterestsLength))
}

func TestValidatePoints(t *testing.T) {
	assert.NoError(t, ValidatePoints(100))
	assert.NoError(t, ValidatePoints(MaxPoints))
	assert.Error(t, ValidatePoints(0))
	assert.Error(t, ValidatePoints(-10))
	assert.Error(t, ValidatePoints(MaxPoints+1))
}
