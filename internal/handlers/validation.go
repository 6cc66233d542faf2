package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/services"
	appvalidation "github.com/codementor/codementor-api/internal/validation"
	"github.com/codementor/codementor-api/internal/warroom"
	apperrors "github.com/codementor/codementor-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ParseValidationErrors turns validator binding failures into a readable
// message instead of the raw struct-tag dump.
func ParseValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s is below the minimum of %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s exceeds the maximum of %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}

// respondError maps domain errors onto HTTP statuses. Anything unmapped
// is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, appstate.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrProblemNotFound),
		errors.Is(err, services.ErrNoProfile),
		errors.Is(err, warroom.ErrNoRoom):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatusTransition),
		errors.Is(err, services.ErrSessionNotJoinable),
		errors.Is(err, appstate.ErrViewNotReachable),
		errors.Is(err, appstate.ErrCloseNotInitiated),
		errors.Is(err, appstate.ErrNotInWarRoom),
		errors.Is(err, appstate.ErrOnboardingOnly):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrStorageDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	case errors.Is(err, appstate.ErrRatingRequired),
		errors.Is(err, warroom.ErrEmptyMessage),
		errors.Is(err, services.ErrNoSlots):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, warroom.ErrRoomClosed),
		errors.Is(err, warroom.ErrStaleRun):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		var verr appvalidation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		// Fall back on the shared error categories
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
	}
}
