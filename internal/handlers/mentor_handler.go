package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MentorHandler serves the mentor catalog and match searches
type MentorHandler struct {
	mentors services.MentorServiceInterface
	toasts  *notify.Service
}

// NewMentorHandler creates the mentor handler
func NewMentorHandler(mentors services.MentorServiceInterface, toasts *notify.Service) *MentorHandler {
	return &MentorHandler{mentors: mentors, toasts: toasts}
}

// List handles GET /mentors
func (h *MentorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mentors": h.mentors.List(c.Request.Context())})
}

// Match handles POST /mentors/match
func (h *MentorHandler) Match(c *gin.Context) {
	var req models.MatchSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	result, err := h.mentors.Match(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Mode == ai.ModeOffline {
		h.toasts.Add("AI matching is offline, showing the full catalog", notify.SeverityWarning)
	}

	c.JSON(http.StatusOK, result)
}
