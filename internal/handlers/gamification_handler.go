package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// GamificationHandler serves badges, the leaderboard and availability
type GamificationHandler struct {
	gamification services.GamificationServiceInterface
	toasts       *notify.Service
}

// NewGamificationHandler creates the gamification handler
func NewGamificationHandler(gamification services.GamificationServiceInterface, toasts *notify.Service) *GamificationHandler {
	return &GamificationHandler{gamification: gamification, toasts: toasts}
}

// Summary handles GET /gamification
func (h *GamificationHandler) Summary(c *gin.Context) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, h.gamification.Summary(c.Request.Context(), claims.Name))
}

// TimeSlots handles GET /availability
func (h *GamificationHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.gamification.TimeSlots(c.Request.Context())})
}

// SaveAvailability handles POST /availability
func (h *GamificationHandler) SaveAvailability(c *gin.Context) {
	var req struct {
		Slots []models.TimeSlot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	if err := h.gamification.SaveTimeSlots(c.Request.Context(), req.Slots); err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	h.toasts.Add("Availability saved", notify.SeveritySuccess)
	c.JSON(http.StatusOK, gin.H{"slots": req.Slots})
}
