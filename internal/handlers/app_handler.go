package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AppHandler serves navigation state and onboarding
type AppHandler struct {
	auth     services.AuthServiceInterface
	machines *appstate.Registry
	toasts   *notify.Service
}

// NewAppHandler creates the app state handler
func NewAppHandler(auth services.AuthServiceInterface, machines *appstate.Registry, toasts *notify.Service) *AppHandler {
	return &AppHandler{auth: auth, machines: machines, toasts: toasts}
}

func (h *AppHandler) machine(c *gin.Context) (*appstate.Machine, bool) {
	claims, ok := middleware.GetAppSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}
	return h.machines.Get(claims.UserID), true
}

// GetState handles GET /app/state
func (h *AppHandler) GetState(c *gin.Context) {
	machine, ok := h.machine(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, machine.State())
}

// Navigate handles POST /app/navigate
func (h *AppHandler) Navigate(c *gin.Context) {
	var req struct {
		View appstate.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	machine, ok := h.machine(c)
	if !ok {
		return
	}

	view, err := machine.Navigate(req.View)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": view})
}

// Onboarding handles POST /app/onboarding
func (h *AppHandler) Onboarding(c *gin.Context) {
	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	machine, ok := h.machine(c)
	if !ok {
		return
	}

	user, err := machine.CompleteOnboarding(req)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	if err := h.auth.SaveProfile(c.Request.Context(), user); err != nil {
		// In-memory state stays authoritative; the write failure is surfaced
		h.toasts.Add("Could not save your profile, changes kept for this session", notify.SeverityError)
	} else {
		h.toasts.Add("Profile complete, welcome aboard!", notify.SeveritySuccess)
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"view": machine.State().View,
	})
}
