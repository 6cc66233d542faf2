package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the profile page
type ProfileHandler struct {
	profiles services.ProfileServiceInterface
	toasts   *notify.Service
}

// NewProfileHandler creates the profile handler
func NewProfileHandler(profiles services.ProfileServiceInterface, toasts *notify.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, toasts: toasts}
}

// Get handles GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles POST /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	user, err := h.profiles.Update(c.Request.Context(), req)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	h.toasts.Add("Profile saved", notify.SeveritySuccess)
	c.JSON(http.StatusOK, user)
}

// UploadAvatar handles POST /profile/picture
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	var req models.AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	user, err := h.profiles.UploadAvatar(c.Request.Context(), req)
	if err != nil {
		h.toasts.Add("Avatar upload failed", notify.SeverityError)
		respondError(c, err)
		return
	}

	h.toasts.Add("Avatar updated", notify.SeveritySuccess)
	c.JSON(http.StatusOK, user)
}
