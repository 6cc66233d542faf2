package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/notify"
	"github.com/gin-gonic/gin"
)

// ToastHandler exposes the active toast list
type ToastHandler struct {
	toasts *notify.Service
}

// NewToastHandler creates the toast handler
func NewToastHandler(toasts *notify.Service) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

// List handles GET /toasts
func (h *ToastHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"toasts": h.toasts.Active()})
}

// Dismiss handles POST /toasts/:id/dismiss
func (h *ToastHandler) Dismiss(c *gin.Context) {
	h.toasts.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"toasts": h.toasts.Active()})
}
