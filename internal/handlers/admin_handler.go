package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves admin-only operations
type AdminHandler struct {
	store  *store.Store
	toasts *notify.Service
}

// NewAdminHandler creates the admin handler
func NewAdminHandler(s *store.Store, toasts *notify.Service) *AdminHandler {
	return &AdminHandler{store: s, toasts: toasts}
}

// ClearStorage handles POST /admin/storage/clear: wipes the store and
// reseeds the defaults.
func (h *AdminHandler) ClearStorage(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.store.Clear(ctx); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Initialize(ctx); err != nil {
		respondError(c, err)
		return
	}

	logger.Warn("Storage cleared by admin")
	h.toasts.Add("All stored data cleared", notify.SeverityInfo)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
