package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/codementor/codementor-api/internal/store"
	"github.com/gin-gonic/gin"
)

// HealthHandler serves the healthcheck endpoint
type HealthHandler struct {
	store   *store.Store
	version string
}

// NewHealthHandler creates the health handler
func NewHealthHandler(s *store.Store, version string) *HealthHandler {
	return &HealthHandler{store: s, version: version}
}

// Check handles GET /api/healthcheck. The store read doubles as a
// backend liveness probe.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if _, err := h.store.Read(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"version": h.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
