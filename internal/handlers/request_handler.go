package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RequestHandler serves the mentor's review queue
type RequestHandler struct {
	requests services.RequestServiceInterface
	toasts   *notify.Service
}

// NewRequestHandler creates the request handler
func NewRequestHandler(requests services.RequestServiceInterface, toasts *notify.Service) *RequestHandler {
	return &RequestHandler{requests: requests, toasts: toasts}
}

// List handles GET /requests
func (h *RequestHandler) List(c *gin.Context) {
	status := models.RequestStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	requests, err := h.requests.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateStatus handles POST /requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	updated, err := h.requests.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.toasts.Add(err.Error(), notify.SeverityError)
		respondError(c, err)
		return
	}

	if updated.Status == models.RequestStatusAccepted {
		h.toasts.Add("Request from "+updated.RequesterName+" accepted", notify.SeveritySuccess)
	} else {
		h.toasts.Add("Request from "+updated.RequesterName+" declined", notify.SeverityInfo)
	}

	c.JSON(http.StatusOK, updated)
}
