package handlers

import (
	"net/http"

	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the admin reports page and bug reports
type ReportHandler struct {
	reports services.ReportServiceInterface
	toasts  *notify.Service
}

// NewReportHandler creates the report handler
func NewReportHandler(reports services.ReportServiceInterface, toasts *notify.Service) *ReportHandler {
	return &ReportHandler{reports: reports, toasts: toasts}
}

// Metrics handles GET /reports
func (h *ReportHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"metrics": h.reports.Metrics(c.Request.Context())})
}

// SubmitBug handles POST /reports/bug
func (h *ReportHandler) SubmitBug(c *gin.Context) {
	var req models.BugReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ParseValidationErrors(err)})
		return
	}

	reporter := "anonymous"
	if claims, ok := middleware.GetAppSession(c); ok {
		reporter = claims.Email
	}

	h.reports.SubmitBug(c.Request.Context(), req, reporter)
	h.toasts.Add("Bug report sent, thank you!", notify.SeveritySuccess)
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
