package services

import (
	"context"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/pkg/httpclient"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/trigger"
	"go.uber.org/zap"
)

// ReportService serves the admin reports page and forwards bug reports
// to the configured webhook.
type ReportService struct {
	webhookURL string
	client     httpclient.Client
}

// NewReportService creates the report service. An empty webhook URL
// disables forwarding; bug reports are then only logged.
func NewReportService(webhookURL string, client httpclient.Client) *ReportService {
	return &ReportService{webhookURL: webhookURL, client: client}
}

// Metrics returns the report figures
func (s *ReportService) Metrics(_ context.Context) []models.ReportMetric {
	return store.SeedReportMetrics()
}

// SubmitBug records a bug report and forwards it asynchronously.
// The caller never waits on the webhook.
func (s *ReportService) SubmitBug(_ context.Context, report models.BugReportRequest, reporter string) {
	logger.Info("Bug report filed",
		zap.String("subject", report.Subject),
		zap.String("reporter", reporter))

	if s.webhookURL == "" {
		return
	}

	trigger.CallAsync(s.webhookURL, map[string]string{
		"subject":     report.Subject,
		"description": report.Description,
		"reporter":    reporter,
	}, s.client)
}
