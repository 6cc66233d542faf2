package trigger

import (
	"bytes"
	"encoding/json"

	"github.com/codementor/codementor-api/pkg/httpclient"
	"github.com/codementor/codementor-api/pkg/logger"
	"go.uber.org/zap"
)

// CallAsync posts a JSON payload to a webhook URL without blocking the caller.
// Failures are logged and otherwise ignored: webhooks are best-effort.
func CallAsync(url string, payload interface{}, client httpclient.Client) {
	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			logger.Error("Failed to marshal webhook payload",
				zap.String("url", url),
				zap.Error(err))
			return
		}

		resp, err := client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			logger.Warn("Webhook call failed",
				zap.String("url", url),
				zap.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			logger.Warn("Webhook returned error status",
				zap.String("url", url),
				zap.Int("status", resp.StatusCode))
			return
		}

		logger.Debug("Webhook called", zap.String("url", url))
	}()
}
