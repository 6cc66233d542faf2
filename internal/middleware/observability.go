package middleware

import (
	"strconv"
	"time"

	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ObservabilityMiddleware records request metrics and a structured access
// log entry for every request.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.ActiveRequests.WithLabelValues(c.Request.Method).Inc()
		defer metrics.ActiveRequests.WithLabelValues(c.Request.Method).Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		duration := metrics.MeasureDuration(start)

		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(c.Request.Method, route, status).Inc()

		logger.LogHTTPRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration,
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
