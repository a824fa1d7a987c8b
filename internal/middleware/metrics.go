package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmw1984/timetable/internal/service"
)

// Metrics records per-request duration and count. The scrape endpoint
// is excluded so Prometheus polling does not skew the series.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if metricsSvc == nil || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
