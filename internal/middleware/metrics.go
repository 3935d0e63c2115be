package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/metrics"
)

// Metrics records request counts and latencies per route. The route template
// is used instead of the raw path so IDs do not explode the label space.
func (m Middleware) Metrics(reg *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if reg == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		reg.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		reg.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
