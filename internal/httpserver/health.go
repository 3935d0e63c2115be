package httpserver

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "obsidianlist"
)

// healthCheck handles health check requests.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
