package http

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/internal/middleware"
	"obsidianlist/internal/task"
	"obsidianlist/pkg/log"
)

// MapRoutes builds the handler and mounts the task routes.
func MapRoutes(rg *gin.RouterGroup, l log.Logger, uc task.UseCase, mw middleware.Middleware) {
	RegisterRoutes(rg, New(l, uc), mw)
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.PUT("/:id", mw.Auth(), h.Update)
		tasks.PATCH("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
