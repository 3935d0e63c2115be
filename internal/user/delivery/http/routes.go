package http

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/internal/user"
	"obsidianlist/pkg/log"
)

// MapRoutes builds the handler and mounts the auth routes.
func MapRoutes(rg *gin.RouterGroup, l log.Logger, uc user.UseCase) {
	RegisterRoutes(rg, New(l, uc))
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Auth routes
// are unauthenticated by nature.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}
