package http

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/internal/chat"
	"obsidianlist/internal/middleware"
	"obsidianlist/pkg/log"
)

// MapRoutes builds the handler and mounts the chat routes.
func MapRoutes(rg *gin.RouterGroup, l log.Logger, uc chat.UseCase, mw middleware.Middleware) {
	RegisterRoutes(rg, New(l, uc), mw)
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chats := rg.Group("/chat")
	{
		chats.POST("/messages", mw.Auth(), h.SendMessage)
		chats.GET("/conversations", mw.Auth(), h.ListConversations)
		chats.GET("/conversations/:id/messages", mw.Auth(), h.ListMessages)
	}
}
