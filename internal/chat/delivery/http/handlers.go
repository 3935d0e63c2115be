package http

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/internal/middleware"
	"obsidianlist/pkg/response"
)

// SendMessage handles POST /api/v1/chat/messages.
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.http.SendMessage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSendMessageResp(output))
}

// ListConversations handles GET /api/v1/chat/conversations.
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	convs, err := h.uc.ListConversations(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ListConversations: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListConversationsResp(convs))
}

// ListMessages handles GET /api/v1/chat/conversations/:id/messages.
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListMessagesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListMessages(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.http.ListMessages: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListMessagesResp(output))
}
