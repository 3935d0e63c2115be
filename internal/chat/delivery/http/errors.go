package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/chat"
	"obsidianlist/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, http.StatusBadRequest, err)
	case errors.Is(err, chat.ErrConversationNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, chat.ErrPermissionDenied):
		response.Forbidden(c)
	default:
		response.InternalError(c)
	}
}
