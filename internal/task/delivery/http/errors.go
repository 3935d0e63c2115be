package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/task"
	"obsidianlist/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case task.IsValidationError(err):
		response.Error(c, http.StatusBadRequest, err)
	case errors.Is(err, task.ErrTaskNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, task.ErrPermissionDenied):
		response.Forbidden(c)
	default:
		response.InternalError(c)
	}
}
