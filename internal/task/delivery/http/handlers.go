package http

import (
	"github.com/gin-gonic/gin"

	"obsidianlist/internal/middleware"
	"obsidianlist/pkg/response"
)

// Create handles POST /api/v1/tasks.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task, output.Reminder))
}

// List handles GET /api/v1/tasks.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail handles GET /api/v1/tasks/:id.
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task, output.Reminder))
}

// Update handles PUT /api/v1/tasks/:id.
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.http.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task, output.Reminder))
}

// Toggle handles PATCH /api/v1/tasks/:id/toggle.
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errMissingID)
		return
	}

	output, err := h.uc.ToggleComplete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete handles DELETE /api/v1/tasks/:id.
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, errMissingID)
		return
	}

	output, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, deleteResp{ID: output.ID, Title: output.Title})
}
