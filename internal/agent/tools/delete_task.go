package tools

import (
	"context"
	"fmt"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// DeleteTaskTool permanently removes a task and its reminder.
type DeleteTaskTool struct {
	uc task.UseCase
}

// NewDeleteTaskTool creates a new delete_task tool.
func NewDeleteTaskTool(uc task.UseCase) agent.Tool {
	return &DeleteTaskTool{uc: uc}
}

func (t *DeleteTaskTool) Name() string {
	return "delete_task"
}

func (t *DeleteTaskTool) Description() string {
	return "Permanently delete a task and its reminder. Use this when the user wants to remove a task."
}

func (t *DeleteTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "ID of the task to delete",
			},
		},
		"required": []string{"task_id"},
	}
}

type deleteTaskReq struct {
	TaskID string `json:"task_id"`
}

func (t *DeleteTaskTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	var req deleteTaskReq
	if err := decodeArgs(args, &req); err != nil {
		return errorResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if req.TaskID == "" {
		return errorResult("task_id is required")
	}

	output, err := t.uc.Delete(ctx, sc, req.TaskID)
	if err != nil {
		return domainError(err, "Failed to delete task")
	}

	return agent.Result{
		"status":  "success",
		"message": fmt.Sprintf("Task '%s' deleted successfully", output.Title),
		"deleted_task": map[string]interface{}{
			"id":    output.ID,
			"title": output.Title,
		},
	}
}
