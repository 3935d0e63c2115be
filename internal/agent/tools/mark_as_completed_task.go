package tools

import (
	"context"
	"fmt"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// MarkAsCompletedTaskTool toggles a task's completion state.
type MarkAsCompletedTaskTool struct {
	uc task.UseCase
}

// NewMarkAsCompletedTaskTool creates a new mark_as_completed_task tool.
func NewMarkAsCompletedTaskTool(uc task.UseCase) agent.Tool {
	return &MarkAsCompletedTaskTool{uc: uc}
}

func (t *MarkAsCompletedTaskTool) Name() string {
	return "mark_as_completed_task"
}

func (t *MarkAsCompletedTaskTool) Description() string {
	return "Toggle a task's completion status. Completing a task cancels its pending reminder; reopening it restores a still-future reminder."
}

func (t *MarkAsCompletedTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "ID of the task to toggle",
			},
		},
		"required": []string{"task_id"},
	}
}

type markCompletedReq struct {
	TaskID string `json:"task_id"`
}

func (t *MarkAsCompletedTaskTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	var req markCompletedReq
	if err := decodeArgs(args, &req); err != nil {
		return errorResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if req.TaskID == "" {
		return errorResult("task_id is required")
	}

	output, err := t.uc.ToggleComplete(ctx, sc, req.TaskID)
	if err != nil {
		return domainError(err, "Failed to update task")
	}

	var message string
	if output.Task.Completed {
		message = fmt.Sprintf("Task '%s' marked as completed", output.Task.Title)
		if output.ReminderCancelled {
			message += ". Reminder cancelled."
		}
	} else {
		message = fmt.Sprintf("Task '%s' marked as pending", output.Task.Title)
		if output.ReminderRestored {
			message += ". Reminder re-enabled."
		}
	}

	result := agent.Result{
		"status":  "success",
		"task":    taskPayload(output.Task, output.Reminder),
		"message": message,
	}
	if output.ReminderCancelled {
		result["reminder_cancelled"] = true
	}
	if output.ReminderRestored {
		result["reminder_restored"] = true
	}
	return result
}
