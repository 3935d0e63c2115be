package tools

import (
	"context"
	"fmt"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// UpdateTaskTool applies a partial update to a task.
type UpdateTaskTool struct {
	uc task.UseCase
}

// NewUpdateTaskTool creates a new update_task tool.
func NewUpdateTaskTool(uc task.UseCase) agent.Tool {
	return &UpdateTaskTool{uc: uc}
}

func (t *UpdateTaskTool) Name() string {
	return "update_task"
}

func (t *UpdateTaskTool) Description() string {
	return "Update an existing task's title, description, or reminder. Pass an empty reminder object to remove the reminder."
}

func (t *UpdateTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"task_id": map[string]interface{}{
				"type":        "string",
				"description": "ID of the task to update",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "New task title (max 200 characters)",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New task description (max 1000 characters)",
			},
			"reminder": map[string]interface{}{
				"type":        "object",
				"description": "New reminder. Empty object removes the existing reminder; omit to leave unchanged",
				"properties": map[string]interface{}{
					"date": map[string]interface{}{
						"type":        "string",
						"description": "Reminder date in YYYY-MM-DD format",
					},
					"time": map[string]interface{}{
						"type":        "string",
						"description": "Reminder time in HH:MM format (24-hour)",
					},
				},
			},
		},
		"required": []string{"task_id"},
	}
}

type updateTaskReq struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Reminder    *struct {
		Date string `json:"date"`
		Time string `json:"time"`
	} `json:"reminder"`
}

func (t *UpdateTaskTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	var req updateTaskReq
	if err := decodeArgs(args, &req); err != nil {
		return errorResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if req.TaskID == "" {
		return errorResult("task_id is required")
	}

	// A present-but-empty reminder means removal; an absent key leaves the
	// reminder untouched.
	_, reminderSet := args["reminder"]

	input := task.UpdateTaskInput{
		TaskID:      req.TaskID,
		Title:       req.Title,
		Description: req.Description,
		ReminderSet: reminderSet,
	}
	if req.Reminder != nil {
		input.Reminder = &task.ReminderInput{
			Date: req.Reminder.Date,
			Time: req.Reminder.Time,
		}
	} else if reminderSet {
		input.Reminder = &task.ReminderInput{}
	}

	output, err := t.uc.Update(ctx, sc, input)
	if err != nil {
		return domainError(err, "Failed to update task")
	}

	return agent.Result{
		"status":  "success",
		"task":    taskPayload(output.Task, output.Reminder),
		"message": "Task updated successfully",
	}
}
