package tools

import (
	"context"
	"fmt"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// AddTaskTool creates a task with an optional reminder.
type AddTaskTool struct {
	uc task.UseCase
}

// NewAddTaskTool creates a new add_task tool.
func NewAddTaskTool(uc task.UseCase) agent.Tool {
	return &AddTaskTool{uc: uc}
}

func (t *AddTaskTool) Name() string {
	return "add_task"
}

func (t *AddTaskTool) Description() string {
	return "Create a new task with an optional reminder. Use this when the user wants to add, create, or schedule a task."
}

func (t *AddTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "The task title (required, max 200 characters)",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional task description (max 1000 characters)",
			},
			"reminder": map[string]interface{}{
				"type":        "object",
				"description": "Optional reminder with date and time",
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
				"required": []string{"date", "time"},
			},
		},
		"required": []string{"title"},
	}
}

type addTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reminder    *struct {
		Date string `json:"date"`
		Time string `json:"time"`
	} `json:"reminder"`
}

func (t *AddTaskTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	var req addTaskReq
	if err := decodeArgs(args, &req); err != nil {
		return errorResult(fmt.Sprintf("Invalid arguments: %v", err))
	}

	input := task.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Reminder != nil {
		input.Reminder = &task.ReminderInput{
			Date: req.Reminder.Date,
			Time: req.Reminder.Time,
		}
	}

	output, err := t.uc.Create(ctx, sc, input)
	if err != nil {
		return domainError(err, "Failed to create task")
	}

	message := fmt.Sprintf("Task '%s' created successfully", output.Task.Title)
	if output.Reminder != nil {
		message += fmt.Sprintf(" with reminder set for %s at %s",
			output.Reminder.ReminderDay, formatClock(output.Reminder.ReminderTime))
	}

	return agent.Result{
		"status":  "success",
		"task":    taskPayload(output.Task, output.Reminder),
		"message": message,
	}
}
