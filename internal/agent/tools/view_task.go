package tools

import (
	"context"
	"fmt"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// ViewTaskTool lists the caller's tasks with their reminders.
type ViewTaskTool struct {
	uc task.UseCase
}

// NewViewTaskTool creates a new view_task tool.
func NewViewTaskTool(uc task.UseCase) agent.Tool {
	return &ViewTaskTool{uc: uc}
}

func (t *ViewTaskTool) Name() string {
	return "view_task"
}

func (t *ViewTaskTool) Description() string {
	return "View existing tasks. Use this when the user asks to see, list, or show their tasks."
}

func (t *ViewTaskTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"all", "pending", "completed"},
				"description": "Filter tasks by status (default: all)",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of tasks to return (1-100, default 50)",
			},
			"offset": map[string]interface{}{
				"type":        "integer",
				"description": "Number of tasks to skip for pagination",
			},
		},
		"required": []string{},
	}
}

type viewTaskReq struct {
	Status string `json:"status"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

func (t *ViewTaskTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	var req viewTaskReq
	if err := decodeArgs(args, &req); err != nil {
		return errorResult(fmt.Sprintf("Invalid arguments: %v", err))
	}

	output, err := t.uc.List(ctx, sc, task.ListTasksInput{
		Status: req.Status,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return domainError(err, "Failed to retrieve tasks")
	}

	tasks := make([]map[string]interface{}, 0, len(output.Tasks))
	for _, item := range output.Tasks {
		tasks = append(tasks, taskPayload(item.Task, item.Reminder))
	}

	message := fmt.Sprintf("Found %d task(s)", len(tasks))
	if req.Status != "" && req.Status != "all" {
		message += fmt.Sprintf(" (%s)", req.Status)
	}

	return agent.Result{
		"status":  "success",
		"tasks":   tasks,
		"total":   output.Total,
		"message": message,
	}
}
