package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// decodeArgs maps the model-provided arguments onto a typed request struct.
// Unknown fields are rejected rather than silently dropped.
func decodeArgs(args map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func errorResult(message string) agent.Result {
	return agent.Result{
		"status":  "error",
		"message": message,
	}
}

// domainError folds use-case errors into the envelope. fallback covers
// store-level failures whose detail stays in the logs.
func domainError(err error, fallback string) agent.Result {
	var ve *task.ValidationError
	switch {
	case errors.As(err, &ve):
		return errorResult(ve.Message)
	case errors.Is(err, task.ErrTaskNotFound):
		return errorResult("Task not found")
	case errors.Is(err, task.ErrPermissionDenied):
		return errorResult("You don't have permission to access this task")
	default:
		return errorResult(fallback)
	}
}

// taskPayload renders a task the way every tool reports it.
func taskPayload(t model.Task, rem *model.Reminder) map[string]interface{} {
	payload := map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"created_at":  t.CreatedAt.Format(time.RFC3339),
		"updated_at":  t.UpdatedAt.Format(time.RFC3339),
	}
	if rem != nil {
		payload["reminder"] = map[string]interface{}{
			"date": rem.ReminderDate,
			"day":  rem.ReminderDay,
			"time": rem.ReminderTime,
			"sent": rem.Sent(),
		}
	} else {
		payload["reminder"] = nil
	}
	return payload
}

// formatClock renders "15:00" as "3:00 PM" for confirmation messages.
// The raw string comes back unchanged when it does not parse.
func formatClock(clock string) string {
	layout := "15:04"
	if len(clock) == len("15:04:05") {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, clock)
	if err != nil {
		return clock
	}
	formatted := t.Format("3:04 PM")
	return formatted
}
