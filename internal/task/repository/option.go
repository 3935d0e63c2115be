package repository

import (
	"time"

	"obsidianlist/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task and, when
// Reminder is non-nil, its Reminder in the same transaction.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Priority    model.Priority
	Tags        []string
	Reminder    *CreateReminderOptions
}

// CreateReminderOptions holds the validated reminder fields.
type CreateReminderOptions struct {
	Date string // YYYY-MM-DD
	Day  string // weekday name derived from Date
	Time string // HH:MM or HH:MM:SS
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Status is "all", "pending" or "completed".
type ListTasksOptions struct {
	UserID string
	Status string
	Limit  int
	Offset int
}

// UpdateTaskOptions holds parameters for a partial Task update. Nil pointers
// leave the column unchanged.
type UpdateTaskOptions struct {
	ID          string
	Title       *string
	Description *string
	Priority    *model.Priority
	Tags        *[]string
}

// ReplaceReminderOptions creates or replaces the reminder of a task,
// resetting it to pending.
type ReplaceReminderOptions struct {
	TaskID string
	UserID string
	Date   string
	Day    string
	Time   string
}

// ToggleCompletionOptions flips a task's completion state atomically with
// the paired reminder transition. Now is the reference instant for the
// restore-only-if-future rule.
type ToggleCompletionOptions struct {
	TaskID   string
	Now      time.Time
	Location *time.Location
}

// ToggleCompletionResult reports what the toggle transaction did.
type ToggleCompletionResult struct {
	Task              model.Task
	Reminder          *model.Reminder
	ReminderCancelled bool
	ReminderRestored  bool
}

// SetReminderStatusOptions is the single authoritative reminder status
// mutation, used by the completion toggle and the scheduler alike.
type SetReminderStatusOptions struct {
	ReminderID string
	Status     model.ReminderStatus
	SentAt     *time.Time // stamped for fired/cancelled, cleared for pending
	// IncrementAttempts bumps delivery_attempts by one before applying
	// the status, for failed delivery bookkeeping.
	IncrementAttempts bool
}
