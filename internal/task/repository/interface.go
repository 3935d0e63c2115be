package repository

import (
	"context"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	ReminderRepository
}

// TaskRepository defines data access methods for the Task entity.
// Single-record getters return a zero-value entity (ID == "") when the row
// does not exist, not an error.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.TaskWithReminder, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.TaskWithReminder, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, opt ToggleCompletionOptions) (ToggleCompletionResult, error)
}

// ReminderRepository defines data access methods for the Reminder entity.
type ReminderRepository interface {
	GetReminderByTaskID(ctx context.Context, taskID string) (model.Reminder, error)
	ReplaceReminder(ctx context.Context, opt ReplaceReminderOptions) (model.Reminder, error)
	DeleteReminderByTaskID(ctx context.Context, taskID string) error
	ListPendingReminders(ctx context.Context) ([]model.Reminder, error)
	SetReminderStatus(ctx context.Context, opt SetReminderStatusOptions) (model.Reminder, error)
}
