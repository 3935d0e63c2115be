package task

import "obsidianlist/internal/model"

// TaskWithReminder pairs a task with its reminder (nil when none exists).
type TaskWithReminder struct {
	Task     model.Task
	Reminder *model.Reminder
}

// ReminderInput carries the raw date and time strings for a reminder
// ("YYYY-MM-DD" and "HH:MM" or "HH:MM:SS").
type ReminderInput struct {
	Date string
	Time string
}

// Empty reports whether both fields are blank, which callers use to request
// reminder removal.
func (r *ReminderInput) Empty() bool {
	return r == nil || (r.Date == "" && r.Time == "")
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Tags        []string
	Reminder    *ReminderInput
}

type ListTasksInput struct {
	Status string // "all", "pending", "completed"
	Limit  int
	Offset int
}

// UpdateTaskInput is a partial update. Nil pointers leave fields unchanged.
// ReminderSet distinguishes "reminder field absent" (unchanged) from
// "reminder present" (empty → remove, populated → replace).
type UpdateTaskInput struct {
	TaskID      string
	Title       *string
	Description *string
	Priority    *string
	Tags        *[]string
	ReminderSet bool
	Reminder    *ReminderInput
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task     model.Task
	Reminder *model.Reminder
}

type ListTasksOutput struct {
	Tasks []TaskWithReminder
	Total int
}

type ToggleOutput struct {
	Task              model.Task
	Reminder          *model.Reminder
	ReminderCancelled bool
	ReminderRestored  bool
}

type DeleteOutput struct {
	ID    string
	Title string
}
