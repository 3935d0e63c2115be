package http

import (
	"time"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

type reminderResp struct {
	Date   string  `json:"date"`
	Day    string  `json:"day"`
	Time   string  `json:"time"`
	Sent   bool    `json:"sent"`
	SentAt *string `json:"sent_at,omitempty"`
	Status string  `json:"status"`
}

type taskResp struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Priority       string        `json:"priority"`
	Tags           []string      `json:"tags"`
	Completed      bool          `json:"completed"`
	CompletionDate *string       `json:"completion_date,omitempty"`
	Reminder       *reminderResp `json:"reminder"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
}

func newReminderResp(rem *model.Reminder) *reminderResp {
	if rem == nil {
		return nil
	}
	resp := &reminderResp{
		Date:   rem.ReminderDate,
		Day:    rem.ReminderDay,
		Time:   rem.ReminderTime,
		Sent:   rem.Sent(),
		Status: string(rem.Status),
	}
	if rem.SentAt != nil {
		s := rem.SentAt.Format(time.RFC3339)
		resp.SentAt = &s
	}
	return resp
}

func newTaskResp(t model.Task, rem *model.Reminder) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Description: t.Description,
		Priority:  string(t.Priority),
		Tags:      []string(t.Tags),
		Completed: t.Completed,
		Reminder:  newReminderResp(rem),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.CompletionDate != nil {
		s := t.CompletionDate.Format(time.RFC3339)
		resp.CompletionDate = &s
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(output task.ListTasksOutput) listResp {
	tasks := make([]taskResp, 0, len(output.Tasks))
	for _, item := range output.Tasks {
		tasks = append(tasks, newTaskResp(item.Task, item.Reminder))
	}
	return listResp{Tasks: tasks, Total: output.Total}
}

type toggleResp struct {
	Task              taskResp `json:"task"`
	ReminderCancelled bool     `json:"reminder_cancelled,omitempty"`
	ReminderRestored  bool     `json:"reminder_restored,omitempty"`
}

func (h *handler) newToggleResp(output task.ToggleOutput) toggleResp {
	return toggleResp{
		Task:              newTaskResp(output.Task, output.Reminder),
		ReminderCancelled: output.ReminderCancelled,
		ReminderRestored:  output.ReminderRestored,
	}
}

type deleteResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
