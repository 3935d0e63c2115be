package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"obsidianlist/internal/task"
)

var errMissingID = errors.New("id is required")

type reminderReq struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type createReq struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	Tags        []string     `json:"tags"`
	Reminder    *reminderReq `json:"reminder"`
}

func (r createReq) toInput() task.CreateTaskInput {
	input := task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Tags:        r.Tags,
	}
	if r.Reminder != nil {
		input.Reminder = &task.ReminderInput{Date: r.Reminder.Date, Time: r.Reminder.Time}
	}
	return input
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{Status: r.Status, Limit: r.Limit, Offset: r.Offset}
}

type updateReq struct {
	ID          string       `json:"-"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Priority    *string      `json:"priority"`
	Tags        *[]string    `json:"tags"`
	Reminder    *reminderReq `json:"reminder"`
	ReminderSet bool         `json:"-"`
}

// UnmarshalJSON records whether the reminder key was present at all, so the
// handler can distinguish "leave unchanged" from "remove".
func (r *updateReq) UnmarshalJSON(data []byte) error {
	type alias updateReq
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = updateReq(a)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	_, r.ReminderSet = probe["reminder"]
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		TaskID:      r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Tags:        r.Tags,
		ReminderSet: r.ReminderSet,
	}
	if r.Reminder != nil {
		input.Reminder = &task.ReminderInput{Date: r.Reminder.Date, Time: r.Reminder.Time}
	} else if r.ReminderSet {
		input.Reminder = &task.ReminderInput{}
	}
	return input
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}
