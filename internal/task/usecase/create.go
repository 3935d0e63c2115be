package usecase

import (
	"context"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
	repo "obsidianlist/internal/task/repository"
)

// Create validates the input, then persists the task and its optional
// reminder in one transaction. Reminder validation happens before any
// persistence so a rejected reminder never leaks a task row.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return task.TaskOutput{}, err
	}

	description, err := validateDescription(input.Description)
	if err != nil {
		return task.TaskOutput{}, err
	}

	priority, err := validatePriority(input.Priority)
	if err != nil {
		return task.TaskOutput{}, err
	}

	tags, err := validateTags(input.Tags)
	if err != nil {
		return task.TaskOutput{}, err
	}

	var reminderOpt *repo.CreateReminderOptions
	if input.Reminder != nil {
		reminderOpt, err = uc.parseReminder(input.Reminder)
		if err != nil {
			return task.TaskOutput{}, err
		}
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Tags:        tags,
		Reminder:    reminderOpt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: created.Task, Reminder: created.Reminder}, nil
}
