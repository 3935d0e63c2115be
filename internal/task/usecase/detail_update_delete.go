package usecase

import (
	"context"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
	repo "obsidianlist/internal/task/repository"
)

// getOwnedTask loads a task and enforces ownership. Missing tasks and
// foreign tasks fail with distinct errors.
func (uc *implUseCase) getOwnedTask(ctx context.Context, sc model.Scope, taskID string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.getOwnedTask GetTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if t.UserID != sc.UserID {
		return model.Task{}, task.ErrPermissionDenied
	}
	return t, nil
}

// Detail returns one owned task with its reminder.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, taskID string) (task.TaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, sc, taskID)
	if err != nil {
		return task.TaskOutput{}, err
	}

	rem, err := uc.repo.GetReminderByTaskID(ctx, taskID)
	if err != nil {
		return task.TaskOutput{}, err
	}

	out := task.TaskOutput{Task: t}
	if rem.ID != "" {
		out.Reminder = &rem
	}
	return out, nil
}

// Update applies a partial update. A present-but-empty reminder removes the
// existing reminder; a populated one replaces it and resets it to pending;
// an absent one leaves it untouched.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.TaskOutput, error) {
	if input.Title == nil && input.Description == nil && input.Priority == nil &&
		input.Tags == nil && !input.ReminderSet {
		return task.TaskOutput{}, task.NewValidationError("At least one field (title, description, or reminder) must be provided")
	}

	var titlePtr *string
	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return task.TaskOutput{}, err
		}
		titlePtr = &title
	}

	var descPtr *string
	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return task.TaskOutput{}, err
		}
		descPtr = &description
	}

	var priorityPtr *model.Priority
	if input.Priority != nil {
		priority, err := validatePriority(*input.Priority)
		if err != nil {
			return task.TaskOutput{}, err
		}
		priorityPtr = &priority
	}

	var tagsPtr *[]string
	if input.Tags != nil {
		tags, err := validateTags(*input.Tags)
		if err != nil {
			return task.TaskOutput{}, err
		}
		tagsPtr = &tags
	}

	var reminderOpt *repo.CreateReminderOptions
	removeReminder := false
	if input.ReminderSet {
		if input.Reminder.Empty() {
			removeReminder = true
		} else {
			var err error
			reminderOpt, err = uc.parseReminder(input.Reminder)
			if err != nil {
				return task.TaskOutput{}, err
			}
		}
	}

	if _, err := uc.getOwnedTask(ctx, sc, input.TaskID); err != nil {
		return task.TaskOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          input.TaskID,
		Title:       titlePtr,
		Description: descPtr,
		Priority:    priorityPtr,
		Tags:        tagsPtr,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	out := task.TaskOutput{Task: updated}
	switch {
	case removeReminder:
		if err := uc.repo.DeleteReminderByTaskID(ctx, input.TaskID); err != nil {
			uc.l.Errorf(ctx, "task.uc.Update DeleteReminderByTaskID: %v", err)
			return task.TaskOutput{}, err
		}
	case reminderOpt != nil:
		rem, err := uc.repo.ReplaceReminder(ctx, repo.ReplaceReminderOptions{
			TaskID: input.TaskID,
			UserID: sc.UserID,
			Date:   reminderOpt.Date,
			Day:    reminderOpt.Day,
			Time:   reminderOpt.Time,
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.uc.Update ReplaceReminder: %v", err)
			return task.TaskOutput{}, err
		}
		out.Reminder = &rem
	default:
		rem, err := uc.repo.GetReminderByTaskID(ctx, input.TaskID)
		if err != nil {
			return task.TaskOutput{}, err
		}
		if rem.ID != "" {
			out.Reminder = &rem
		}
	}

	return out, nil
}

// ToggleComplete flips completion and lets the store apply the paired
// reminder cancellation/restoration atomically.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, taskID string) (task.ToggleOutput, error) {
	if _, err := uc.getOwnedTask(ctx, sc, taskID); err != nil {
		return task.ToggleOutput{}, err
	}

	result, err := uc.repo.ToggleCompletion(ctx, repo.ToggleCompletionOptions{
		TaskID:   taskID,
		Now:      uc.now().In(uc.loc),
		Location: uc.loc,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.ToggleComplete ToggleCompletion: %v", err)
		return task.ToggleOutput{}, err
	}
	if result.Task.ID == "" {
		// Row vanished between the ownership check and the toggle.
		return task.ToggleOutput{}, task.ErrTaskNotFound
	}

	return task.ToggleOutput{
		Task:              result.Task,
		Reminder:          result.Reminder,
		ReminderCancelled: result.ReminderCancelled,
		ReminderRestored:  result.ReminderRestored,
	}, nil
}

// Delete hard-deletes an owned task; the reminder cascades. The deleted id
// and title are echoed for confirmation messages.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) (task.DeleteOutput, error) {
	t, err := uc.getOwnedTask(ctx, sc, taskID)
	if err != nil {
		return task.DeleteOutput{}, err
	}

	if err := uc.repo.DeleteTask(ctx, taskID); err != nil {
		uc.l.Errorf(ctx, "task.uc.Delete DeleteTask: %v", err)
		return task.DeleteOutput{}, err
	}

	return task.DeleteOutput{ID: t.ID, Title: t.Title}, nil
}
