package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
	repo "obsidianlist/internal/task/repository"
)

// CreateTask inserts a new Task and its optional Reminder in one transaction.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.TaskWithReminder, error) {
	newTask := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		Tags:        model.Tags(opt.Tags),
		Completed:   false,
	}

	var newReminder *model.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTask).Error; err != nil {
			return err
		}
		if opt.Reminder != nil {
			newReminder = &model.Reminder{
				ID:           uuid.NewString(),
				TaskID:       newTask.ID,
				UserID:       opt.UserID,
				ReminderDate: opt.Reminder.Date,
				ReminderDay:  opt.Reminder.Day,
				ReminderTime: opt.Reminder.Time,
				Status:       model.ReminderPending,
			}
			if err := tx.Create(newReminder).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.CreateTask: %v", err)
		return task.TaskWithReminder{}, repo.ErrFailedToInsert
	}

	return task.TaskWithReminder{Task: newTask, Reminder: newReminder}, nil
}

// GetTask retrieves a single Task by ID. Returns a zero-value Task
// (ID == "") when the row does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.GetTask: %v", err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a creation-descending page of tasks with their reminders
// and the total count matching the filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.TaskWithReminder, int, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", opt.UserID)
	switch opt.Status {
	case "pending":
		query = query.Where("completed = ?", false)
	case "completed":
		query = query.Where("completed = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.ListTasks count: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	var tasks []model.Task
	if err := query.
		Order("created_at DESC").
		Limit(opt.Limit).
		Offset(opt.Offset).
		Find(&tasks).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.ListTasks: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	results := make([]task.TaskWithReminder, 0, len(tasks))
	for _, t := range tasks {
		var rem model.Reminder
		err := r.db.WithContext(ctx).Where("task_id = ?", t.ID).First(&rem).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			results = append(results, task.TaskWithReminder{Task: t})
			continue
		}
		if err != nil {
			r.l.Errorf(ctx, "task/repository/gormdb.ListTasks reminder: %v", err)
			return nil, 0, repo.ErrFailedToList
		}
		reminder := rem
		results = append(results, task.TaskWithReminder{Task: t, Reminder: &reminder})
	}

	return results, int(total), nil
}

// UpdateTask applies a partial update and returns the updated entity.
// Returns a zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	updates := map[string]interface{}{}
	if opt.Title != nil {
		updates["title"] = *opt.Title
	}
	if opt.Description != nil {
		updates["description"] = *opt.Description
	}
	if opt.Priority != nil {
		updates["priority"] = *opt.Priority
	}
	if opt.Tags != nil {
		updates["tags"] = model.Tags(*opt.Tags)
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ?", opt.ID).
			Updates(updates).Error; err != nil {
			r.l.Errorf(ctx, "task/repository/gormdb.UpdateTask: %v", err)
			return model.Task{}, repo.ErrFailedToUpdate
		}
	}

	return r.GetTask(ctx, opt.ID)
}

// DeleteTask removes a Task and its reminder.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.Reminder{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Task{}).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ToggleCompletion flips a task's completed flag and applies the paired
// reminder transition in the same transaction. On completion an unsent
// reminder is cancelled; on reopening a completion-cancelled reminder is
// restored only while its target is still in the future.
func (r *implRepository) ToggleCompletion(ctx context.Context, opt repo.ToggleCompletionOptions) (repo.ToggleCompletionResult, error) {
	var result repo.ToggleCompletionResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var t model.Task
		if err := tx.Where("id = ?", opt.TaskID).First(&t).Error; err != nil {
			return err
		}

		t.Completed = !t.Completed
		if t.Completed {
			now := opt.Now
			t.CompletionDate = &now
		} else {
			t.CompletionDate = nil
		}
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		var rem model.Reminder
		err := tx.Where("task_id = ?", opt.TaskID).First(&rem).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err == nil {
			if t.Completed && rem.Status == model.ReminderPending {
				sentAt := opt.Now
				if err := setReminderStatusTx(tx, rem.ID, model.ReminderCancelled, &sentAt, false); err != nil {
					return err
				}
				rem.Status = model.ReminderCancelled
				rem.SentAt = &sentAt
				result.ReminderCancelled = true
			} else if !t.Completed && rem.Status == model.ReminderCancelled {
				if due, derr := rem.Due(opt.Location); derr == nil && due.After(opt.Now) {
					if err := setReminderStatusTx(tx, rem.ID, model.ReminderPending, nil, false); err != nil {
						return err
					}
					rem.Status = model.ReminderPending
					rem.SentAt = nil
					result.ReminderRestored = true
				}
			}
			reminder := rem
			result.Reminder = &reminder
		}

		result.Task = t
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ToggleCompletionResult{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.ToggleCompletion: %v", err)
		return repo.ToggleCompletionResult{}, repo.ErrFailedToUpdate
	}
	return result, nil
}
