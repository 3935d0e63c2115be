package gormdb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"obsidianlist/internal/model"
	repo "obsidianlist/internal/task/repository"
)

// setReminderStatusTx is the one place reminder status, sent_at and the
// attempt counter are written. Both the completion-toggle transaction and the
// scheduler path go through it.
func setReminderStatusTx(tx *gorm.DB, reminderID string, status model.ReminderStatus, sentAt *time.Time, incrementAttempts bool) error {
	updates := map[string]interface{}{
		"status":  status,
		"sent_at": sentAt,
	}
	if incrementAttempts {
		updates["delivery_attempts"] = gorm.Expr("delivery_attempts + 1")
	}
	return tx.Model(&model.Reminder{}).
		Where("id = ?", reminderID).
		Updates(updates).Error
}

// GetReminderByTaskID returns the task's reminder, or a zero-value Reminder
// (ID == "") when none exists.
func (r *implRepository) GetReminderByTaskID(ctx context.Context, taskID string) (model.Reminder, error) {
	var rem model.Reminder
	err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&rem).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.GetReminderByTaskID: %v", err)
		return model.Reminder{}, repo.ErrFailedToGet
	}
	return rem, nil
}

// ReplaceReminder creates or overwrites the task's reminder, resetting it to
// pending with a cleared sent_at and attempt counter.
func (r *implRepository) ReplaceReminder(ctx context.Context, opt repo.ReplaceReminderOptions) (model.Reminder, error) {
	var rem model.Reminder

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("task_id = ?", opt.TaskID).First(&rem).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rem = model.Reminder{
				ID:           uuid.NewString(),
				TaskID:       opt.TaskID,
				UserID:       opt.UserID,
				ReminderDate: opt.Date,
				ReminderDay:  opt.Day,
				ReminderTime: opt.Time,
				Status:       model.ReminderPending,
			}
			return tx.Create(&rem).Error
		}
		if err != nil {
			return err
		}

		rem.ReminderDate = opt.Date
		rem.ReminderDay = opt.Day
		rem.ReminderTime = opt.Time
		rem.Status = model.ReminderPending
		rem.SentAt = nil
		rem.DeliveryAttempts = 0
		return tx.Save(&rem).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.ReplaceReminder: %v", err)
		return model.Reminder{}, repo.ErrFailedToUpdate
	}
	return rem, nil
}

// DeleteReminderByTaskID removes the task's reminder if one exists.
func (r *implRepository) DeleteReminderByTaskID(ctx context.Context, taskID string) error {
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.Reminder{}).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.DeleteReminderByTaskID: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListPendingReminders returns every reminder still in the pending state.
func (r *implRepository) ListPendingReminders(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).
		Where("status = ?", model.ReminderPending).
		Find(&reminders).Error; err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.ListPendingReminders: %v", err)
		return nil, repo.ErrFailedToList
	}
	return reminders, nil
}

// SetReminderStatus applies the authoritative status mutation and returns the
// updated reminder. Returns a zero-value Reminder when the row vanished.
func (r *implRepository) SetReminderStatus(ctx context.Context, opt repo.SetReminderStatusOptions) (model.Reminder, error) {
	var rem model.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setReminderStatusTx(tx, opt.ReminderID, opt.Status, opt.SentAt, opt.IncrementAttempts); err != nil {
			return err
		}
		return tx.Where("id = ?", opt.ReminderID).First(&rem).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Reminder{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/gormdb.SetReminderStatus: %v", err)
		return model.Reminder{}, repo.ErrFailedToUpdate
	}
	return rem, nil
}
