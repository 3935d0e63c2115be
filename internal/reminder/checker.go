package reminder

import (
	"context"
	"fmt"
	"time"

	"obsidianlist/internal/model"
	"obsidianlist/internal/notify"
	"obsidianlist/internal/task/repository"
)

// Scan outcome labels for the reminders metric.
const (
	resultFired     = "fired"
	resultCancelled = "cancelled"
	resultFailed    = "failed"
	resultRetried   = "retried"
	resultSkipped   = "skipped"
)

// RunOnce performs a single scan over pending reminders, sequentially. Due
// means the target is at or before now plus the lookahead window, so a
// reminder is never later than one interval and never earlier than the
// window allows.
func (c *Checker) RunOnce(ctx context.Context) error {
	now := c.now().In(c.loc)
	windowEnd := now.Add(c.cfg.Lookahead)

	pending, err := c.repo.ListPendingReminders(ctx)
	if err != nil {
		return fmt.Errorf("list pending reminders: %w", err)
	}

	c.l.Debugf(ctx, "internal.reminder.Checker: scanning %d pending reminder(s) at %s", len(pending), now.Format(time.RFC3339))

	for _, rem := range pending {
		due, err := rem.Due(c.loc)
		if err != nil {
			c.l.Warnf(ctx, "internal.reminder.Checker: %v", err)
			c.count(resultSkipped)
			continue
		}
		if due.After(windowEnd) {
			continue
		}
		c.process(ctx, rem, now)
	}
	return nil
}

// process handles one due reminder. Failures never abort the scan; the row
// either moves to a terminal status or stays pending for the next tick.
func (c *Checker) process(ctx context.Context, rem model.Reminder, now time.Time) {
	task, err := c.repo.GetTask(ctx, rem.TaskID)
	if err != nil {
		c.l.Errorf(ctx, "internal.reminder.Checker: load task %s: %v", rem.TaskID, err)
		c.count(resultSkipped)
		return
	}
	if task.ID == "" {
		c.l.Warnf(ctx, "internal.reminder.Checker: task %s vanished, skipping reminder %s", rem.TaskID, rem.ID)
		c.count(resultSkipped)
		return
	}

	// The task was completed after this reminder was scheduled; cancel
	// instead of notifying.
	if task.Completed {
		sentAt := now.UTC()
		if _, err := c.repo.SetReminderStatus(ctx, repository.SetReminderStatusOptions{
			ReminderID: rem.ID,
			Status:     model.ReminderCancelled,
			SentAt:     &sentAt,
		}); err != nil {
			c.l.Errorf(ctx, "internal.reminder.Checker: cancel reminder %s: %v", rem.ID, err)
			return
		}
		c.l.Infof(ctx, "internal.reminder.Checker: cancelled reminder %s for completed task '%s'", rem.ID, task.Title)
		c.count(resultCancelled)
		return
	}

	user, err := c.users.GetUserByID(ctx, rem.UserID)
	if err != nil {
		c.l.Errorf(ctx, "internal.reminder.Checker: load user %s: %v", rem.UserID, err)
		c.count(resultSkipped)
		return
	}
	if user.ID == "" {
		c.l.Warnf(ctx, "internal.reminder.Checker: user %s vanished, skipping reminder %s", rem.UserID, rem.ID)
		c.count(resultSkipped)
		return
	}

	outcome := c.mailer.SendReminder(ctx, notify.ReminderEmail{
		To:              user.Email,
		UserName:        user.Name,
		TaskTitle:       task.Title,
		TaskDescription: task.Description,
		ReminderDate:    rem.ReminderDate,
		ReminderDay:     rem.ReminderDay,
		ReminderTime:    rem.ReminderTime,
	})

	if outcome.Delivered {
		sentAt := now.UTC()
		if _, err := c.repo.SetReminderStatus(ctx, repository.SetReminderStatusOptions{
			ReminderID: rem.ID,
			Status:     model.ReminderFired,
			SentAt:     &sentAt,
		}); err != nil {
			c.l.Errorf(ctx, "internal.reminder.Checker: mark reminder %s fired: %v", rem.ID, err)
			return
		}
		c.l.Infof(ctx, "internal.reminder.Checker: sent reminder for task '%s' to %s (delivery %s)", task.Title, user.Email, outcome.DeliveryID)
		c.count(resultFired)
		return
	}

	c.failAttempt(ctx, rem, task.Title, now, outcome.Err)
}

// failAttempt records one failed delivery. The reminder stays pending for the
// next tick until the attempt ceiling moves it to failed for good.
func (c *Checker) failAttempt(ctx context.Context, rem model.Reminder, taskTitle string, now time.Time, cause error) {
	attempts := rem.DeliveryAttempts + 1

	if attempts >= c.cfg.MaxDeliveryAttempts {
		sentAt := now.UTC()
		if _, err := c.repo.SetReminderStatus(ctx, repository.SetReminderStatusOptions{
			ReminderID:        rem.ID,
			Status:            model.ReminderFailed,
			SentAt:            &sentAt,
			IncrementAttempts: true,
		}); err != nil {
			c.l.Errorf(ctx, "internal.reminder.Checker: mark reminder %s failed: %v", rem.ID, err)
			return
		}
		c.l.Errorf(ctx, "internal.reminder.Checker: reminder %s for task '%s' failed permanently after %d attempts: %v",
			rem.ID, taskTitle, attempts, cause)
		c.count(resultFailed)
		return
	}

	if _, err := c.repo.SetReminderStatus(ctx, repository.SetReminderStatusOptions{
		ReminderID:        rem.ID,
		Status:            model.ReminderPending,
		IncrementAttempts: true,
	}); err != nil {
		c.l.Errorf(ctx, "internal.reminder.Checker: record attempt for reminder %s: %v", rem.ID, err)
		return
	}
	c.l.Warnf(ctx, "internal.reminder.Checker: delivery attempt %d/%d failed for reminder %s: %v",
		attempts, c.cfg.MaxDeliveryAttempts, rem.ID, cause)
	c.count(resultRetried)
}

func (c *Checker) count(result string) {
	if c.m == nil {
		return
	}
	c.m.RemindersTotal.WithLabelValues(result).Inc()
}
