package model

import (
	"fmt"
	"time"
)

// ReminderStatus is the delivery state of a reminder.
//
// A reminder leaves "pending" exactly once: the scheduler fires it, completing
// the owning task cancels it, or the delivery-attempt ceiling marks it failed.
// Only "cancelled" can transition back to "pending" (task reopened while the
// target is still in the future).
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderFired     ReminderStatus = "fired"
	ReminderCancelled ReminderStatus = "cancelled"
	ReminderFailed    ReminderStatus = "failed"
)

// Reminder is a one-shot notification bound to exactly one task. Dates and
// times are stored as the strings the tool layer validated (YYYY-MM-DD and
// HH:MM[:SS]) so the scheduler and API agree on formats.
type Reminder struct {
	ID               string `gorm:"primaryKey;size:36"`
	TaskID           string `gorm:"size:36;uniqueIndex;not null"`
	UserID           string `gorm:"size:36;index;not null"`
	ReminderDate     string `gorm:"size:10;not null"`
	ReminderDay      string `gorm:"size:10;not null"`
	ReminderTime     string `gorm:"size:8;not null"`
	Status           ReminderStatus `gorm:"size:10;index;default:pending"`
	SentAt           *time.Time
	DeliveryAttempts int `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Sent reports whether the reminder left the pending state. Kept as the wire
// field alongside the status enum so API responses match the legacy shape.
func (r Reminder) Sent() bool {
	return r.Status != ReminderPending
}

// Due combines the stored date and time into a single local timestamp.
func (r Reminder) Due(loc *time.Location) (time.Time, error) {
	layout := "2006-01-02 15:04"
	value := r.ReminderDate + " " + r.ReminderTime
	if len(r.ReminderTime) == len("15:04:05") {
		layout = "2006-01-02 15:04:05"
	}
	due, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("reminder %s: bad date/time %q %q: %w", r.ID, r.ReminderDate, r.ReminderTime, err)
	}
	return due, nil
}
