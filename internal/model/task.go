package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Tags is an ordered list of task labels, stored as a JSON column.
type Tags []string

// Scan implements sql.Scanner.
func (t *Tags) Scan(value any) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tags: unsupported column type %T", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(t))
}

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Task is a single todo item owned by one user. CompletionDate is non-nil
// exactly when Completed is true.
type Task struct {
	ID             string `gorm:"primaryKey;size:36"`
	UserID         string `gorm:"size:36;index;not null"`
	Title          string `gorm:"size:200;not null"`
	Description    string `gorm:"size:1000"`
	Priority       Priority `gorm:"size:10;default:medium"`
	Tags           Tags     `gorm:"type:text"`
	Completed      bool     `gorm:"index;default:false"`
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Reminder *Reminder `gorm:"constraint:OnDelete:CASCADE"`
}
