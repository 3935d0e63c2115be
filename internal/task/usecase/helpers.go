package usecase

import (
	"strings"
	"time"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
	repo "obsidianlist/internal/task/repository"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
	maxTags           = 10
	maxTagLen         = 30
)

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", task.NewValidationError("Task title is required")
	}
	if len(title) > maxTitleLen {
		return "", task.NewValidationError("Task title must be 200 characters or less")
	}
	return trimmed, nil
}

func validateDescription(description string) (string, error) {
	if len(description) > maxDescriptionLen {
		return "", task.NewValidationError("Task description must be 1000 characters or less")
	}
	return strings.TrimSpace(description), nil
}

func validatePriority(priority string) (model.Priority, error) {
	if priority == "" {
		return model.PriorityMedium, nil
	}
	p := model.Priority(priority)
	if !p.Valid() {
		return "", task.NewValidationError("Invalid priority. Use: low, medium, high")
	}
	return p, nil
}

func validateTags(tags []string) ([]string, error) {
	if len(tags) > maxTags {
		return nil, task.NewValidationError("A task may carry at most 10 tags")
	}
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > maxTagLen {
			return nil, task.NewValidationError("Tags must be 30 characters or less")
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned, nil
}

// parseReminder validates a reminder input against "now" and returns the
// normalized store fields. The target must be strictly in the future.
func (uc *implUseCase) parseReminder(input *task.ReminderInput) (*repo.CreateReminderOptions, error) {
	if input.Date == "" || input.Time == "" {
		return nil, task.NewValidationError("Reminder requires both date and time")
	}

	day, err := time.ParseInLocation("2006-01-02", input.Date, uc.loc)
	if err != nil {
		return nil, task.NewValidationError("Invalid reminder date format. Use YYYY-MM-DD")
	}

	layout := "15:04"
	if len(input.Time) == len("15:04:05") {
		layout = "15:04:05"
	}
	clock, err := time.ParseInLocation(layout, input.Time, uc.loc)
	if err != nil {
		return nil, task.NewValidationError("Invalid reminder time format. Use HH:MM")
	}

	target := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, uc.loc)
	if !target.After(uc.now().In(uc.loc)) {
		return nil, task.NewValidationError("Reminder must be in the future")
	}

	return &repo.CreateReminderOptions{
		Date: input.Date,
		Day:  day.Weekday().String(),
		Time: input.Time,
	}, nil
}

// clampLimit bounds a page size to [1, 100], defaulting to 50 when unset.
func clampLimit(limit int) int {
	if limit == 0 {
		return 50
	}
	if limit < 1 {
		return 1
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
