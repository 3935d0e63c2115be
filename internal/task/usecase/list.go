package usecase

import (
	"context"

	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
	repo "obsidianlist/internal/task/repository"
)

// List returns a creation-descending page of the caller's tasks. Limit is
// clamped to [1, 100] and offset to >= 0 rather than rejected.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	status := input.Status
	if status == "" {
		status = "all"
	}
	switch status {
	case "all", "pending", "completed":
	default:
		return task.ListTasksOutput{}, task.NewValidationError("Invalid status. Use: all, pending, completed")
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID: sc.UserID,
		Status: status,
		Limit:  clampLimit(input.Limit),
		Offset: clampOffset(input.Offset),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks, Total: total}, nil
}
