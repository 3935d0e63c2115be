package task

import (
	"context"

	"obsidianlist/internal/model"
)

// UseCase is the task domain service shared by the REST handlers and the
// agent tools.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, taskID string) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (TaskOutput, error)
	ToggleComplete(ctx context.Context, sc model.Scope, taskID string) (ToggleOutput, error)
	Delete(ctx context.Context, sc model.Scope, taskID string) (DeleteOutput, error)
}
