package usecase

import (
	"time"

	"obsidianlist/internal/task"
	"obsidianlist/internal/task/repository"
	"obsidianlist/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	loc  *time.Location
	now  func() time.Time
}

// New creates a new task UseCase implementation. loc is the fixed offset all
// reminder date-time comparisons use.
func New(repo repository.Repository, l log.Logger, loc *time.Location) task.UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		repo: repo,
		l:    l,
		loc:  loc,
		now:  time.Now,
	}
}
