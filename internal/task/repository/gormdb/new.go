package gormdb

import (
	"gorm.io/gorm"

	"obsidianlist/internal/task/repository"
	"obsidianlist/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the task domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}
