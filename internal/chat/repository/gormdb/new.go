package gormdb

import (
	"gorm.io/gorm"

	"obsidianlist/internal/chat/repository"
	"obsidianlist/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the chat domain.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}
