package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"obsidianlist/internal/model"
	repo "obsidianlist/internal/user/repository"
	"obsidianlist/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a gorm-backed Repository for the user domain.
func New(db *gorm.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("user/repository/gormdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// CreateUser inserts a new account.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	u := model.User{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		r.l.Errorf(ctx, "user/repository/gormdb.CreateUser: %v", err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetUserByID retrieves an account by ID. Returns a zero-value User
// (ID == "") when the row does not exist.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/gormdb.GetUserByID: %v", err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// GetUserByEmail retrieves an account by email. Returns a zero-value User
// (ID == "") when the row does not exist.
func (r *implRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "user/repository/gormdb.GetUserByEmail: %v", err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
