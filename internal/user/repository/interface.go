package repository

import (
	"context"

	"obsidianlist/internal/model"
)

// Repository defines data access for accounts. Single-record getters return a
// zero-value entity (ID == "") when the row does not exist, not an error.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}
