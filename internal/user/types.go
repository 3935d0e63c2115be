package user

import "obsidianlist/internal/model"

// RegisterInput creates a new account. Validation tags are enforced by the
// use case before anything is persisted.
type RegisterInput struct {
	Name     string `validate:"required,min=1,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
}

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthOutput is a successful registration or login: the account plus a
// signed bearer token.
type AuthOutput struct {
	User  model.User
	Token string
}
