package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"obsidianlist/internal/user"
	"obsidianlist/internal/user/repository"
)

// Register creates an account and signs it in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := uc.validate.Struct(input); err != nil {
		return user.AuthOutput{}, err
	}

	existing, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register: hash password: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.AuthOutput{}, err
	}

	token, err := uc.tokens.IssueToken(created.ID, created.Email, created.Name)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register: issue token: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: created, Token: token}, nil
}

// Login authenticates an account. Lookup misses and password mismatches both
// report invalid credentials so the response does not leak which emails
// exist.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := uc.validate.Struct(input); err != nil {
		return user.AuthOutput{}, err
	}

	account, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return user.AuthOutput{}, err
	}
	if account.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.tokens.IssueToken(account.ID, account.Email, account.Name)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Login: issue token: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: account, Token: token}, nil
}
