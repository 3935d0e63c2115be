package usecase

import (
	"github.com/go-playground/validator/v10"

	"obsidianlist/internal/user"
	"obsidianlist/internal/user/repository"
	"obsidianlist/pkg/log"
	"obsidianlist/pkg/scope"
)

type implUseCase struct {
	repo     repository.Repository
	tokens   *scope.Manager
	l        log.Logger
	validate *validator.Validate
}

// New creates the user use case. tokens signs the bearer tokens handed out
// on register and login.
func New(repo repository.Repository, tokens *scope.Manager, l log.Logger) user.UseCase {
	return &implUseCase{
		repo:     repo,
		tokens:   tokens,
		l:        l,
		validate: validator.New(),
	}
}
