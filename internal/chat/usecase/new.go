package usecase

import (
	"context"

	"obsidianlist/internal/agent/orchestrator"
	"obsidianlist/internal/chat"
	"obsidianlist/internal/chat/repository"
	"obsidianlist/internal/metrics"
	"obsidianlist/internal/model"
	"obsidianlist/pkg/log"
)

// Agent is the slice of the orchestrator the chat use case drives.
type Agent interface {
	ProcessMessage(ctx context.Context, sc model.Scope, history []model.Message, userMessage string) (*orchestrator.Exchange, error)
}

const (
	defaultHistoryWindow = 20
	maxTitleLength       = 50
)

type implUseCase struct {
	repo          repository.Repository
	agent         Agent
	l             log.Logger
	m             *metrics.Metrics
	historyWindow int
}

// New creates the chat use case. historyWindow bounds how many prior
// messages are replayed to the agent; zero means the default of 20.
func New(repo repository.Repository, agent Agent, l log.Logger, m *metrics.Metrics, historyWindow int) chat.UseCase {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}
	return &implUseCase{
		repo:          repo,
		agent:         agent,
		l:             l,
		m:             m,
		historyWindow: historyWindow,
	}
}
