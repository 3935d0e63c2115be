package orchestrator

import (
	"context"
	"time"

	"obsidianlist/internal/agent"
	"obsidianlist/pkg/llmprovider"
	"obsidianlist/pkg/log"
)

// llmClient is the slice of llmprovider.Manager the orchestrator uses.
type llmClient interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Orchestrator drives the two-round completion protocol: one round with the
// tool catalog, an execution pass, and one round to phrase the outcome.
type Orchestrator struct {
	llm      llmClient
	registry *agent.ToolRegistry
	executor *agent.Executor
	l        log.Logger
	cfg      Config
	now      func() time.Time
}

// New creates an orchestrator over the given provider manager and tool set.
func New(llm llmClient, registry *agent.ToolRegistry, executor *agent.Executor, l log.Logger, cfg Config) *Orchestrator {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = defaultHistoryWindow
	}
	return &Orchestrator{
		llm:      llm,
		registry: registry,
		executor: executor,
		l:        l,
		cfg:      cfg,
		now:      time.Now,
	}
}
