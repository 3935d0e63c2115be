package agent

import (
	"context"
	"fmt"

	"obsidianlist/internal/metrics"
	"obsidianlist/internal/model"
	"obsidianlist/pkg/log"
)

// Executor dispatches tool calls against the registry, injecting the
// authenticated caller's identity so the model cannot forge it. Every outcome
// is an envelope; nothing escapes as a Go error.
type Executor struct {
	registry *ToolRegistry
	l        log.Logger
	m        *metrics.Metrics
}

// NewExecutor creates a new tool executor.
func NewExecutor(registry *ToolRegistry, l log.Logger, m *metrics.Metrics) *Executor {
	return &Executor{
		registry: registry,
		l:        l,
		m:        m,
	}
}

// Execute runs one named tool for the given caller.
func (e *Executor) Execute(ctx context.Context, sc model.Scope, toolName string, args map[string]interface{}) Result {
	tool, ok := e.registry.Get(toolName)
	if !ok {
		e.l.Warnf(ctx, "agent.Executor: unknown tool %q", toolName)
		e.countExecution(toolName, "error")
		return Result{
			"status":  "error",
			"message": fmt.Sprintf("Unknown tool: %s", toolName),
		}
	}

	result := tool.Execute(ctx, sc, args)

	status, _ := result["status"].(string)
	if status == "" {
		status = "error"
	}
	e.countExecution(toolName, status)
	e.l.Debugf(ctx, "agent.Executor: tool=%s status=%s", toolName, status)

	return result
}

func (e *Executor) countExecution(toolName, status string) {
	if e.m == nil {
		return
	}
	e.m.ToolExecutionsTotal.WithLabelValues(toolName, status).Inc()
}
