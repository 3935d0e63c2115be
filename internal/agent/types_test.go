package agent_test

import (
	"context"
	"testing"

	"obsidianlist/internal/agent"
	"obsidianlist/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubTool struct {
	name      string
	lastScope model.Scope
	lastArgs  map[string]interface{}
	result    agent.Result
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return s.name + " stub" }
func (s *stubTool) Parameters() map[string]interface{}  { return map[string]interface{}{"type": "object"} }
func (s *stubTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) agent.Result {
	s.lastScope = sc
	s.lastArgs = args
	return s.result
}

func TestToolRegistry_PreservesOrder(t *testing.T) {
	registry := agent.NewToolRegistry()
	names := []string{"add_task", "view_task", "update_task", "mark_as_completed_task", "delete_task"}
	for _, name := range names {
		registry.Register(&stubTool{name: name})
	}
	// Duplicate registration is a no-op.
	registry.Register(&stubTool{name: "add_task"})

	defs := registry.ToFunctionDefinitions()
	if len(defs) != len(names) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(names))
	}
	for i, def := range defs {
		if def.Name != names[i] {
			t.Errorf("definition %d = %q, want %q", i, def.Name, names[i])
		}
	}
}

func TestExecutor_UnknownTool(t *testing.T) {
	executor := agent.NewExecutor(agent.NewToolRegistry(), &mockLogger{}, nil)

	result := executor.Execute(context.Background(), model.Scope{UserID: "u-1"}, "drop_tables", nil)
	if result["status"] != "error" {
		t.Fatalf("result = %v", result)
	}
	if result["message"] != "Unknown tool: drop_tables" {
		t.Errorf("message = %v", result["message"])
	}
}

func TestExecutor_InjectsCallerScope(t *testing.T) {
	tool := &stubTool{
		name:   "view_task",
		result: agent.Result{"status": "success", "message": "ok"},
	}
	registry := agent.NewToolRegistry()
	registry.Register(tool)
	executor := agent.NewExecutor(registry, &mockLogger{}, nil)

	sc := model.Scope{UserID: "u-7", Email: "bob@example.com"}
	args := map[string]interface{}{"status": "all"}
	result := executor.Execute(context.Background(), sc, "view_task", args)

	if result["status"] != "success" {
		t.Fatalf("result = %v", result)
	}
	if tool.lastScope.UserID != "u-7" {
		t.Errorf("scope = %+v", tool.lastScope)
	}
	if tool.lastArgs["status"] != "all" {
		t.Errorf("args = %v", tool.lastArgs)
	}
}
