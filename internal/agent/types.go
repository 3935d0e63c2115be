package agent

import (
	"context"

	"obsidianlist/internal/model"
	"obsidianlist/pkg/llmprovider"
)

// Result is the uniform tool envelope: always a "status" of "success" or
// "error" plus a human-readable "message", with tool-specific payload keys
// alongside.
type Result map[string]interface{}

// Tool represents an agent tool that can be called by the LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for the given caller. It folds every failure
	// into an error envelope and never returns a Go error.
	Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) Result
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools []Tool
	index map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		index: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Registration order is preserved for
// the function catalog.
func (r *ToolRegistry) Register(tool Tool) {
	if _, ok := r.index[tool.Name()]; ok {
		return
	}
	r.tools = append(r.tools, tool)
	r.index[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.index[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	return r.tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
