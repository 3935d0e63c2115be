package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"obsidianlist/internal/model"
	"obsidianlist/pkg/llmprovider"
)

// ErrEmptyResponse means the model returned no usable content.
var ErrEmptyResponse = errors.New("empty model response")

// ProcessMessage runs one exchange for the authenticated caller. Round one
// offers the full tool catalog; any requested calls are executed sequentially
// in the model's order; round two phrases the results with no tools offered.
// A provider failure aborts the exchange, so nothing gets half-persisted by
// the caller. A failed tool is a normal result the model explains to the user.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sc model.Scope, history []model.Message, userMessage string) (*Exchange, error) {
	messages := o.buildMessages(history, userMessage)
	system := &llmprovider.Message{
		Role:  "system",
		Parts: []llmprovider.Part{{Text: buildSystemInstruction(o.now())}},
	}

	req := &llmprovider.Request{
		SystemInstruction: system,
		Messages:          messages,
		Tools:             o.registry.ToFunctionDefinitions(),
		Temperature:       o.cfg.Temperature,
		MaxTokens:         o.cfg.MaxTokens,
	}

	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: first round: %w", logPrefixProcessMessage, err)
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		reply := resp.Text()
		if reply == "" {
			return nil, fmt.Errorf("%s: %w", logPrefixProcessMessage, ErrEmptyResponse)
		}
		return &Exchange{Reply: reply}, nil
	}

	records := make(model.ToolCallLog, 0, len(calls))
	responseParts := make([]llmprovider.Part, 0, len(calls))
	for _, call := range calls {
		o.l.Infof(ctx, "%s: calling tool %s", logPrefixProcessMessage, call.Name)

		result := o.executor.Execute(ctx, sc, call.Name, call.Args)

		records = append(records, model.ToolCallRecord{
			Tool:      call.Name,
			Arguments: call.Args,
			Result:    result,
		})
		responseParts = append(responseParts, llmprovider.Part{
			FunctionResponse: &llmprovider.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: map[string]interface{}(result),
			},
		})
	}

	// Round two replays the model's own call request followed by the tagged
	// results, with the catalog withheld so the answer is plain text.
	second := &llmprovider.Request{
		SystemInstruction: system,
		Messages: append(append(messages,
			resp.Content),
			llmprovider.Message{Role: "tool", Parts: responseParts}),
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	}

	final, err := o.llm.GenerateContent(ctx, second)
	if err != nil {
		return nil, fmt.Errorf("%s: second round: %w", logPrefixProcessMessage, err)
	}

	reply := final.Text()
	if reply == "" {
		return nil, fmt.Errorf("%s: %w", logPrefixProcessMessage, ErrEmptyResponse)
	}

	return &Exchange{Reply: reply, ToolCalls: records}, nil
}

// buildMessages replays the most recent history inside the configured window,
// oldest first, then the new user message.
func (o *Orchestrator) buildMessages(history []model.Message, userMessage string) []llmprovider.Message {
	if len(history) > o.cfg.HistoryWindow {
		history = history[len(history)-o.cfg.HistoryWindow:]
	}

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, msg := range history {
		role := msg.Role
		if role != model.RoleUser && role != model.RoleAssistant {
			continue
		}
		messages = append(messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: msg.Content}},
		})
	}
	messages = append(messages, llmprovider.Message{
		Role:  model.RoleUser,
		Parts: []llmprovider.Part{{Text: userMessage}},
	})
	return messages
}
