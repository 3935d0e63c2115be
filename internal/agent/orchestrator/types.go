package orchestrator

import "obsidianlist/internal/model"

// Config tunes one exchange with the model.
type Config struct {
	// HistoryWindow is the number of prior messages replayed to the model,
	// newest last. Zero means the default of 20.
	HistoryWindow int
	Temperature   float64
	MaxTokens     int
}

// Exchange is the outcome of one processed user message: the assistant's
// reply and a record of every tool call made while producing it.
type Exchange struct {
	Reply     string
	ToolCalls model.ToolCallLog
}
