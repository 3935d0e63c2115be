package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint. Any OpenAI-compatible
	// endpoint (DeepSeek, Qwen, local gateways) works via Config.BaseURL.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "gpt-4-turbo-preview"

	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 60 * time.Second
)
