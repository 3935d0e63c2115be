package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"obsidianlist/pkg/openai"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := openai.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for empty APIKey")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := openai.Config{APIKey: "sk-test"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != openai.DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.BaseURL != openai.DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
	})
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		messages := raw["messages"].([]interface{})
		first := messages[0].(map[string]interface{})

		// Mock commands driven by the first message content.
		switch first["content"] {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
			return
		case "want_tool_call":
			w.Write([]byte(`{
				"choices": [{
					"index": 0,
					"message": {
						"role": "assistant",
						"tool_calls": [{
							"id": "call_abc123",
							"type": "function",
							"function": {"name": "add_task", "arguments": "{\"title\":\"Call mom\"}"}
						}]
					},
					"finish_reason": "tool_calls"
				}],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
			return
		}

		w.Write([]byte(`{
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "mocked reply"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{
		APIKey:  "sk-test",
		Model:   "gpt-test",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	t.Run("text response", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Content{
				{Role: "user", Parts: []openai.Part{{Text: "hello"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "mocked reply" {
			t.Errorf("unexpected content: %+v", resp.Content)
		}
		if resp.Usage.TotalTokens != 10 {
			t.Errorf("expected 10 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("tool call response keeps call id", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Content{
				{Role: "user", Parts: []openai.Part{{Text: "want_tool_call"}}},
			},
			Tools: []openai.Tool{{
				Name:        "add_task",
				Description: "Create a task",
				Parameters:  map[string]interface{}{"type": "object"},
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 {
			t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc == nil {
			t.Fatal("expected a function call part")
		}
		if fc.ID != "call_abc123" {
			t.Errorf("expected call id to survive, got %q", fc.ID)
		}
		if fc.Name != "add_task" || fc.Args["title"] != "Call mom" {
			t.Errorf("unexpected call payload: %+v", fc)
		}
	})

	t.Run("api error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Content{
				{Role: "user", Parts: []openai.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "upstream exploded") {
			t.Errorf("expected API error message surfaced, got: %v", err)
		}
	})
}

func TestClient_ToolResultRoundTrip(t *testing.T) {
	// The second round must send role=tool messages tagged with the original
	// call id so the model can attribute each result.
	var captured struct {
		Messages []struct {
			Role       string `json:"role"`
			Content    string `json:"content"`
			ToolCallID string `json:"tool_call_id"`
			ToolCalls  []struct {
				ID string `json:"id"`
			} `json:"tool_calls"`
		} `json:"messages"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"done"}}],"usage":{}}`))
	}))
	defer ts.Close()

	client, _ := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL})

	_, err := client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "remind me"}}},
			{Role: "assistant", Parts: []openai.Part{{
				FunctionCall: &openai.FunctionCall{
					ID:   "call_1",
					Name: "add_task",
					Args: map[string]interface{}{"title": "x"},
				},
			}}},
			{Role: "tool", Parts: []openai.Part{{
				FunctionResponse: &openai.FunctionResponse{
					ID:       "call_1",
					Name:     "add_task",
					Response: map[string]interface{}{"status": "success"},
				},
			}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(captured.Messages) != 3 {
		t.Fatalf("expected 3 messages on the wire, got %d", len(captured.Messages))
	}
	assistant := captured.Messages[1]
	if len(assistant.ToolCalls) != 1 || assistant.ToolCalls[0].ID != "call_1" {
		t.Errorf("assistant tool_calls not preserved: %+v", assistant)
	}
	tool := captured.Messages[2]
	if tool.Role != "tool" || tool.ToolCallID != "call_1" {
		t.Errorf("tool result not tagged with call id: %+v", tool)
	}
	if !strings.Contains(tool.Content, `"status":"success"`) {
		t.Errorf("tool result payload missing: %q", tool.Content)
	}

	// Several results in one message fan out into one wire message per call.
	_, err = client.GenerateContent(context.Background(), &openai.Request{
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "remind me twice"}}},
			{Role: "tool", Parts: []openai.Part{
				{FunctionResponse: &openai.FunctionResponse{
					ID:       "call_1",
					Name:     "add_task",
					Response: map[string]interface{}{"status": "success"},
				}},
				{FunctionResponse: &openai.FunctionResponse{
					ID:       "call_2",
					Name:     "view_task",
					Response: map[string]interface{}{"status": "success"},
				}},
			}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("expected 3 messages on the wire, got %d", len(captured.Messages))
	}
	for i, wantID := range []string{"call_1", "call_2"} {
		msg := captured.Messages[i+1]
		if msg.Role != "tool" || msg.ToolCallID != wantID {
			t.Errorf("message %d: expected tool result for %s, got %+v", i+1, wantID, msg)
		}
	}
}
