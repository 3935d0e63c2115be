package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "missing api key",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name: "defaults filled",
			cfg:  Config{APIKey: "re_test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				if tt.cfg.BaseURL != DefaultBaseURL {
					t.Errorf("BaseURL = %q, want %q", tt.cfg.BaseURL, DefaultBaseURL)
				}
				if tt.cfg.Timeout != DefaultTimeout {
					t.Errorf("Timeout = %v, want %v", tt.cfg.Timeout, DefaultTimeout)
				}
			}
		})
	}
}

func TestSendEmail(t *testing.T) {
	var gotAuth string
	var gotReq SendEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/emails" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(SendEmailResponse{ID: "email_123"})
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "re_test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.SendEmail(context.Background(), &SendEmailRequest{
		From:    "Obsidian List <reminders@example.com>",
		To:      []string{"user@example.com"},
		Subject: "Reminder: Buy groceries",
		HTML:    "<p>Buy groceries</p>",
	})
	if err != nil {
		t.Fatalf("SendEmail() error = %v", err)
	}

	if resp.ID != "email_123" {
		t.Errorf("ID = %q, want %q", resp.ID, "email_123")
	}
	if gotAuth != "Bearer re_test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(gotReq.To) != 1 || gotReq.To[0] != "user@example.com" {
		t.Errorf("To = %v", gotReq.To)
	}
}

func TestSendEmail_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{Name: "validation_error", Message: "invalid from address"})
	}))
	defer server.Close()

	client, err := New(Config{APIKey: "re_test", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.SendEmail(context.Background(), &SendEmailRequest{
		From: "bad", To: []string{"user@example.com"}, Subject: "x", HTML: "<p>x</p>",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid from address") {
		t.Errorf("error should surface API message, got: %v", err)
	}
}
