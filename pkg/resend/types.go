package resend

import (
	"errors"
	"time"
)

// Config holds Resend client configuration
type Config struct {
	APIKey  string
	BaseURL string        // optional, defaults to DefaultBaseURL
	Timeout time.Duration // optional, defaults to DefaultTimeout
}

// Validate checks the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("resend: API key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// SendEmailRequest is the payload for POST /emails
type SendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmailResponse is the Resend API response for a delivered email
type SendEmailResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
