package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type resendImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// newResendImpl creates a new Resend implementation.
func newResendImpl(cfg Config) *resendImpl {
	return &resendImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SendEmail posts the email to the Resend API.
func (r *resendImpl) SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		r.baseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("resend: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("resend: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("resend: API error %d: %s", resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("resend: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var sendResp SendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return nil, fmt.Errorf("resend: failed to decode response: %w", err)
	}

	return &sendResp, nil
}
