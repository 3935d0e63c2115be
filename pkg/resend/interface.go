package resend

import "context"

// IResend defines the interface for the Resend email API client.
type IResend interface {
	// SendEmail delivers a single email and returns the provider's delivery ID
	SendEmail(ctx context.Context, req *SendEmailRequest) (*SendEmailResponse, error)
}

// New creates a new Resend client with the given configuration
func New(cfg Config) (IResend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newResendImpl(cfg), nil
}
