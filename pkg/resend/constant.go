package resend

import "time"

const (
	// DefaultBaseURL is the Resend API endpoint
	DefaultBaseURL = "https://api.resend.com"

	// DefaultTimeout for email delivery requests
	DefaultTimeout = 15 * time.Second
)
