package notify

import "time"

// Config holds mailer settings. FromAddress falls back to the default sender
// and TemplatePath is optional; when unset or unreadable the built-in
// template is used.
type Config struct {
	FromAddress  string
	AppURL       string
	TemplatePath string
}

const (
	defaultFromAddress = "noreply@obsidianlist.com"
	defaultAppURL      = "https://obsidianlist.vercel.app"

	maxSendAttempts  = 3
	baseBackoffDelay = time.Second
)

// ReminderEmail carries everything one reminder notification needs. Date and
// Time are the stored wire strings; the mailer formats them for display.
type ReminderEmail struct {
	To              string
	UserName        string
	TaskTitle       string
	TaskDescription string
	ReminderDate    string
	ReminderDay     string
	ReminderTime    string
}

// Outcome reports how a delivery went. Delivered carries the provider's
// delivery ID; otherwise Err holds the last attempt's error.
type Outcome struct {
	Delivered  bool
	DeliveryID string
	Err        error
}
