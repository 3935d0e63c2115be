package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"obsidianlist/pkg/log"
	"obsidianlist/pkg/resend"
)

// Mailer sends reminder emails. Every failure is folded into the returned
// Outcome; nothing panics or errors past this boundary.
type Mailer struct {
	client resend.IResend
	l      log.Logger
	cfg    Config
	now    func() time.Time
	sleep  func(time.Duration)
}

// NewMailer creates a mailer over a Resend-compatible client.
func NewMailer(client resend.IResend, l log.Logger, cfg Config) *Mailer {
	if cfg.FromAddress == "" {
		cfg.FromAddress = defaultFromAddress
	}
	return &Mailer{
		client: client,
		l:      l,
		cfg:    cfg,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// SendReminder renders and delivers one reminder email, retrying up to three
// times with the delay doubling between attempts.
func (m *Mailer) SendReminder(ctx context.Context, email ReminderEmail) Outcome {
	if m.client == nil {
		return Outcome{Err: errors.New("email delivery not configured")}
	}

	now := m.now()
	displayTime := formatDisplayTime(email.ReminderTime)
	displayDate := formatDisplayDate(email.ReminderDate, email.ReminderDay, now)
	body := m.renderReminder(email, displayDate, displayTime, now)

	req := &resend.SendEmailRequest{
		From:    fmt.Sprintf("ObsidianList <%s>", m.cfg.FromAddress),
		To:      []string{email.To},
		Subject: fmt.Sprintf("Reminder: %s", email.TaskTitle),
		HTML:    body,
	}

	var lastErr error
	for attempt := 0; attempt < maxSendAttempts; attempt++ {
		if attempt > 0 {
			m.sleep(baseBackoffDelay << (attempt - 1))
		}

		resp, err := m.client.SendEmail(ctx, req)
		if err == nil && resp != nil && resp.ID != "" {
			return Outcome{Delivered: true, DeliveryID: resp.ID}
		}
		if err == nil {
			err = errors.New("delivery accepted without an id")
		}
		lastErr = err
		m.l.Warnf(ctx, "internal.notify.Mailer: attempt %d/%d failed for %s: %v",
			attempt+1, maxSendAttempts, email.To, err)
	}

	return Outcome{Err: lastErr}
}
