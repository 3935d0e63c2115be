package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"obsidianlist/internal/metrics"
	"obsidianlist/internal/model"
	"obsidianlist/internal/notify"
	"obsidianlist/internal/task/repository"
	"obsidianlist/pkg/log"
)

// Mailer is the slice of the notification dispatcher the checker uses.
type Mailer interface {
	SendReminder(ctx context.Context, email notify.ReminderEmail) notify.Outcome
}

// UserStore resolves reminder owners to their account details.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (model.User, error)
}

// Config tunes the checker. Zero values fall back to the defaults.
type Config struct {
	// Interval between scans.
	Interval time.Duration
	// Lookahead makes a reminder due once its target is within this window.
	Lookahead time.Duration
	// UTCOffsetHours fixes the wall clock reminder targets are compared
	// against.
	UTCOffsetHours int
	// MaxDeliveryAttempts is the ceiling after which a reminder stops
	// retrying and is marked failed.
	MaxDeliveryAttempts int
}

const (
	defaultInterval            = 5 * time.Minute
	defaultLookahead           = 5 * time.Minute
	defaultMaxDeliveryAttempts = 12
)

// Checker periodically scans pending reminders and dispatches the due ones.
type Checker struct {
	repo   repository.Repository
	users  UserStore
	mailer Mailer
	l      log.Logger
	m      *metrics.Metrics
	cfg    Config

	cron *cron.Cron
	loc  *time.Location
	now  func() time.Time
}

// NewChecker creates a reminder checker. Start must be called to begin
// scanning.
func NewChecker(repo repository.Repository, users UserStore, mailer Mailer, l log.Logger, m *metrics.Metrics, cfg Config) *Checker {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = defaultLookahead
	}
	if cfg.MaxDeliveryAttempts <= 0 {
		cfg.MaxDeliveryAttempts = defaultMaxDeliveryAttempts
	}

	name := fmt.Sprintf("UTC%+d", cfg.UTCOffsetHours)
	loc := time.FixedZone(name, cfg.UTCOffsetHours*3600)

	return &Checker{
		repo:   repo,
		users:  users,
		mailer: mailer,
		l:      l,
		m:      m,
		cfg:    cfg,
		cron:   cron.New(),
		loc:    loc,
		now:    time.Now,
	}
}

// Start schedules the recurring scan.
func (c *Checker) Start() error {
	spec := fmt.Sprintf("@every %s", c.cfg.Interval)
	_, err := c.cron.AddFunc(spec, func() {
		if err := c.RunOnce(context.Background()); err != nil {
			c.l.Errorf(context.Background(), "internal.reminder.Checker: scan failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder scan: %w", err)
	}

	c.cron.Start()
	c.l.Infof(context.Background(), "internal.reminder.Checker: started, interval=%s timezone=%s", c.cfg.Interval, c.loc)
	return nil
}

// Stop halts scheduling and waits for an in-flight scan to finish.
func (c *Checker) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	c.l.Infof(context.Background(), "internal.reminder.Checker: stopped")
}
