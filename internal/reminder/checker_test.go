package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"obsidianlist/internal/model"
	"obsidianlist/internal/notify"
	"obsidianlist/internal/task/repository"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo overrides only what the checker touches.
type mockRepo struct {
	repository.Repository

	pending   []model.Reminder
	tasks     map[string]model.Task
	mutations []repository.SetReminderStatusOptions
}

func (m *mockRepo) ListPendingReminders(ctx context.Context) ([]model.Reminder, error) {
	return m.pending, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return m.tasks[id], nil
}

func (m *mockRepo) SetReminderStatus(ctx context.Context, opt repository.SetReminderStatusOptions) (model.Reminder, error) {
	m.mutations = append(m.mutations, opt)
	return model.Reminder{ID: opt.ReminderID, Status: opt.Status}, nil
}

type mockUsers struct {
	users map[string]model.User
}

func (m *mockUsers) GetUserByID(ctx context.Context, id string) (model.User, error) {
	return m.users[id], nil
}

type mockMailer struct {
	outcome notify.Outcome
	sent    []notify.ReminderEmail
}

func (m *mockMailer) SendReminder(ctx context.Context, email notify.ReminderEmail) notify.Outcome {
	m.sent = append(m.sent, email)
	return m.outcome
}

func pendingReminder(id, taskID, date, clock string) model.Reminder {
	return model.Reminder{
		ID:           id,
		TaskID:       taskID,
		UserID:       "user-1",
		ReminderDate: date,
		ReminderDay:  "Thursday",
		ReminderTime: clock,
		Status:       model.ReminderPending,
	}
}

func newTestChecker(repo *mockRepo, users *mockUsers, mailer *mockMailer, cfg Config, now time.Time) *Checker {
	c := NewChecker(repo, users, mailer, nopLogger{}, nil, cfg)
	c.now = func() time.Time { return now }
	return c
}

func TestRunOnce_FiresDueReminder(t *testing.T) {
	// 08:57 tick with a 5 minute lookahead covers a 09:00 reminder.
	now := time.Date(2026, 1, 15, 8, 57, 0, 0, time.UTC)

	repo := &mockRepo{
		pending: []model.Reminder{
			pendingReminder("rem-due", "task-1", "2026-01-15", "09:00"),
			pendingReminder("rem-later", "task-2", "2026-01-15", "18:00"),
		},
		tasks: map[string]model.Task{
			"task-1": {ID: "task-1", UserID: "user-1", Title: "Call mom"},
			"task-2": {ID: "task-2", UserID: "user-1", Title: "Dinner"},
		},
	}
	users := &mockUsers{users: map[string]model.User{
		"user-1": {ID: "user-1", Name: "Alice", Email: "alice@example.com"},
	}}
	mailer := &mockMailer{outcome: notify.Outcome{Delivered: true, DeliveryID: "email_1"}}

	c := newTestChecker(repo, users, mailer, Config{}, now)
	if err := c.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(mailer.sent) != 1 || mailer.sent[0].TaskTitle != "Call mom" {
		t.Fatalf("sent = %+v", mailer.sent)
	}
	if len(repo.mutations) != 1 {
		t.Fatalf("mutations = %+v", repo.mutations)
	}
	mut := repo.mutations[0]
	if mut.ReminderID != "rem-due" || mut.Status != model.ReminderFired || mut.SentAt == nil {
		t.Errorf("mutation = %+v", mut)
	}
}

func TestRunOnce_CancelsReminderOfCompletedTask(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	repo := &mockRepo{
		pending: []model.Reminder{pendingReminder("rem-1", "task-1", "2026-01-15", "09:00")},
		tasks: map[string]model.Task{
			"task-1": {ID: "task-1", UserID: "user-1", Title: "Done already", Completed: true},
		},
	}
	mailer := &mockMailer{outcome: notify.Outcome{Delivered: true}}

	c := newTestChecker(repo, &mockUsers{}, mailer, Config{}, now)
	if err := c.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(mailer.sent) != 0 {
		t.Error("no email may go out for a completed task")
	}
	if len(repo.mutations) != 1 || repo.mutations[0].Status != model.ReminderCancelled {
		t.Fatalf("mutations = %+v", repo.mutations)
	}
	if repo.mutations[0].SentAt == nil {
		t.Error("cancellation must stamp sent_at")
	}
}

func TestRunOnce_FailedDeliveryRetriesThenDeadLetters(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	task := model.Task{ID: "task-1", UserID: "user-1", Title: "Flaky"}
	user := model.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	mailer := &mockMailer{outcome: notify.Outcome{Err: errors.New("upstream down")}}

	t.Run("below the ceiling stays pending with one more attempt", func(t *testing.T) {
		rem := pendingReminder("rem-1", "task-1", "2026-01-15", "09:00")
		rem.DeliveryAttempts = 3

		repo := &mockRepo{pending: []model.Reminder{rem}, tasks: map[string]model.Task{"task-1": task}}
		c := newTestChecker(repo, &mockUsers{users: map[string]model.User{"user-1": user}}, mailer, Config{MaxDeliveryAttempts: 12}, now)

		if err := c.RunOnce(context.Background()); err != nil {
			t.Fatal(err)
		}
		if len(repo.mutations) != 1 {
			t.Fatalf("mutations = %+v", repo.mutations)
		}
		mut := repo.mutations[0]
		if mut.Status != model.ReminderPending || !mut.IncrementAttempts || mut.SentAt != nil {
			t.Errorf("mutation = %+v", mut)
		}
	})

	t.Run("reaching the ceiling marks it failed", func(t *testing.T) {
		rem := pendingReminder("rem-1", "task-1", "2026-01-15", "09:00")
		rem.DeliveryAttempts = 11

		repo := &mockRepo{pending: []model.Reminder{rem}, tasks: map[string]model.Task{"task-1": task}}
		c := newTestChecker(repo, &mockUsers{users: map[string]model.User{"user-1": user}}, mailer, Config{MaxDeliveryAttempts: 12}, now)

		if err := c.RunOnce(context.Background()); err != nil {
			t.Fatal(err)
		}
		if len(repo.mutations) != 1 {
			t.Fatalf("mutations = %+v", repo.mutations)
		}
		mut := repo.mutations[0]
		if mut.Status != model.ReminderFailed || !mut.IncrementAttempts || mut.SentAt == nil {
			t.Errorf("mutation = %+v", mut)
		}
	})
}

func TestRunOnce_SkipsVanishedRows(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	repo := &mockRepo{
		pending: []model.Reminder{pendingReminder("rem-1", "task-gone", "2026-01-15", "09:00")},
		tasks:   map[string]model.Task{},
	}
	mailer := &mockMailer{outcome: notify.Outcome{Delivered: true}}

	c := newTestChecker(repo, &mockUsers{}, mailer, Config{}, now)
	if err := c.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(repo.mutations) != 0 {
		t.Errorf("vanished rows must not be mutated, got %+v", repo.mutations)
	}
	if len(mailer.sent) != 0 {
		t.Error("no email may go out for a vanished task")
	}
}

func TestRunOnce_UTCOffsetShiftsDueWindow(t *testing.T) {
	// 03:57 UTC is 08:57 at UTC+5, so a 09:00 local reminder is due.
	now := time.Date(2026, 1, 15, 3, 57, 0, 0, time.UTC)

	repo := &mockRepo{
		pending: []model.Reminder{pendingReminder("rem-1", "task-1", "2026-01-15", "09:00")},
		tasks:   map[string]model.Task{"task-1": {ID: "task-1", UserID: "user-1", Title: "Standup"}},
	}
	users := &mockUsers{users: map[string]model.User{
		"user-1": {ID: "user-1", Name: "Alice", Email: "alice@example.com"},
	}}
	mailer := &mockMailer{outcome: notify.Outcome{Delivered: true, DeliveryID: "email_1"}}

	c := newTestChecker(repo, users, mailer, Config{UTCOffsetHours: 5}, now)
	if err := c.RunOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %+v", mailer.sent)
	}
	if len(repo.mutations) != 1 || repo.mutations[0].Status != model.ReminderFired {
		t.Errorf("mutations = %+v", repo.mutations)
	}
}
