package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"obsidianlist/internal/model"
	"obsidianlist/internal/user"
	"obsidianlist/internal/user/repository"
	"obsidianlist/internal/user/usecase"
	"obsidianlist/pkg/scope"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	byEmail map[string]model.User
}

func newMockRepo() *mockRepo {
	return &mockRepo{byEmail: make(map[string]model.User)}
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	u := model.User{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
	}
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *mockRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return m.byEmail[email], nil
}

func newUseCase(repo repository.Repository) (user.UseCase, *scope.Manager) {
	tokens := scope.NewManager("test-secret", time.Hour)
	return usecase.New(repo, tokens, &mockLogger{}), tokens
}

func TestRegister_Roundtrip(t *testing.T) {
	repo := newMockRepo()
	uc, tokens := newUseCase(repo)

	out, err := uc.Register(context.Background(), user.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatal(err)
	}

	if out.User.Email != "alice@example.com" {
		t.Errorf("email = %q, want it lowercased", out.User.Email)
	}
	if out.User.PasswordHash == "correct horse" || out.User.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}

	sc, err := tokens.VerifyToken(out.Token)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if sc.UserID != out.User.ID || sc.Email != "alice@example.com" {
		t.Errorf("scope = %+v", sc)
	}
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newUseCase(newMockRepo())

	tests := []struct {
		name  string
		input user.RegisterInput
	}{
		{"missing name", user.RegisterInput{Email: "a@b.com", Password: "long enough"}},
		{"bad email", user.RegisterInput{Name: "A", Email: "not-an-email", Password: "long enough"}},
		{"short password", user.RegisterInput{Name: "A", Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Register(context.Background(), tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUseCase(newMockRepo())

	input := user.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "correct horse"}
	if _, err := uc.Register(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	_, err := uc.Register(context.Background(), input)
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("err = %v", err)
	}
}

func TestLogin(t *testing.T) {
	uc, _ := newUseCase(newMockRepo())

	if _, err := uc.Register(context.Background(), user.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatal(err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		out, err := uc.Login(context.Background(), user.LoginInput{
			Email: "alice@example.com", Password: "correct horse",
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.Token == "" {
			t.Error("expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), user.LoginInput{
			Email: "alice@example.com", Password: "wrong",
		})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("unknown email reports the same error", func(t *testing.T) {
		_, err := uc.Login(context.Background(), user.LoginInput{
			Email: "nobody@example.com", Password: "whatever",
		})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v", err)
		}
	})
}
