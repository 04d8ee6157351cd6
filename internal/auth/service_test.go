package auth

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService() (*Service, *InMemoryUserRepository) {
	repo := NewInMemoryUserRepository()
	return NewService(repo, NewTokens("test-secret", 0), quietLogger()), repo
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, " Ada ", "Ada@Example.com ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Token == "" || sess.User.ID == "" {
		t.Fatalf("expected token and id, got %+v", sess)
	}
	if sess.User.Role != RoleCustomer || sess.User.Email != "ada@example.com" || sess.User.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", sess.User)
	}

	stored, err := repo.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret" {
		t.Fatalf("password stored in clear: %q", stored.PasswordHash)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "a@b.c", "x"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(ctx, "Ada", "a@b.c", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "A@B.C", "y"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	sess, err := svc.Login(ctx, "ADA@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, err := svc.Authenticate(ctx, sess.Token)
	if err != nil || u.Email != "ada@example.com" {
		t.Fatalf("token does not resolve to user: %v %+v", err, u)
	}

	if _, err := svc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Authenticate(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := svc.EnsureAdmin(ctx, "admin@shop.test", "pass"); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	users, _ := svc.Users(ctx)
	if len(users) != 1 || users[0].Role != RoleAdmin {
		t.Fatalf("expected a single admin, got %+v", users)
	}

	sess, err := svc.Login(ctx, "admin@shop.test", "pass")
	if err != nil || sess.User.Role != RoleAdmin {
		t.Fatalf("admin login failed: %v", err)
	}
}
