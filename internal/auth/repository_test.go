package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestInMemoryUserRepository(t *testing.T) {
	repo := NewInMemoryUserRepository()
	ctx := context.Background()

	u := &User{Name: "Ada", Email: "ada@example.com", Role: RoleCustomer}
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", u)
	}
	if err := repo.Save(ctx, &User{Email: "ada@example.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.FindByID(ctx, u.ID)
	if err != nil || got.Email != u.Email {
		t.Fatalf("find by id: %v %+v", err, got)
	}
	got.Name = "changed"
	again, _ := repo.FindByID(ctx, u.ID)
	if again.Name != "Ada" {
		t.Fatal("returned user must be a copy")
	}

	if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return fmt.Errorf("expected %d columns, got %d", len(f.values), len(dest))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *time.Time:
			*p = f.values[i].(time.Time)
		default:
			return fmt.Errorf("unsupported dest %T", d)
		}
	}
	return nil
}

func TestScanUser(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	u, err := scanUser(fakeRow{values: []any{"u-1", "Ada", "ada@example.com", "$2a$hash", "admin", created}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u-1" || u.Role != RoleAdmin || u.PasswordHash != "$2a$hash" || !u.CreatedAt.Equal(created) {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := scanUser(fakeRow{err: sql.ErrNoRows}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	_, err = scanUser(fakeRow{err: errors.New("conn reset")})
	if err == nil || errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected wrapped scan error, got %v", err)
	}
}
