package auth

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	byID    map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(_ context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.byEmail[user.Email] = &stored
	r.byID[user.ID] = &stored
	return nil
}

func (r *InMemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *u
	return &out, nil
}

// List returns users newest first.
func (r *InMemoryUserRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	slices.SortFunc(out, func(a, b User) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}
