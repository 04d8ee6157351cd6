package chat

import (
	"context"
	"sync"
	"time"
)

type memoryRepo struct {
	mu       sync.RWMutex
	nextID   int64
	sessions map[string][]Message
}

// NewMemoryRepo keeps transcripts in process memory; used when no database is configured.
func NewMemoryRepo() Repo {
	return &memoryRepo{sessions: make(map[string][]Message)}
}

func (r *memoryRepo) SaveMessage(_ context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	msg.ID = r.nextID
	msg.CreatedAt = time.Now().Unix()
	r.sessions[msg.SessionID] = append(r.sessions[msg.SessionID], *msg)
	return nil
}

func (r *memoryRepo) GetHistory(_ context.Context, sessionID string) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
