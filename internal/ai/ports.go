package ai

import (
	"context"

	"github.com/pkg/errors"
)

// AI is a remote assistant. It knows nothing about carts or storage.
type AI interface {
	GetReply(ctx context.Context, p Prompt) (string, error)
}

// Message is one transcript turn in the form the remote model expects.
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}

// Prompt is what the remote assistant gets for a single turn.
type Prompt struct {
	Persona string
	Tone    string
	History []Message
	Message string
}

var ErrEmptyReply = errors.New("ai: empty reply")
