package chat

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
)

type Sender string

const (
	SenderClient    Sender = "client"
	SenderAI        Sender = "ai"
	SenderAssistant Sender = "assistant"
)

// Source tells the caller which responder produced the reply.
type Source string

const (
	SourceAI        Source = "ai"
	SourceAssistant Source = "assistant"
)

var ErrEmptyMessage = errors.New("message required")

type Message struct {
	ID        int64  `json:"id"`
	SessionID string `json:"session_id"`
	Sender    Sender `json:"sender"`
	Text      string `json:"text"`
	Intent    string `json:"intent,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

// Request is one incoming chat turn.
type Request struct {
	SessionID string
	Message   string
	Persona   string
	Tone      string
	Cart      []assistant.CartLine
}

type Result struct {
	SessionID string
	Reply     string
	Source    Source
	Intent    assistant.Intent
}

// Repo persists chat transcripts.
type Repo interface {
	SaveMessage(ctx context.Context, msg *Message) error
	GetHistory(ctx context.Context, sessionID string) ([]Message, error)
}

type Service interface {
	HandleIncoming(ctx context.Context, req Request) (Result, error)
	Offline(req assistant.Request) assistant.Reply
	History(ctx context.Context, sessionID string) ([]Message, error)
}
