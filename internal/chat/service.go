package chat

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/jannu-assistant/internal/ai"
	"github.com/Vovarama1992/jannu-assistant/internal/assistant"
)

// historyLimit caps how many earlier turns are forwarded to the remote model.
const historyLimit = 20

type service struct {
	repo   Repo
	ai     ai.AI
	engine *assistant.Engine
	log    logrus.FieldLogger
}

// NewService wires the chat flow. aiClient may be nil, in which case every
// turn is answered by the local engine.
func NewService(repo Repo, aiClient ai.AI, engine *assistant.Engine, log logrus.FieldLogger) Service {
	if engine == nil {
		engine = assistant.NewEngine()
	}
	return &service{
		repo:   repo,
		ai:     aiClient,
		engine: engine,
		log:    log.WithField("component", "chat"),
	}
}

func (s *service) HandleIncoming(ctx context.Context, req Request) (Result, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return Result{}, ErrEmptyMessage
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log := s.log.WithField("session_id", sessionID)
	log.WithField("text", short(text)).Info("incoming message")

	history, err := s.repo.GetHistory(ctx, sessionID)
	if err != nil {
		log.WithError(err).Warn("load history failed")
	}

	s.save(ctx, log, &Message{SessionID: sessionID, Sender: SenderClient, Text: text})

	res := Result{SessionID: sessionID}

	if reply, ok := s.remote(ctx, log, req, text, history); ok {
		res.Reply = reply
		res.Source = SourceAI
		s.save(ctx, log, &Message{SessionID: sessionID, Sender: SenderAI, Text: reply})
		return res, nil
	}

	local := s.engine.Respond(assistant.Request{Message: text, Cart: req.Cart})
	res.Reply = local.Text
	res.Source = SourceAssistant
	res.Intent = local.Intent

	s.save(ctx, log, &Message{
		SessionID: sessionID,
		Sender:    SenderAssistant,
		Text:      local.Text,
		Intent:    string(local.Intent),
	})
	return res, nil
}

func (s *service) remote(ctx context.Context, log logrus.FieldLogger, req Request, text string, history []Message) (string, bool) {
	if s.ai == nil {
		return "", false
	}

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	aiHistory := make([]ai.Message, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Sender == SenderAI || m.Sender == SenderAssistant {
			role = "assistant"
		}
		aiHistory = append(aiHistory, ai.Message{Role: role, Text: m.Text})
	}

	reply, err := s.ai.GetReply(ctx, ai.Prompt{
		Persona: req.Persona,
		Tone:    req.Tone,
		History: aiHistory,
		Message: text,
	})
	if err != nil {
		log.WithError(err).Warn("remote ai failed, using local assistant")
		return "", false
	}
	if strings.TrimSpace(reply) == "" {
		log.Warn("remote ai returned blank reply, using local assistant")
		return "", false
	}
	return reply, true
}

func (s *service) save(ctx context.Context, log logrus.FieldLogger, msg *Message) {
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		log.WithError(err).WithField("sender", msg.Sender).Error("save message failed")
	}
}

func (s *service) Offline(req assistant.Request) assistant.Reply {
	return s.engine.Respond(req)
}

func (s *service) History(ctx context.Context, sessionID string) ([]Message, error) {
	return s.repo.GetHistory(ctx, sessionID)
}

// short clips s to at most 180 bytes without splitting a rune.
func short(s string) string {
	const limit = 180
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
