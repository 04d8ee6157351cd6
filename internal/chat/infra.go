package chat

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) SaveMessage(ctx context.Context, msg *Message) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO chat_messages (session_id, sender, text, intent)
		VALUES ($1, $2, $3, $4)
		RETURNING id, extract(epoch from created_at)::bigint
	`,
		msg.SessionID,
		string(msg.Sender),
		msg.Text,
		msg.Intent,
	).Scan(&msg.ID, &msg.CreatedAt)
	return errors.Wrap(err, "insert chat message")
}

func (r *repo) GetHistory(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, sender, text, intent, extract(epoch from created_at)::bigint
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC
	`, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "query chat history")
	}
	defer rows.Close()

	out := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (Message, error) {
	var m Message
	var sender string
	if err := s.Scan(
		&m.ID,
		&m.SessionID,
		&sender,
		&m.Text,
		&m.Intent,
		&m.CreatedAt,
	); err != nil {
		return Message{}, errors.Wrap(err, "scan chat message")
	}
	m.Sender = Sender(sender)
	return m, nil
}
