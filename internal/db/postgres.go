package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_messages (
	id          BIGSERIAL PRIMARY KEY,
	session_id  TEXT        NOT NULL,
	sender      TEXT        NOT NULL,
	text        TEXT        NOT NULL,
	intent      TEXT        NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS chat_messages_session_idx ON chat_messages (session_id, created_at);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT        NOT NULL,
	email         TEXT        NOT NULL UNIQUE,
	password_hash TEXT        NOT NULL,
	role          TEXT        NOT NULL DEFAULT 'customer',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS orders (
	id               BIGSERIAL PRIMARY KEY,
	order_number     TEXT             NOT NULL UNIQUE,
	user_id          TEXT             NOT NULL DEFAULT '',
	customer         JSONB            NOT NULL,
	items            JSONB            NOT NULL,
	shipping_address JSONB            NOT NULL,
	payment_method   TEXT             NOT NULL,
	payment_status   TEXT             NOT NULL,
	transaction_id   TEXT             NOT NULL DEFAULT '',
	order_status     TEXT             NOT NULL,
	tracking_info    JSONB,
	notes            TEXT             NOT NULL DEFAULT '',
	total            DOUBLE PRECISION NOT NULL,
	created_at       TIMESTAMPTZ      NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ      NOT NULL DEFAULT now()
);
ALTER TABLE orders ADD COLUMN IF NOT EXISTS user_id TEXT NOT NULL DEFAULT '';
ALTER TABLE orders ADD COLUMN IF NOT EXISTS tracking_info JSONB;
ALTER TABLE orders ADD COLUMN IF NOT EXISTS notes TEXT NOT NULL DEFAULT '';
CREATE INDEX IF NOT EXISTS orders_user_idx ON orders (user_id, created_at DESC);
`

// Open connects to postgres, checks the connection and creates missing tables.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "db open")
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "db ping")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init schema")
	}
	return db, nil
}
