package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS typebots (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS typebot_members (
		typebot_id TEXT NOT NULL REFERENCES typebots(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		PRIMARY KEY (typebot_id, user_id)
	);`,
	`CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		typebot_id TEXT NOT NULL REFERENCES typebots(id) ON DELETE CASCADE,
		thread_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS conversations_typebot_created_idx
		ON conversations (typebot_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS callbacks (
		conversation_id TEXT PRIMARY KEY REFERENCES conversations(id) ON DELETE CASCADE,
		country TEXT,
		ip TEXT,
		phone TEXT,
		email TEXT,
		demo_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS transcripts (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		user_message TEXT,
		bot_message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS transcripts_conversation_created_idx
		ON transcripts (conversation_id, created_at);`,
	`CREATE TABLE IF NOT EXISTS typebot_stats (
		id TEXT PRIMARY KEY,
		typebot_id TEXT NOT NULL REFERENCES typebots(id) ON DELETE CASCADE,
		completed BOOLEAN NOT NULL DEFAULT false,
		user_messages INTEGER NOT NULL DEFAULT 0,
		callback_asked BOOLEAN NOT NULL DEFAULT false,
		average_response_time DOUBLE PRECISION,
		chat_time DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS typebot_stats_typebot_created_idx
		ON typebot_stats (typebot_id, created_at DESC);`,
}

// Migrate creates the tables the service reads and writes.
func Migrate(ctx context.Context, db DB, log *zap.Logger) error {
	log.Info("Running database migrations", zap.Int("statements", len(schema)))

	for i, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	log.Info("Database migrations completed")
	return nil
}
