package postgres

import (
	"context"

	"chat-analytics-service/internal/events/core/domain"
	"chat-analytics-service/internal/events/core/ports"
	pgdb "chat-analytics-service/internal/platform/postgres"
)

type EventRepository struct {
	db pgdb.DB
}

func NewEventRepository(db pgdb.DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventStorePort = (*EventRepository)(nil)

const tenantExistsSQL = `SELECT EXISTS (SELECT 1 FROM typebots WHERE id = $1)`

const insertConversationSQL = `
INSERT INTO conversations (id, typebot_id, created_at)
VALUES ($1, $2, $3);
`

const conversationExistsSQL = `
SELECT EXISTS (SELECT 1 FROM conversations WHERE typebot_id = $1 AND id = $2)`

const updateThreadIDSQL = `UPDATE conversations SET thread_id = $2 WHERE id = $1;`

// Empty fields bind as NULL and keep the stored value.
const upsertCallbackSQL = `
INSERT INTO callbacks (conversation_id, country, ip, phone, email, demo_url)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
ON CONFLICT (conversation_id) DO UPDATE SET
    country  = COALESCE(EXCLUDED.country, callbacks.country),
    ip       = COALESCE(EXCLUDED.ip, callbacks.ip),
    phone    = COALESCE(EXCLUDED.phone, callbacks.phone),
    email    = COALESCE(EXCLUDED.email, callbacks.email),
    demo_url = COALESCE(EXCLUDED.demo_url, callbacks.demo_url);
`

const insertTranscriptSQL = `
INSERT INTO transcripts (id, conversation_id, user_message, bot_message, created_at)
VALUES ($1, $2, $3, $4, $5);
`

const findTranscriptSQL = `
SELECT t.id, t.conversation_id, COALESCE(t.user_message, ''), COALESCE(t.bot_message, ''), t.created_at
FROM transcripts t
JOIN conversations c ON c.id = t.conversation_id
WHERE c.typebot_id = $1 AND t.id = $2`

const updateTranscriptSQL = `
UPDATE transcripts SET user_message = $2, bot_message = $3 WHERE id = $1;
`

const insertStatsSQL = `
INSERT INTO typebot_stats (
    id,
    typebot_id,
    completed,
    user_messages,
    callback_asked,
    average_response_time,
    chat_time,
    created_at
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (id) DO NOTHING;
`

func (r *EventRepository) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	return pgdb.QueryExists(ctx, r.db, tenantExistsSQL, tenantID)
}

func (r *EventRepository) InsertConversation(ctx context.Context, c *domain.Conversation) error {
	_, err := r.db.ExecContext(ctx, insertConversationSQL, c.ID, c.TenantID, c.CreatedAt)
	return err
}

func (r *EventRepository) ConversationExists(ctx context.Context, tenantID, conversationID string) (bool, error) {
	return pgdb.QueryExists(ctx, r.db, conversationExistsSQL, tenantID, conversationID)
}

func (r *EventRepository) UpdateThreadID(ctx context.Context, conversationID, threadID string) error {
	_, err := r.db.ExecContext(ctx, updateThreadIDSQL, conversationID, threadID)
	return err
}

func (r *EventRepository) UpsertCallback(ctx context.Context, cb *domain.Callback) error {
	_, err := r.db.ExecContext(ctx, upsertCallbackSQL,
		cb.ConversationID,
		cb.Country,
		cb.IP,
		cb.Phone,
		cb.Email,
		cb.DemoURL,
	)
	return err
}

func (r *EventRepository) InsertTranscript(ctx context.Context, t *domain.Transcript) error {
	_, err := r.db.ExecContext(ctx, insertTranscriptSQL,
		t.ID,
		t.ConversationID,
		t.UserMessage,
		t.BotMessage,
		t.CreatedAt,
	)
	return err
}

func (r *EventRepository) FindTranscript(ctx context.Context, tenantID, transcriptID string) (*domain.Transcript, error) {
	rows, err := r.db.QueryContext(ctx, findTranscriptSQL, tenantID, transcriptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var t domain.Transcript
	if err := rows.Scan(&t.ID, &t.ConversationID, &t.UserMessage, &t.BotMessage, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *EventRepository) UpdateTranscript(ctx context.Context, t *domain.Transcript) error {
	_, err := r.db.ExecContext(ctx, updateTranscriptSQL, t.ID, t.UserMessage, t.BotMessage)
	return err
}

func (r *EventRepository) InsertStats(ctx context.Context, s *domain.StatsSnapshot) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertStatsSQL,
		s.ID,
		s.TenantID,
		s.Completed,
		s.UserMessages,
		s.CallbackAsked,
		nullableFloat(s.AverageResponseTime),
		nullableFloat(s.ChatTime),
		s.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> snapshot id already stored
	return rows > 0, nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
