package postgres

import (
	"context"
	"database/sql"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/ports"
	pgdb "chat-analytics-service/internal/platform/postgres"

	"github.com/lib/pq"
)

type RecordRepository struct {
	db pgdb.DB
}

func NewRecordRepository(db pgdb.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordReaderPort = (*RecordRepository)(nil)

const tenantExistsSQL = `SELECT EXISTS (SELECT 1 FROM typebots WHERE id = $1)`

// conversationSelect yields the columns read by queryConversations.
const conversationSelect = `
SELECT
    c.id,
    c.typebot_id,
    COALESCE(c.thread_id, ''),
    c.created_at,
    cb.conversation_id IS NOT NULL,
    COALESCE(cb.country, ''),
    COALESCE(cb.ip, ''),
    COALESCE(cb.phone, ''),
    COALESCE(cb.email, ''),
    COALESCE(cb.demo_url, ''),
    (SELECT COUNT(*) FROM transcripts t WHERE t.conversation_id = c.id)
FROM conversations c
LEFT JOIN callbacks cb ON cb.conversation_id = c.id`

const conversationsInWindowSQL = conversationSelect + `
WHERE c.typebot_id = $1 AND c.created_at BETWEEN $2 AND $3
ORDER BY c.created_at DESC`

const listConversationsSQL = conversationSelect + `
WHERE c.typebot_id = $1
ORDER BY c.created_at DESC
LIMIT $2 OFFSET $3`

const findConversationSQL = conversationSelect + `
WHERE c.typebot_id = $1 AND c.id = $2`

const findConversationByTranscriptSQL = conversationSelect + `
WHERE c.typebot_id = $1
  AND c.id = (SELECT conversation_id FROM transcripts WHERE id = $2)`

const findTranscriptSQL = `
SELECT conversation_id, id, COALESCE(user_message, ''), COALESCE(bot_message, ''), created_at
FROM transcripts
WHERE id = $1`

const transcriptsForSQL = `
SELECT conversation_id, id, COALESCE(user_message, ''), COALESCE(bot_message, ''), created_at
FROM transcripts
WHERE conversation_id = ANY($1)
ORDER BY created_at ASC`

const statsInWindowSQL = `
SELECT
    typebot_id,
    created_at,
    completed,
    user_messages,
    callback_asked,
    average_response_time,
    chat_time
FROM typebot_stats
WHERE typebot_id = $1 AND created_at BETWEEN $2 AND $3
ORDER BY created_at DESC`

func (r *RecordRepository) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	return pgdb.QueryExists(ctx, r.db, tenantExistsSQL, tenantID)
}

func (r *RecordRepository) ConversationsInWindow(ctx context.Context, tenantID string, w ports.Window) ([]domain.ConversationRecord, error) {
	return r.queryConversations(ctx, conversationsInWindowSQL, tenantID, w.Begin.UTC(), w.End.UTC())
}

func (r *RecordRepository) ListConversations(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error) {
	return r.queryConversations(ctx, listConversationsSQL, tenantID, p.Limit, p.Offset)
}

func (r *RecordRepository) FindConversation(ctx context.Context, tenantID, conversationID string) (*domain.ConversationDetail, error) {
	convs, err := r.queryConversations(ctx, findConversationSQL, tenantID, conversationID)
	if err != nil || len(convs) == 0 {
		return nil, err
	}

	byConv, err := r.TranscriptsFor(ctx, []string{conversationID})
	if err != nil {
		return nil, err
	}
	return detail(convs[0], byConv[conversationID]), nil
}

func (r *RecordRepository) FindConversationByTranscript(ctx context.Context, tenantID, transcriptID string) (*domain.ConversationDetail, error) {
	convs, err := r.queryConversations(ctx, findConversationByTranscriptSQL, tenantID, transcriptID)
	if err != nil || len(convs) == 0 {
		return nil, err
	}

	byConv, err := r.queryTranscripts(ctx, findTranscriptSQL, transcriptID)
	if err != nil {
		return nil, err
	}
	return detail(convs[0], byConv[convs[0].ID]), nil
}

func (r *RecordRepository) TranscriptsFor(ctx context.Context, conversationIDs []string) (map[string][]domain.TranscriptEntry, error) {
	if len(conversationIDs) == 0 {
		return map[string][]domain.TranscriptEntry{}, nil
	}
	return r.queryTranscripts(ctx, transcriptsForSQL, pq.Array(conversationIDs))
}

func (r *RecordRepository) StatsInWindow(ctx context.Context, tenantID string, w ports.Window) ([]domain.StatsRecord, error) {
	rows, err := r.db.QueryContext(ctx, statsInWindowSQL, tenantID, w.Begin.UTC(), w.End.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StatsRecord
	for rows.Next() {
		var (
			s            domain.StatsRecord
			responseTime sql.NullFloat64
			chatTime     sql.NullFloat64
		)
		if err := rows.Scan(
			&s.TenantID,
			&s.CreatedAt,
			&s.Completed,
			&s.UserMessages,
			&s.CallbackAsked,
			&responseTime,
			&chatTime,
		); err != nil {
			return nil, err
		}
		s.AverageResponseTime = nullable(responseTime)
		s.ChatTime = nullable(chatTime)
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository) queryConversations(ctx context.Context, query string, args ...any) ([]domain.ConversationRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ConversationRecord
	for rows.Next() {
		var (
			c           domain.ConversationRecord
			cb          domain.Callback
			hasCallback bool
			transcripts int64
		)
		if err := rows.Scan(
			&c.ID,
			&c.TenantID,
			&c.ThreadID,
			&c.CreatedAt,
			&hasCallback,
			&cb.Country,
			&cb.IP,
			&cb.Phone,
			&cb.Email,
			&cb.DemoURL,
			&transcripts,
		); err != nil {
			return nil, err
		}
		if hasCallback {
			c.Callback = &cb
		}
		c.TranscriptCount = int(transcripts)
		out = append(out, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RecordRepository) queryTranscripts(ctx context.Context, query string, args ...any) (map[string][]domain.TranscriptEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.TranscriptEntry)
	for rows.Next() {
		var (
			convID string
			t      domain.TranscriptEntry
		)
		if err := rows.Scan(&convID, &t.ID, &t.UserMessage, &t.BotMessage, &t.CreatedAt); err != nil {
			return nil, err
		}
		out[convID] = append(out[convID], t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func detail(c domain.ConversationRecord, ts []domain.TranscriptEntry) *domain.ConversationDetail {
	if ts == nil {
		ts = []domain.TranscriptEntry{}
	}
	return &domain.ConversationDetail{
		ID:          c.ID,
		TenantID:    c.TenantID,
		ThreadID:    c.ThreadID,
		CreatedAt:   c.CreatedAt,
		Callback:    c.Callback,
		Transcripts: ts,
	}
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
