package ports

import (
	"context"
	"time"

	"chat-analytics-service/internal/metrics/core/domain"
)

// Window is inclusive on both ends.
type Window struct {
	Begin time.Time
	End   time.Time
}

// RecordReaderPort is the read side of the record store. Every query is
// scoped to one tenant.
type RecordReaderPort interface {
	TenantExists(ctx context.Context, tenantID string) (bool, error)

	// ConversationsInWindow returns conversations created inside w,
	// newest first, with callback and transcript count.
	ConversationsInWindow(ctx context.Context, tenantID string, w Window) ([]domain.ConversationRecord, error)
	StatsInWindow(ctx context.Context, tenantID string, w Window) ([]domain.StatsRecord, error)

	// ListConversations returns one page of conversations, newest first.
	ListConversations(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error)

	// FindConversation returns nil, nil when the conversation does not
	// exist inside the tenant.
	FindConversation(ctx context.Context, tenantID, conversationID string) (*domain.ConversationDetail, error)
	// FindConversationByTranscript returns the owning conversation with only
	// the requested transcript attached, or nil, nil.
	FindConversationByTranscript(ctx context.Context, tenantID, transcriptID string) (*domain.ConversationDetail, error)
	// TranscriptsFor groups transcripts by conversation id.
	TranscriptsFor(ctx context.Context, conversationIDs []string) (map[string][]domain.TranscriptEntry, error)
}
