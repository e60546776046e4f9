package ports

import (
	"context"

	"chat-analytics-service/internal/events/core/domain"
)

// EventStorePort is the write side of the record store.
type EventStorePort interface {
	TenantExists(ctx context.Context, tenantID string) (bool, error)

	InsertConversation(ctx context.Context, c *domain.Conversation) error
	ConversationExists(ctx context.Context, tenantID, conversationID string) (bool, error)
	UpdateThreadID(ctx context.Context, conversationID, threadID string) error
	// UpsertCallback keeps the stored value of every empty field.
	UpsertCallback(ctx context.Context, cb *domain.Callback) error

	InsertTranscript(ctx context.Context, t *domain.Transcript) error
	// FindTranscript returns nil, nil when the transcript does not belong to
	// a conversation of the tenant.
	FindTranscript(ctx context.Context, tenantID, transcriptID string) (*domain.Transcript, error)
	UpdateTranscript(ctx context.Context, t *domain.Transcript) error

	// InsertStats:
	//   created = true,  err = nil  -> new snapshot
	//   created = false, err = nil  -> snapshot id already stored
	//   created = false, err != nil -> DB error
	InsertStats(ctx context.Context, s *domain.StatsSnapshot) (created bool, err error)
}
