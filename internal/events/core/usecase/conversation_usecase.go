package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-analytics-service/internal/events/core/domain"
	"chat-analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

type ConversationUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewConversationUseCase(store ports.EventStorePort) *ConversationUseCase {
	return &ConversationUseCase{store: store, now: time.Now}
}

// Create opens a conversation for the tenant and returns its id.
func (uc *ConversationUseCase) Create(ctx context.Context, tenantID string) (string, error) {
	if err := ensureTenant(ctx, uc.store, tenantID); err != nil {
		return "", err
	}

	c := &domain.Conversation{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.store.InsertConversation(ctx, c); err != nil {
		return "", fmt.Errorf("insert conversation: %w", err)
	}
	return c.ID, nil
}

type UpdateConversationInput struct {
	TenantID       string
	ConversationID string
	ThreadID       string
	Callback       domain.Callback
}

// Update sets the thread id when one is given and upserts the callback when
// any callback field is given.
func (uc *ConversationUseCase) Update(ctx context.Context, in UpdateConversationInput) error {
	if err := ensureTenant(ctx, uc.store, in.TenantID); err != nil {
		return err
	}

	ok, err := uc.store.ConversationExists(ctx, in.TenantID, in.ConversationID)
	if err != nil {
		return fmt.Errorf("lookup conversation: %w", err)
	}
	if !ok {
		return ErrConversationNotFound
	}

	if in.ThreadID != "" {
		if err := uc.store.UpdateThreadID(ctx, in.ConversationID, in.ThreadID); err != nil {
			return fmt.Errorf("update thread id: %w", err)
		}
	}

	if !in.Callback.Empty() {
		cb := in.Callback
		cb.ConversationID = in.ConversationID
		if err := uc.store.UpsertCallback(ctx, &cb); err != nil {
			return fmt.Errorf("upsert callback: %w", err)
		}
	}
	return nil
}
