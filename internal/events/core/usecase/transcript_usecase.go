package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-analytics-service/internal/events/core/domain"
	"chat-analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

type TranscriptUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewTranscriptUseCase(store ports.EventStorePort) *TranscriptUseCase {
	return &TranscriptUseCase{store: store, now: time.Now}
}

type CreateTranscriptInput struct {
	TenantID       string
	ConversationID string
	UserMessage    string
	BotMessage     string
}

func (uc *TranscriptUseCase) Create(ctx context.Context, in CreateTranscriptInput) (string, error) {
	if err := ensureTenant(ctx, uc.store, in.TenantID); err != nil {
		return "", err
	}

	ok, err := uc.store.ConversationExists(ctx, in.TenantID, in.ConversationID)
	if err != nil {
		return "", fmt.Errorf("lookup conversation: %w", err)
	}
	if !ok {
		return "", ErrConversationNotFound
	}

	t := &domain.Transcript{
		ID:             uuid.NewString(),
		ConversationID: in.ConversationID,
		UserMessage:    in.UserMessage,
		BotMessage:     in.BotMessage,
		CreatedAt:      uc.now().UTC(),
	}
	if err := uc.store.InsertTranscript(ctx, t); err != nil {
		return "", fmt.Errorf("insert transcript: %w", err)
	}
	return t.ID, nil
}

type UpdateTranscriptInput struct {
	TenantID     string
	TranscriptID string
	UserMessage  string
	BotMessage   string
}

// Update overwrites the messages that are non-empty in the input.
func (uc *TranscriptUseCase) Update(ctx context.Context, in UpdateTranscriptInput) error {
	if err := ensureTenant(ctx, uc.store, in.TenantID); err != nil {
		return err
	}

	t, err := uc.store.FindTranscript(ctx, in.TenantID, in.TranscriptID)
	if err != nil {
		return fmt.Errorf("lookup transcript: %w", err)
	}
	if t == nil {
		return ErrTranscriptNotFound
	}

	if in.UserMessage != "" {
		t.UserMessage = in.UserMessage
	}
	if in.BotMessage != "" {
		t.BotMessage = in.BotMessage
	}
	if err := uc.store.UpdateTranscript(ctx, t); err != nil {
		return fmt.Errorf("update transcript: %w", err)
	}
	return nil
}
