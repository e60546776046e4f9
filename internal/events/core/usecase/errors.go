package usecase

import (
	"context"
	"errors"
	"fmt"

	"chat-analytics-service/internal/events/core/ports"
)

var (
	ErrTenantNotFound       = errors.New("typebot not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrTranscriptNotFound   = errors.New("transcript not found")
	ErrInvalidStats         = errors.New("invalid stats snapshot")
	ErrFutureTime           = errors.New("timestamp cannot be in the future")
)

func ensureTenant(ctx context.Context, store ports.EventStorePort, tenantID string) error {
	ok, err := store.TenantExists(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("lookup typebot: %w", err)
	}
	if !ok {
		return ErrTenantNotFound
	}
	return nil
}
