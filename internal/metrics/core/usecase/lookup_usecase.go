package usecase

import (
	"context"
	"fmt"
	"sort"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/ports"
)

// LookupUseCase serves single conversation reads.
type LookupUseCase struct {
	reader ports.RecordReaderPort
}

func NewLookupUseCase(reader ports.RecordReaderPort) *LookupUseCase {
	return &LookupUseCase{reader: reader}
}

// Conversation returns one conversation of the tenant with its transcripts
// in ascending creation order.
func (uc *LookupUseCase) Conversation(ctx context.Context, tenantID, conversationID string) (*domain.ConversationDetail, error) {
	if err := ensureTenant(ctx, uc.reader, tenantID); err != nil {
		return nil, err
	}

	conv, err := uc.reader.FindConversation(ctx, tenantID, conversationID)
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}

	sortTranscripts(conv.Transcripts)
	return conv, nil
}

// Transcript returns the conversation owning transcriptID with only that
// transcript attached.
func (uc *LookupUseCase) Transcript(ctx context.Context, tenantID, transcriptID string) (*domain.ConversationDetail, error) {
	if err := ensureTenant(ctx, uc.reader, tenantID); err != nil {
		return nil, err
	}

	conv, err := uc.reader.FindConversationByTranscript(ctx, tenantID, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("find transcript: %w", err)
	}
	if conv == nil {
		return nil, ErrTranscriptNotFound
	}
	return conv, nil
}

func sortTranscripts(ts []domain.TranscriptEntry) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].CreatedAt.Before(ts[j].CreatedAt)
	})
}
