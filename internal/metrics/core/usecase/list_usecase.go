package usecase

import (
	"context"
	"fmt"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/ports"
)

// ListUseCase pages through raw records. No total count is computed;
// a short page means the end was reached.
type ListUseCase struct {
	reader ports.RecordReaderPort
}

func NewListUseCase(reader ports.RecordReaderPort) *ListUseCase {
	return &ListUseCase{reader: reader}
}

// Conversations returns a page of conversations, newest first.
func (uc *ListUseCase) Conversations(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error) {
	if err := ensureTenant(ctx, uc.reader, tenantID); err != nil {
		return nil, err
	}

	out, err := uc.reader.ListConversations(ctx, tenantID, p)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return out, nil
}

// Transcripts returns a page of conversations, newest first, each with its
// transcripts in ascending order. Conversations without transcripts are
// dropped after paging, so a page can be shorter than p.Limit.
func (uc *ListUseCase) Transcripts(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationDetail, error) {
	convs, err := uc.Conversations(ctx, tenantID, p)
	if err != nil {
		return nil, err
	}
	if len(convs) == 0 {
		return []domain.ConversationDetail{}, nil
	}

	ids := make([]string, len(convs))
	for i, c := range convs {
		ids[i] = c.ID
	}

	byConv, err := uc.reader.TranscriptsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}

	out := make([]domain.ConversationDetail, 0, len(convs))
	for _, c := range convs {
		ts := byConv[c.ID]
		if len(ts) == 0 {
			continue
		}
		sortTranscripts(ts)
		out = append(out, domain.ConversationDetail{
			ID:          c.ID,
			TenantID:    c.TenantID,
			ThreadID:    c.ThreadID,
			CreatedAt:   c.CreatedAt,
			Callback:    c.Callback,
			Transcripts: ts,
		})
	}
	return out, nil
}
