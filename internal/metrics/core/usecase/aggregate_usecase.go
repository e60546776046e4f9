package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/ports"
)

const (
	KindConversation = "conversation"
	KindCallback     = "callback"
	KindStats        = "stats"
)

// AggregationObserver is told how many records were folded into how many buckets.
type AggregationObserver interface {
	ObserveAggregation(kind string, records, buckets int)
}

type nopObserver struct{}

func (nopObserver) ObserveAggregation(string, int, int) {}

type AggregateInput struct {
	TenantID    string
	Window      ports.Window
	Granularity domain.Granularity
	Bucketing   domain.Bucketing
}

// AggregateUseCase folds tenant records inside a window into time buckets.
// It keeps no state between calls.
type AggregateUseCase struct {
	reader   ports.RecordReaderPort
	loc      *time.Location
	observer AggregationObserver
}

func NewAggregateUseCase(reader ports.RecordReaderPort, loc *time.Location, observer AggregationObserver) *AggregateUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &AggregateUseCase{reader: reader, loc: loc, observer: observer}
}

func (uc *AggregateUseCase) Conversations(ctx context.Context, in AggregateInput) (domain.Buckets[domain.ConversationMetrics], error) {
	records, err := uc.conversations(ctx, in)
	if err != nil {
		return nil, err
	}

	out := domain.Fold(records, domain.NewBucketKeyer(in.Bucketing, uc.loc), in.Granularity,
		conversationTime,
		func() domain.ConversationMetrics { return domain.ConversationMetrics{} },
		domain.ConversationMetrics.Merge,
	)
	uc.observer.ObserveAggregation(KindConversation, len(records), len(out))
	return out, nil
}

func (uc *AggregateUseCase) Callbacks(ctx context.Context, in AggregateInput) (domain.Buckets[domain.CallbackMetrics], error) {
	records, err := uc.conversations(ctx, in)
	if err != nil {
		return nil, err
	}

	out := domain.Fold(records, domain.NewBucketKeyer(in.Bucketing, uc.loc), in.Granularity,
		conversationTime,
		func() domain.CallbackMetrics { return domain.CallbackMetrics{} },
		domain.CallbackMetrics.Merge,
	)
	uc.observer.ObserveAggregation(KindCallback, len(records), len(out))
	return out, nil
}

func (uc *AggregateUseCase) Stats(ctx context.Context, in AggregateInput) (domain.Buckets[domain.StatsMetrics], error) {
	if err := uc.ensureTenant(ctx, in.TenantID); err != nil {
		return nil, err
	}
	if in.Window.Begin.After(in.Window.End) {
		return domain.Buckets[domain.StatsMetrics]{}, nil
	}

	records, err := uc.reader.StatsInWindow(ctx, in.TenantID, in.Window)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	out := domain.Fold(records, domain.NewBucketKeyer(in.Bucketing, uc.loc), in.Granularity,
		func(r domain.StatsRecord) time.Time { return r.CreatedAt },
		domain.NewStatsMetrics,
		domain.StatsMetrics.Merge,
	)
	uc.observer.ObserveAggregation(KindStats, len(records), len(out))
	return out, nil
}

// conversations returns no records, and no error, for an inverted window.
func (uc *AggregateUseCase) conversations(ctx context.Context, in AggregateInput) ([]domain.ConversationRecord, error) {
	if err := uc.ensureTenant(ctx, in.TenantID); err != nil {
		return nil, err
	}
	if in.Window.Begin.After(in.Window.End) {
		return nil, nil
	}

	records, err := uc.reader.ConversationsInWindow(ctx, in.TenantID, in.Window)
	if err != nil {
		return nil, fmt.Errorf("query conversations: %w", err)
	}
	return records, nil
}

func (uc *AggregateUseCase) ensureTenant(ctx context.Context, tenantID string) error {
	return ensureTenant(ctx, uc.reader, tenantID)
}

func ensureTenant(ctx context.Context, reader ports.RecordReaderPort, tenantID string) error {
	ok, err := reader.TenantExists(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("lookup typebot: %w", err)
	}
	if !ok {
		return ErrTenantNotFound
	}
	return nil
}

func conversationTime(r domain.ConversationRecord) time.Time { return r.CreatedAt }
