package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-analytics-service/internal/events/core/domain"
	"chat-analytics-service/internal/events/core/ports"

	"github.com/google/uuid"
)

type StatsUseCase struct {
	store ports.EventStorePort
	now   func() time.Time
}

func NewStatsUseCase(store ports.EventStorePort) *StatsUseCase {
	return &StatsUseCase{store: store, now: time.Now}
}

// RecordStatsInput is one snapshot. SnapshotID is an optional client key that
// makes retries idempotent; Timestamp is unix seconds, 0 meaning now.
type RecordStatsInput struct {
	SnapshotID          string
	Completed           bool
	UserMessages        int64
	CallbackAsked       bool
	AverageResponseTime *float64
	ChatTime            *float64
	Timestamp           int64
}

// Record stores a snapshot. created is false when SnapshotID was already stored.
func (uc *StatsUseCase) Record(ctx context.Context, tenantID string, in RecordStatsInput) (bool, error) {
	if err := uc.validateInput(in); err != nil {
		return false, err
	}
	if err := ensureTenant(ctx, uc.store, tenantID); err != nil {
		return false, err
	}
	return uc.insert(ctx, tenantID, in)
}

type RecordStatsBatchResult struct {
	Created    int
	Duplicates int
}

// RecordBatch validates every snapshot before storing any of them.
func (uc *StatsUseCase) RecordBatch(ctx context.Context, tenantID string, in []RecordStatsInput) (RecordStatsBatchResult, error) {
	var res RecordStatsBatchResult

	for _, s := range in {
		if err := uc.validateInput(s); err != nil {
			return res, err
		}
	}
	if err := ensureTenant(ctx, uc.store, tenantID); err != nil {
		return res, err
	}

	for _, s := range in {
		created, err := uc.insert(ctx, tenantID, s)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}
	return res, nil
}

func (uc *StatsUseCase) insert(ctx context.Context, tenantID string, in RecordStatsInput) (bool, error) {
	id := in.SnapshotID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := uc.now().UTC()
	if in.Timestamp != 0 {
		createdAt = time.Unix(in.Timestamp, 0).UTC()
	}

	created, err := uc.store.InsertStats(ctx, &domain.StatsSnapshot{
		ID:                  id,
		TenantID:            tenantID,
		Completed:           in.Completed,
		UserMessages:        in.UserMessages,
		CallbackAsked:       in.CallbackAsked,
		AverageResponseTime: in.AverageResponseTime,
		ChatTime:            in.ChatTime,
		CreatedAt:           createdAt,
	})
	if err != nil {
		return false, fmt.Errorf("insert stats: %w", err)
	}
	return created, nil
}

func (uc *StatsUseCase) validateInput(in RecordStatsInput) error {
	if in.UserMessages < 0 {
		return ErrInvalidStats
	}
	if in.AverageResponseTime != nil && *in.AverageResponseTime < 0 {
		return ErrInvalidStats
	}
	if in.ChatTime != nil && *in.ChatTime < 0 {
		return ErrInvalidStats
	}
	if in.Timestamp > uc.now().Unix() {
		return ErrFutureTime
	}
	return nil
}
