package usecase_test

import (
	"context"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/ports"
)

// fakeRecordReader fakes RecordReaderPort. Unset funcs return empty results
// and the tenant exists unless missingTenant is set.
type fakeRecordReader struct {
	missingTenant bool
	tenantErr     error

	ConversationsFn    func(ctx context.Context, tenantID string, w ports.Window) ([]domain.ConversationRecord, error)
	StatsFn            func(ctx context.Context, tenantID string, w ports.Window) ([]domain.StatsRecord, error)
	ListFn             func(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error)
	FindFn             func(ctx context.Context, tenantID, id string) (*domain.ConversationDetail, error)
	FindByTranscriptFn func(ctx context.Context, tenantID, id string) (*domain.ConversationDetail, error)
	TranscriptsFn      func(ctx context.Context, ids []string) (map[string][]domain.TranscriptEntry, error)

	tenantCalls int
	fetchCalls  int
	lastWindow  ports.Window
	lastPage    domain.Page
	lastIDs     []string
}

func (f *fakeRecordReader) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	f.tenantCalls++
	if f.tenantErr != nil {
		return false, f.tenantErr
	}
	return !f.missingTenant, nil
}

func (f *fakeRecordReader) ConversationsInWindow(ctx context.Context, tenantID string, w ports.Window) ([]domain.ConversationRecord, error) {
	f.fetchCalls++
	f.lastWindow = w
	if f.ConversationsFn != nil {
		return f.ConversationsFn(ctx, tenantID, w)
	}
	return nil, nil
}

func (f *fakeRecordReader) StatsInWindow(ctx context.Context, tenantID string, w ports.Window) ([]domain.StatsRecord, error) {
	f.fetchCalls++
	f.lastWindow = w
	if f.StatsFn != nil {
		return f.StatsFn(ctx, tenantID, w)
	}
	return nil, nil
}

func (f *fakeRecordReader) ListConversations(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error) {
	f.fetchCalls++
	f.lastPage = p
	if f.ListFn != nil {
		return f.ListFn(ctx, tenantID, p)
	}
	return nil, nil
}

func (f *fakeRecordReader) FindConversation(ctx context.Context, tenantID, id string) (*domain.ConversationDetail, error) {
	f.fetchCalls++
	if f.FindFn != nil {
		return f.FindFn(ctx, tenantID, id)
	}
	return nil, nil
}

func (f *fakeRecordReader) FindConversationByTranscript(ctx context.Context, tenantID, id string) (*domain.ConversationDetail, error) {
	f.fetchCalls++
	if f.FindByTranscriptFn != nil {
		return f.FindByTranscriptFn(ctx, tenantID, id)
	}
	return nil, nil
}

func (f *fakeRecordReader) TranscriptsFor(ctx context.Context, ids []string) (map[string][]domain.TranscriptEntry, error) {
	f.fetchCalls++
	f.lastIDs = ids
	if f.TranscriptsFn != nil {
		return f.TranscriptsFn(ctx, ids)
	}
	return nil, nil
}

type recordingObserver struct {
	kind     string
	records  int
	buckets  int
	observed int
}

func (o *recordingObserver) ObserveAggregation(kind string, records, buckets int) {
	o.kind, o.records, o.buckets = kind, records, buckets
	o.observed++
}
