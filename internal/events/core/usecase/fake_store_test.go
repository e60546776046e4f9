package usecase_test

import (
	"context"

	"chat-analytics-service/internal/events/core/domain"
)

// Fake store implementing EventStorePort
type fakeEventStore struct {
	missingTenant bool
	tenantErr     error
	conversations map[string]bool

	InsertConversationFn func(ctx context.Context, c *domain.Conversation) error
	UpsertCallbackFn     func(ctx context.Context, cb *domain.Callback) error
	FindTranscriptFn     func(ctx context.Context, tenantID, id string) (*domain.Transcript, error)
	InsertStatsFn        func(ctx context.Context, s *domain.StatsSnapshot) (bool, error)

	insertedConversations []*domain.Conversation
	threadUpdates         map[string]string
	callbacks             []*domain.Callback
	insertedTranscripts   []*domain.Transcript
	updatedTranscripts    []*domain.Transcript
	stats                 []*domain.StatsSnapshot
}

func (f *fakeEventStore) TenantExists(ctx context.Context, tenantID string) (bool, error) {
	if f.tenantErr != nil {
		return false, f.tenantErr
	}
	return !f.missingTenant, nil
}

func (f *fakeEventStore) InsertConversation(ctx context.Context, c *domain.Conversation) error {
	f.insertedConversations = append(f.insertedConversations, c)
	if f.InsertConversationFn != nil {
		return f.InsertConversationFn(ctx, c)
	}
	return nil
}

func (f *fakeEventStore) ConversationExists(ctx context.Context, tenantID, id string) (bool, error) {
	return f.conversations[id], nil
}

func (f *fakeEventStore) UpdateThreadID(ctx context.Context, id, threadID string) error {
	if f.threadUpdates == nil {
		f.threadUpdates = map[string]string{}
	}
	f.threadUpdates[id] = threadID
	return nil
}

func (f *fakeEventStore) UpsertCallback(ctx context.Context, cb *domain.Callback) error {
	f.callbacks = append(f.callbacks, cb)
	if f.UpsertCallbackFn != nil {
		return f.UpsertCallbackFn(ctx, cb)
	}
	return nil
}

func (f *fakeEventStore) InsertTranscript(ctx context.Context, t *domain.Transcript) error {
	f.insertedTranscripts = append(f.insertedTranscripts, t)
	return nil
}

func (f *fakeEventStore) FindTranscript(ctx context.Context, tenantID, id string) (*domain.Transcript, error) {
	if f.FindTranscriptFn != nil {
		return f.FindTranscriptFn(ctx, tenantID, id)
	}
	return nil, nil
}

func (f *fakeEventStore) UpdateTranscript(ctx context.Context, t *domain.Transcript) error {
	f.updatedTranscripts = append(f.updatedTranscripts, t)
	return nil
}

func (f *fakeEventStore) InsertStats(ctx context.Context, s *domain.StatsSnapshot) (bool, error) {
	f.stats = append(f.stats, s)
	if f.InsertStatsFn != nil {
		return f.InsertStatsFn(ctx, s)
	}
	return true, nil
}
