package fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chat-analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type fakeConversationUseCase struct {
	CreateFunc func(ctx context.Context, tenantID string) (string, error)
	UpdateFunc func(ctx context.Context, in usecase.UpdateConversationInput) error

	LastTenant      string
	LastUpdateInput usecase.UpdateConversationInput
	createCalled    bool
	updateCalled    bool
}

func (f *fakeConversationUseCase) Create(ctx context.Context, tenantID string) (string, error) {
	f.createCalled, f.LastTenant = true, tenantID
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, tenantID)
	}
	return "conv_new", nil
}

func (f *fakeConversationUseCase) Update(ctx context.Context, in usecase.UpdateConversationInput) error {
	f.updateCalled, f.LastUpdateInput = true, in
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, in)
	}
	return nil
}

type fakeTranscriptUseCase struct {
	CreateFunc func(ctx context.Context, in usecase.CreateTranscriptInput) (string, error)
	UpdateFunc func(ctx context.Context, in usecase.UpdateTranscriptInput) error

	LastCreateInput usecase.CreateTranscriptInput
	LastUpdateInput usecase.UpdateTranscriptInput
	createCalled    bool
	updateCalled    bool
}

func (f *fakeTranscriptUseCase) Create(ctx context.Context, in usecase.CreateTranscriptInput) (string, error) {
	f.createCalled, f.LastCreateInput = true, in
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, in)
	}
	return "tr_new", nil
}

func (f *fakeTranscriptUseCase) Update(ctx context.Context, in usecase.UpdateTranscriptInput) error {
	f.updateCalled, f.LastUpdateInput = true, in
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, in)
	}
	return nil
}

type fakeStatsUseCase struct {
	RecordFunc      func(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error)
	RecordBatchFunc func(ctx context.Context, tenantID string, in []usecase.RecordStatsInput) (usecase.RecordStatsBatchResult, error)

	LastInput      usecase.RecordStatsInput
	LastBatchInput []usecase.RecordStatsInput
}

func (f *fakeStatsUseCase) Record(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error) {
	f.LastInput = in
	if f.RecordFunc != nil {
		return f.RecordFunc(ctx, tenantID, in)
	}
	return true, nil
}

func (f *fakeStatsUseCase) RecordBatch(ctx context.Context, tenantID string, in []usecase.RecordStatsInput) (usecase.RecordStatsBatchResult, error) {
	f.LastBatchInput = in
	if f.RecordBatchFunc != nil {
		return f.RecordBatchFunc(ctx, tenantID, in)
	}
	return usecase.RecordStatsBatchResult{Created: len(in)}, nil
}

// helper: create fiber app and routes
func setupTestApp(conv ConversationUseCase, tr TranscriptUseCase, stats StatsUseCase) *fiber.App {
	app := fiber.New()
	h := NewEventHandler(conv, tr, stats, zap.NewNop())

	g := app.Group("/analytics/:tenantId")
	g.Post("/conversation", h.PostConversation)
	g.Post("/transcript", h.PostTranscript)
	g.Post("/stats", h.PostStats)
	g.Post("/stats/bulk", h.PostStatsBatch)

	return app
}

// helper: send request
func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	_ = resp.Body.Close()

	return resp, respBody
}

// ------------------------------------------------------------
// CONVERSATION
// ------------------------------------------------------------

func TestPostConversation_Create(t *testing.T) {
	conv := &fakeConversationUseCase{}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/conversation", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d (body: %s)", http.StatusCreated, resp.StatusCode, string(body))
	}

	var out ConversationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.ConversationID != "conv_new" {
		t.Errorf("expected conversationId=conv_new, got %q", out.ConversationID)
	}
	if conv.LastTenant != "bot_1" {
		t.Errorf("expected tenant bot_1, got %q", conv.LastTenant)
	}
}

func TestPostConversation_Update(t *testing.T) {
	conv := &fakeConversationUseCase{}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	reqBody := UpdateConversationRequest{ThreadID: "thread_1", Email: "a@b.c", Country: "DE"}
	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/conversation?conversationId=conv_1", reqBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d (body: %s)", resp.StatusCode, string(body))
	}
	if conv.createCalled {
		t.Fatalf("create must not be called with conversationId")
	}

	in := conv.LastUpdateInput
	if in.ConversationID != "conv_1" || in.ThreadID != "thread_1" || in.Callback.Email != "a@b.c" || in.Callback.Country != "DE" {
		t.Fatalf("unexpected update input: %+v", in)
	}
}

func TestPostConversation_UpdateWithoutBody(t *testing.T) {
	conv := &fakeConversationUseCase{}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/conversation?conversationId=conv_1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !conv.updateCalled {
		t.Fatalf("expected update to be called")
	}
}

func TestPostConversation_NotFound(t *testing.T) {
	conv := &fakeConversationUseCase{
		UpdateFunc: func(ctx context.Context, in usecase.UpdateConversationInput) error {
			return usecase.ErrConversationNotFound
		},
	}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/conversation?conversationId=missing", UpdateConversationRequest{ThreadID: "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}

	var out ErrorResponse
	_ = json.Unmarshal(body, &out)
	if out.Error != "conversation_not_found" {
		t.Errorf("unexpected error body: %+v", out)
	}
}

func TestPostConversation_TenantNotFound(t *testing.T) {
	conv := &fakeConversationUseCase{
		CreateFunc: func(ctx context.Context, tenantID string) (string, error) {
			return "", usecase.ErrTenantNotFound
		},
	}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/ghost/conversation", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestPostConversation_InvalidJSON(t *testing.T) {
	conv := &fakeConversationUseCase{}
	app := setupTestApp(conv, &fakeTranscriptUseCase{}, &fakeStatsUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/analytics/bot_1/conversation?conversationId=conv_1", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if conv.updateCalled {
		t.Fatalf("usecase must not be called for invalid json")
	}
}

// ------------------------------------------------------------
// TRANSCRIPT
// ------------------------------------------------------------

func TestPostTranscript_Create(t *testing.T) {
	tr := &fakeTranscriptUseCase{}
	app := setupTestApp(&fakeConversationUseCase{}, tr, &fakeStatsUseCase{})

	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/transcript?conversationId=conv_1",
		TranscriptRequest{UserMessage: "hi", BotMessage: "hello"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (body: %s)", resp.StatusCode, string(body))
	}

	var out TranscriptResponse
	_ = json.Unmarshal(body, &out)
	if out.TranscriptID != "tr_new" {
		t.Errorf("expected transcriptId=tr_new, got %q", out.TranscriptID)
	}
	if tr.LastCreateInput.ConversationID != "conv_1" || tr.LastCreateInput.UserMessage != "hi" {
		t.Errorf("unexpected create input: %+v", tr.LastCreateInput)
	}
}

func TestPostTranscript_UpdateTakesPrecedence(t *testing.T) {
	tr := &fakeTranscriptUseCase{}
	app := setupTestApp(&fakeConversationUseCase{}, tr, &fakeStatsUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/transcript?conversationId=conv_1&transcriptId=t1",
		TranscriptRequest{BotMessage: "edited"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if tr.createCalled {
		t.Fatalf("create must not be called when transcriptId is given")
	}
	if tr.LastUpdateInput.TranscriptID != "t1" || tr.LastUpdateInput.BotMessage != "edited" {
		t.Errorf("unexpected update input: %+v", tr.LastUpdateInput)
	}
}

func TestPostTranscript_MissingIDs(t *testing.T) {
	tr := &fakeTranscriptUseCase{}
	app := setupTestApp(&fakeConversationUseCase{}, tr, &fakeStatsUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/transcript", TranscriptRequest{UserMessage: "hi"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if tr.createCalled || tr.updateCalled {
		t.Fatalf("usecase must not be called")
	}
}

func TestPostTranscript_NotFound(t *testing.T) {
	tr := &fakeTranscriptUseCase{
		UpdateFunc: func(ctx context.Context, in usecase.UpdateTranscriptInput) error {
			return usecase.ErrTranscriptNotFound
		},
	}
	app := setupTestApp(&fakeConversationUseCase{}, tr, &fakeStatsUseCase{})

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/transcript?transcriptId=missing", TranscriptRequest{})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// STATS
// ------------------------------------------------------------

func TestPostStats_Created(t *testing.T) {
	stats := &fakeStatsUseCase{}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	rt := 1.25
	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats",
		RecordStatsRequest{Completed: true, UserMessages: 5, AverageResponseTime: &rt})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (body: %s)", resp.StatusCode, string(body))
	}

	in := stats.LastInput
	if !in.Completed || in.UserMessages != 5 || in.AverageResponseTime == nil || *in.AverageResponseTime != 1.25 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.ChatTime != nil {
		t.Fatalf("expected nil chat time")
	}
}

func TestPostStats_Duplicate(t *testing.T) {
	stats := &fakeStatsUseCase{
		RecordFunc: func(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error) {
			return false, nil
		},
	}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats", RecordStatsRequest{SnapshotID: "s1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var out RecordStatsResponse
	_ = json.Unmarshal(body, &out)
	if out.Status != "duplicate" {
		t.Errorf("expected status=duplicate, got %q", out.Status)
	}
}

func TestPostStats_Invalid(t *testing.T) {
	stats := &fakeStatsUseCase{
		RecordFunc: func(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error) {
			return false, usecase.ErrInvalidStats
		},
	}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats", RecordStatsRequest{UserMessages: -1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
}

func TestPostStats_InternalError(t *testing.T) {
	stats := &fakeStatsUseCase{
		RecordFunc: func(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error) {
			return false, errors.New("db failure")
		},
	}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats", RecordStatsRequest{})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var out ErrorResponse
	_ = json.Unmarshal(body, &out)
	if out.Error != "internal_server_error" {
		t.Errorf("unexpected error body: %+v", out)
	}
}

func TestPostStatsBatch_Success(t *testing.T) {
	stats := &fakeStatsUseCase{
		RecordBatchFunc: func(ctx context.Context, tenantID string, in []usecase.RecordStatsInput) (usecase.RecordStatsBatchResult, error) {
			return usecase.RecordStatsBatchResult{Created: 1, Duplicates: 1}, nil
		},
	}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	reqBody := RecordStatsBatchRequest{Snapshots: []RecordStatsRequest{{SnapshotID: "a"}, {SnapshotID: "b"}}}
	resp, body := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats/bulk", reqBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var out RecordStatsBatchResponse
	_ = json.Unmarshal(body, &out)
	if out.Created != 1 || out.Duplicates != 1 {
		t.Errorf("unexpected body: %+v", out)
	}
	if len(stats.LastBatchInput) != 2 || stats.LastBatchInput[1].SnapshotID != "b" {
		t.Errorf("unexpected batch input: %+v", stats.LastBatchInput)
	}
}

func TestPostStatsBatch_Empty(t *testing.T) {
	stats := &fakeStatsUseCase{}
	app := setupTestApp(&fakeConversationUseCase{}, &fakeTranscriptUseCase{}, stats)

	resp, _ := doRequest(t, app, http.MethodPost, "/analytics/bot_1/stats/bulk", RecordStatsBatchRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.StatusCode)
	}
	if stats.LastBatchInput != nil {
		t.Fatalf("usecase must not be called")
	}
}
