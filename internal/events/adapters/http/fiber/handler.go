package fiber

import (
	"context"
	"errors"
	"net/http"

	"chat-analytics-service/internal/events/core/domain"
	"chat-analytics-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ConversationUseCase interface {
	Create(ctx context.Context, tenantID string) (string, error)
	Update(ctx context.Context, in usecase.UpdateConversationInput) error
}

type TranscriptUseCase interface {
	Create(ctx context.Context, in usecase.CreateTranscriptInput) (string, error)
	Update(ctx context.Context, in usecase.UpdateTranscriptInput) error
}

type StatsUseCase interface {
	Record(ctx context.Context, tenantID string, in usecase.RecordStatsInput) (bool, error)
	RecordBatch(ctx context.Context, tenantID string, in []usecase.RecordStatsInput) (usecase.RecordStatsBatchResult, error)
}

type EventHandler struct {
	conversations ConversationUseCase
	transcripts   TranscriptUseCase
	stats         StatsUseCase
	log           *zap.Logger
}

func NewEventHandler(conversations ConversationUseCase, transcripts TranscriptUseCase, stats StatsUseCase, log *zap.Logger) *EventHandler {
	return &EventHandler{conversations: conversations, transcripts: transcripts, stats: stats, log: log}
}

// PostConversation godoc
// @Summary Create or update a conversation
// @Description Without conversationId a conversation is created. With it, threadId is set
// @Description and the callback is upserted; empty fields keep their stored value.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param conversationId query string false "Conversation ID"
// @Param request body UpdateConversationRequest false "Update payload"
// @Success 201 {object} ConversationResponse
// @Success 200 {object} ConversationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/conversation [post]
func (h *EventHandler) PostConversation(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")

	id := c.Query("conversationId")
	if id == "" {
		created, err := h.conversations.Create(c.UserContext(), tenantID)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusCreated).JSON(ConversationResponse{
			Message:        "Conversation Created.",
			ConversationID: created,
		})
	}

	var req UpdateConversationRequest
	if err := parseBody(c, &req); err != nil {
		return invalidJSON(c)
	}

	err := h.conversations.Update(c.UserContext(), usecase.UpdateConversationInput{
		TenantID:       tenantID,
		ConversationID: id,
		ThreadID:       req.ThreadID,
		Callback: domain.Callback{
			Country: req.Country,
			IP:      req.IP,
			Phone:   req.Phone,
			Email:   req.Email,
			DemoURL: req.DemoURL,
		},
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(ConversationResponse{Message: "Conversation Updated."})
}

// PostTranscript godoc
// @Summary Create or update a transcript
// @Description transcriptId updates the transcript, conversationId appends a new one.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param conversationId query string false "Conversation ID"
// @Param transcriptId query string false "Transcript ID"
// @Param request body TranscriptRequest true "Messages"
// @Success 201 {object} TranscriptResponse
// @Success 200 {object} TranscriptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/transcript [post]
func (h *EventHandler) PostTranscript(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	transcriptID := c.Query("transcriptId")
	conversationID := c.Query("conversationId")

	if transcriptID == "" && conversationID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "conversationId or transcriptId is required",
		})
	}

	var req TranscriptRequest
	if err := parseBody(c, &req); err != nil {
		return invalidJSON(c)
	}

	if transcriptID != "" {
		err := h.transcripts.Update(c.UserContext(), usecase.UpdateTranscriptInput{
			TenantID:     tenantID,
			TranscriptID: transcriptID,
			UserMessage:  req.UserMessage,
			BotMessage:   req.BotMessage,
		})
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(TranscriptResponse{
			Message:      "Transcript Updated.",
			TranscriptID: transcriptID,
		})
	}

	id, err := h.transcripts.Create(c.UserContext(), usecase.CreateTranscriptInput{
		TenantID:       tenantID,
		ConversationID: conversationID,
		UserMessage:    req.UserMessage,
		BotMessage:     req.BotMessage,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(TranscriptResponse{
		Message:      "Transcript Created.",
		TranscriptID: id,
	})
}

// PostStats godoc
// @Summary Record a stats snapshot
// @Description Stores one snapshot. A repeated snapshotId is reported as duplicate.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param request body RecordStatsRequest true "Snapshot"
// @Success 201 {object} RecordStatsResponse
// @Success 200 {object} RecordStatsResponse "Duplicate snapshot"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/stats [post]
func (h *EventHandler) PostStats(c *fiber.Ctx) error {
	var req RecordStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	created, err := h.stats.Record(c.UserContext(), c.Params("tenantId"), statsInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	if !created {
		return c.Status(http.StatusOK).JSON(RecordStatsResponse{Status: "duplicate"})
	}
	return c.Status(http.StatusCreated).JSON(RecordStatsResponse{Status: "created"})
}

// PostStatsBatch godoc
// @Summary Record stats snapshots in bulk
// @Description Every snapshot is validated before any is stored
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param request body RecordStatsBatchRequest true "Snapshots"
// @Success 201 {object} RecordStatsBatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/stats/bulk [post]
func (h *EventHandler) PostStatsBatch(c *fiber.Ctx) error {
	var req RecordStatsBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	if len(req.Snapshots) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "snapshots_required",
			Message: "snapshots must not be empty",
		})
	}

	inputs := make([]usecase.RecordStatsInput, len(req.Snapshots))
	for i, s := range req.Snapshots {
		inputs[i] = statsInput(s)
	}

	res, err := h.stats.RecordBatch(c.UserContext(), c.Params("tenantId"), inputs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(RecordStatsBatchResponse{
		Created:    res.Created,
		Duplicates: res.Duplicates,
	})
}

func statsInput(r RecordStatsRequest) usecase.RecordStatsInput {
	return usecase.RecordStatsInput{
		SnapshotID:          r.SnapshotID,
		Completed:           r.Completed,
		UserMessages:        r.UserMessages,
		CallbackAsked:       r.CallbackAsked,
		AverageResponseTime: r.AverageResponseTime,
		ChatTime:            r.ChatTime,
		Timestamp:           r.Timestamp,
	}
}

// parseBody leaves out untouched when the request has no body.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_json",
		Message: "request body is not valid JSON",
	})
}

func (h *EventHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrTenantNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "typebot_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrConversationNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "conversation_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrTranscriptNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "transcript_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrInvalidStats),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_stats", Message: err.Error()})
	default:
		h.log.Error("Event write failed",
			zap.String("path", c.Path()),
			zap.String("tenant_id", c.Params("tenantId")),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
