package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"chat-analytics-service/internal/metrics/core/domain"
	"chat-analytics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AggregateUseCase interface {
	Conversations(ctx context.Context, in usecase.AggregateInput) (domain.Buckets[domain.ConversationMetrics], error)
	Callbacks(ctx context.Context, in usecase.AggregateInput) (domain.Buckets[domain.CallbackMetrics], error)
	Stats(ctx context.Context, in usecase.AggregateInput) (domain.Buckets[domain.StatsMetrics], error)
}

type ListUseCase interface {
	Conversations(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationRecord, error)
	Transcripts(ctx context.Context, tenantID string, p domain.Page) ([]domain.ConversationDetail, error)
}

type LookupUseCase interface {
	Conversation(ctx context.Context, tenantID, conversationID string) (*domain.ConversationDetail, error)
	Transcript(ctx context.Context, tenantID, transcriptID string) (*domain.ConversationDetail, error)
}

type MetricsHandler struct {
	aggregate AggregateUseCase
	list      ListUseCase
	lookup    LookupUseCase
	loc       *time.Location
	log       *zap.Logger
}

func NewMetricsHandler(aggregate AggregateUseCase, list ListUseCase, lookup LookupUseCase, loc *time.Location, log *zap.Logger) *MetricsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MetricsHandler{aggregate: aggregate, list: list, lookup: lookup, loc: loc, log: log}
}

// GetConversation godoc
// @Summary Conversation analytics
// @Description With conversationId returns one conversation. With begin and end returns
// @Description bucketed counts. With limit or offset returns a page of conversations.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param conversationId query string false "Conversation ID"
// @Param begin query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param end query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Param timePeriod query string false "hourly | daily | weekly | monthly | yearly"
// @Param bucketing query string false "position | dense"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]ConversationBucketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/conversation [get]
func (h *MetricsHandler) GetConversation(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	ctx := c.UserContext()

	if id := c.Query("conversationId"); id != "" {
		d, err := h.lookup.Conversation(ctx, tenantID, id)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(conversationDetail(d))
	}

	if hasWindow(c) {
		in, err := h.aggregateInput(c, tenantID)
		if err != nil {
			return h.badRequest(c, err)
		}
		b, err := h.aggregate.Conversations(ctx, in)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(conversationBuckets(b))
	}

	if hasPage(c) {
		convs, err := h.list.Conversations(ctx, tenantID, page(c))
		if err != nil {
			return h.fail(c, err)
		}
		out := make([]ConversationSummaryResponse, 0, len(convs))
		for _, cv := range convs {
			out = append(out, ConversationSummaryResponse{ID: cv.ID, ThreadID: cv.ThreadID, CreatedAt: cv.CreatedAt})
		}
		return c.Status(http.StatusOK).JSON(out)
	}

	return h.invalidRequest(c)
}

// GetCallback godoc
// @Summary Callback analytics
// @Description With conversationId returns the callback of one conversation. With begin and
// @Description end returns bucketed contactable counts. With limit or offset returns a page.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param conversationId query string false "Conversation ID"
// @Param begin query string false "Window start"
// @Param end query string false "Window end"
// @Param timePeriod query string false "hourly | daily | weekly | monthly | yearly"
// @Param bucketing query string false "position | dense"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]CallbackBucketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/callback [get]
func (h *MetricsHandler) GetCallback(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	ctx := c.UserContext()

	if id := c.Query("conversationId"); id != "" {
		d, err := h.lookup.Conversation(ctx, tenantID, id)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(callbackDetail(d))
	}

	if hasWindow(c) {
		in, err := h.aggregateInput(c, tenantID)
		if err != nil {
			return h.badRequest(c, err)
		}
		b, err := h.aggregate.Callbacks(ctx, in)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(callbackBuckets(b))
	}

	if hasPage(c) {
		convs, err := h.list.Conversations(ctx, tenantID, page(c))
		if err != nil {
			return h.fail(c, err)
		}
		out := make([]CallbackSummaryResponse, 0, len(convs))
		for _, cv := range convs {
			entry := CallbackSummaryResponse{ID: cv.ID, ThreadID: cv.ThreadID, CreatedAt: cv.CreatedAt}
			if cb := cv.Callback; cb != nil {
				entry.Callback = &CallbackFieldsResponse{
					Country: cb.Country,
					IP:      cb.IP,
					Phone:   cb.Phone,
					Email:   cb.Email,
					DemoURL: cb.DemoURL,
				}
			}
			out = append(out, entry)
		}
		return c.Status(http.StatusOK).JSON(out)
	}

	return h.invalidRequest(c)
}

// GetTranscript godoc
// @Summary Conversation transcripts
// @Description conversationId returns every transcript of a conversation, transcriptId a single
// @Description one. limit/offset pages through conversations that have transcripts.
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Param tenantId path string true "Typebot ID"
// @Param conversationId query string false "Conversation ID"
// @Param transcriptId query string false "Transcript ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} TranscriptDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/transcript [get]
func (h *MetricsHandler) GetTranscript(c *fiber.Ctx) error {
	tenantID := c.Params("tenantId")
	ctx := c.UserContext()

	if id := c.Query("conversationId"); id != "" {
		d, err := h.lookup.Conversation(ctx, tenantID, id)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(transcriptDetail(d))
	}

	if hasPage(c) {
		convs, err := h.list.Transcripts(ctx, tenantID, page(c))
		if err != nil {
			return h.fail(c, err)
		}
		out := make([]TranscriptListEntryResponse, 0, len(convs))
		for i := range convs {
			d := transcriptDetail(&convs[i])
			out = append(out, TranscriptListEntryResponse{
				CreatedAt:   convs[i].CreatedAt,
				ThreadID:    d.ThreadID,
				UserIP:      d.UserIP,
				UserCountry: d.UserCountry,
				Transcripts: d.Transcripts,
			})
		}
		return c.Status(http.StatusOK).JSON(out)
	}

	if id := c.Query("transcriptId"); id != "" {
		d, err := h.lookup.Transcript(ctx, tenantID, id)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(http.StatusOK).JSON(transcriptDetail(d))
	}

	return h.badRequest(c, errors.New("conversationId, transcriptId or limit/offset is required"))
}

// GetStats godoc
// @Summary Bot session statistics
// @Description Buckets stats snapshots inside [begin, end]. metric selects which fields are
// @Description returned; "all" returns every field. averageResponseTime is the newest reading
// @Description in the bucket, or -1 when none was reported.
// @Tags Analytics
// @Produce json
// @Security SessionAuth
// @Param tenantId path string true "Typebot ID"
// @Param begin query string true "Window start"
// @Param end query string true "Window end"
// @Param metric query string true "all | completed | userMessages | callbackAsked | averageResponseTime | chatTime"
// @Param timePeriod query string true "hour | day | week | month | year"
// @Param bucketing query string false "position | dense"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/{tenantId}/stats [get]
func (h *MetricsHandler) GetStats(c *fiber.Ctx) error {
	if c.Query("begin") == "" || c.Query("end") == "" || c.Query("metric") == "" || c.Query("timePeriod") == "" {
		return h.badRequest(c, errors.New("begin, end, metric and timePeriod are required"))
	}

	metric, ok := domain.ParseStatsMetric(c.Query("metric"))
	if !ok {
		return h.badRequest(c, ErrInvalidMetric)
	}

	in, err := h.aggregateInput(c, c.Params("tenantId"))
	if err != nil {
		return h.badRequest(c, err)
	}

	b, err := h.aggregate.Stats(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(statsResponse(b, metric))
}

func (h *MetricsHandler) aggregateInput(c *fiber.Ctx, tenantID string) (usecase.AggregateInput, error) {
	w, err := parseWindow(c.Query("begin"), c.Query("end"), h.loc)
	if err != nil {
		return usecase.AggregateInput{}, err
	}

	bucketing, ok := domain.ParseBucketing(c.Query("bucketing"))
	if !ok {
		return usecase.AggregateInput{}, ErrInvalidBucketing
	}

	// Unknown periods fall back to hourly.
	g, _ := domain.ParseGranularity(c.Query("timePeriod"))

	return usecase.AggregateInput{
		TenantID:    tenantID,
		Window:      w,
		Granularity: g,
		Bucketing:   bucketing,
	}, nil
}

func hasWindow(c *fiber.Ctx) bool {
	return c.Query("begin") != "" && c.Query("end") != ""
}

func hasPage(c *fiber.Ctx) bool {
	return c.Query("limit") != "" || c.Query("offset") != ""
}

func page(c *fiber.Ctx) domain.Page {
	return domain.ParsePage(c.Query("limit"), c.Query("offset"))
}

func (h *MetricsHandler) invalidRequest(c *fiber.Ctx) error {
	return h.badRequest(c, errors.New("conversationId, begin/end or limit/offset is required"))
}

func (h *MetricsHandler) badRequest(c *fiber.Ctx, err error) error {
	h.log.Warn("Rejected analytics query",
		zap.String("path", c.Path()),
		zap.String("query", string(c.Request().URI().QueryString())),
		zap.Error(err),
	)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func (h *MetricsHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrTenantNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "typebot_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrConversationNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "conversation_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrTranscriptNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "transcript_not_found", Message: err.Error()})
	default:
		h.log.Error("Analytics query failed",
			zap.String("path", c.Path()),
			zap.String("tenant_id", c.Params("tenantId")),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
