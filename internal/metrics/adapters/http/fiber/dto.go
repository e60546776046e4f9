package fiber

import (
	"time"

	"chat-analytics-service/internal/metrics/core/domain"
)

type ConversationBucketResponse struct {
	CallbackCount     int64 `json:"callbackCount" example:"3"`
	Initialisations   int64 `json:"initialisations" example:"12"`
	AiInitialisations int64 `json:"aiInitialisations" example:"9"`
}

type CallbackBucketResponse struct {
	Count int64 `json:"count" example:"3"`
}

// StatsPointResponse carries only the fields selected by the metric parameter.
type StatsPointResponse struct {
	Completed           *int64   `json:"completed,omitempty"`
	UserMessages        *int64   `json:"userMessages,omitempty"`
	CallbackAsked       *int64   `json:"callbackAsked,omitempty"`
	AverageResponseTime *float64 `json:"averageResponseTime,omitempty"`
	ChatTime            *float64 `json:"chatTime,omitempty"`
}

type StatsResponse struct {
	DataPoints map[int64]StatsPointResponse `json:"dataPoints"`
}

type TranscriptMessageResponse struct {
	UserMessage string `json:"userMessage"`
	BotMessage  string `json:"botMessage"`
}

type ConversationDetailResponse struct {
	ID          string                      `json:"id"`
	ThreadID    string                      `json:"threadId"`
	CreatedAt   time.Time                   `json:"createdAt"`
	DemoURL     string                      `json:"demoURL"`
	Email       string                      `json:"email"`
	Phone       string                      `json:"phone"`
	Country     string                      `json:"country"`
	IP          string                      `json:"ip"`
	Transcripts []TranscriptMessageResponse `json:"transcripts"`
}

type CallbackDetailResponse struct {
	ThreadID  string    `json:"threadId"`
	CreatedAt time.Time `json:"createdAt"`
	DemoURL   string    `json:"demoURL"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	IP        string    `json:"ip"`
}

type ConversationSummaryResponse struct {
	ID        string    `json:"id"`
	ThreadID  string    `json:"threadId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CallbackFieldsResponse struct {
	Country string `json:"country"`
	IP      string `json:"ip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	DemoURL string `json:"demoURL"`
}

type CallbackSummaryResponse struct {
	ID        string                  `json:"id"`
	ThreadID  string                  `json:"threadId"`
	CreatedAt time.Time               `json:"createdAt"`
	Callback  *CallbackFieldsResponse `json:"callback"`
}

type TranscriptDetailResponse struct {
	ThreadID    string                      `json:"threadId"`
	UserIP      string                      `json:"userIp"`
	UserCountry string                      `json:"userCountry"`
	Transcripts []TranscriptMessageResponse `json:"transcripts"`
}

type TranscriptListEntryResponse struct {
	CreatedAt   time.Time                   `json:"createdAt"`
	ThreadID    string                      `json:"threadId"`
	UserIP      string                      `json:"userIp"`
	UserCountry string                      `json:"userCountry"`
	Transcripts []TranscriptMessageResponse `json:"transcripts"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"begin and end must be valid timestamps"`
}

func conversationBuckets(b domain.Buckets[domain.ConversationMetrics]) map[int64]ConversationBucketResponse {
	out := make(map[int64]ConversationBucketResponse, len(b))
	for k, m := range b {
		out[k] = ConversationBucketResponse{
			CallbackCount:     m.CallbackCount,
			Initialisations:   m.Initialisations,
			AiInitialisations: m.AiInitialisations,
		}
	}
	return out
}

func callbackBuckets(b domain.Buckets[domain.CallbackMetrics]) map[int64]CallbackBucketResponse {
	out := make(map[int64]CallbackBucketResponse, len(b))
	for k, m := range b {
		out[k] = CallbackBucketResponse{Count: m.Count}
	}
	return out
}

func statsResponse(b domain.Buckets[domain.StatsMetrics], metric domain.StatsMetric) StatsResponse {
	points := make(map[int64]StatsPointResponse, len(b))
	for k, m := range b {
		var p StatsPointResponse
		if metric.Includes(domain.MetricCompleted) {
			p.Completed = &m.Completed
		}
		if metric.Includes(domain.MetricUserMessages) {
			p.UserMessages = &m.UserMessages
		}
		if metric.Includes(domain.MetricCallbackAsked) {
			p.CallbackAsked = &m.CallbackAsked
		}
		if metric.Includes(domain.MetricAverageResponseTime) {
			p.AverageResponseTime = &m.AverageResponseTime
		}
		if metric.Includes(domain.MetricChatTime) {
			p.ChatTime = &m.ChatTime
		}
		points[k] = p
	}
	return StatsResponse{DataPoints: points}
}

func messages(ts []domain.TranscriptEntry) []TranscriptMessageResponse {
	out := make([]TranscriptMessageResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, TranscriptMessageResponse{UserMessage: t.UserMessage, BotMessage: t.BotMessage})
	}
	return out
}

func callbackOrEmpty(cb *domain.Callback) domain.Callback {
	if cb == nil {
		return domain.Callback{}
	}
	return *cb
}

func conversationDetail(d *domain.ConversationDetail) ConversationDetailResponse {
	cb := callbackOrEmpty(d.Callback)
	return ConversationDetailResponse{
		ID:          d.ID,
		ThreadID:    d.ThreadID,
		CreatedAt:   d.CreatedAt,
		DemoURL:     cb.DemoURL,
		Email:       cb.Email,
		Phone:       cb.Phone,
		Country:     cb.Country,
		IP:          cb.IP,
		Transcripts: messages(d.Transcripts),
	}
}

func callbackDetail(d *domain.ConversationDetail) CallbackDetailResponse {
	cb := callbackOrEmpty(d.Callback)
	return CallbackDetailResponse{
		ThreadID:  d.ThreadID,
		CreatedAt: d.CreatedAt,
		DemoURL:   cb.DemoURL,
		Email:     cb.Email,
		Phone:     cb.Phone,
		Country:   cb.Country,
		IP:        cb.IP,
	}
}

func transcriptDetail(d *domain.ConversationDetail) TranscriptDetailResponse {
	cb := callbackOrEmpty(d.Callback)
	return TranscriptDetailResponse{
		ThreadID:    d.ThreadID,
		UserIP:      cb.IP,
		UserCountry: cb.Country,
		Transcripts: messages(d.Transcripts),
	}
}
