package fiber

// UpdateConversationRequest represents the conversation update payload
// @Description Empty fields are left unchanged
type UpdateConversationRequest struct {
	ThreadID string `json:"threadId"`
	DemoURL  string `json:"demoURL"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	IP       string `json:"ip"`
}

type ConversationResponse struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

// TranscriptRequest is used for create and update. On update empty
// messages keep their stored value.
type TranscriptRequest struct {
	UserMessage string `json:"userMessage"`
	BotMessage  string `json:"botMessage"`
}

type TranscriptResponse struct {
	Message      string `json:"message"`
	TranscriptID string `json:"transcriptId"`
}

// RecordStatsRequest represents one stats snapshot
// @Description Bot session stats snapshot
type RecordStatsRequest struct {
	SnapshotID          string   `json:"snapshotId"`
	Completed           bool     `json:"completed"`
	UserMessages        int64    `json:"userMessages"`
	CallbackAsked       bool     `json:"callbackAsked"`
	AverageResponseTime *float64 `json:"averageResponseTime"`
	ChatTime            *float64 `json:"chatTime"`
	Timestamp           int64    `json:"timestamp"`
}

type RecordStatsResponse struct {
	Status string `json:"status"`
}

type RecordStatsBatchRequest struct {
	Snapshots []RecordStatsRequest `json:"snapshots"`
}

type RecordStatsBatchResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"conversation_not_found"`
	Message string `json:"message" example:"conversation not found"`
}
