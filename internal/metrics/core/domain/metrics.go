package domain

import "time"

// Callback is the contact form a visitor filled in during a conversation.
type Callback struct {
	Country string
	IP      string
	Phone   string
	Email   string
	DemoURL string
}

// Contactable reports whether the visitor left a phone number or an email.
func (c *Callback) Contactable() bool {
	if c == nil {
		return false
	}
	return c.Email != "" || c.Phone != ""
}

type TranscriptEntry struct {
	ID          string
	UserMessage string
	BotMessage  string
	CreatedAt   time.Time
}

// ConversationRecord is the row shape used for bucketing and listing.
// Transcripts are not loaded; only their count is.
type ConversationRecord struct {
	ID              string
	TenantID        string
	ThreadID        string
	CreatedAt       time.Time
	Callback        *Callback
	TranscriptCount int
}

// ConversationDetail is a single conversation with its transcript entries.
type ConversationDetail struct {
	ID          string
	TenantID    string
	ThreadID    string
	CreatedAt   time.Time
	Callback    *Callback
	Transcripts []TranscriptEntry
}

// StatsRecord is one periodic snapshot reported by a bot session.
type StatsRecord struct {
	TenantID            string
	CreatedAt           time.Time
	Completed           bool
	UserMessages        int64
	CallbackAsked       bool
	AverageResponseTime *float64
	ChatTime            *float64
}
