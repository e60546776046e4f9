package domain

import "time"

type Conversation struct {
	ID        string
	TenantID  string
	ThreadID  string
	CreatedAt time.Time
}

// Callback holds the contact fields of a conversation. Empty fields are
// treated as "not provided" on update.
type Callback struct {
	ConversationID string
	Country        string
	IP             string
	Phone          string
	Email          string
	DemoURL        string
}

func (c Callback) Empty() bool {
	return c.Country == "" && c.IP == "" && c.Phone == "" && c.Email == "" && c.DemoURL == ""
}

type Transcript struct {
	ID             string
	ConversationID string
	UserMessage    string
	BotMessage     string
	CreatedAt      time.Time
}

// StatsSnapshot is one periodic report of a bot session.
type StatsSnapshot struct {
	ID                  string
	TenantID            string
	Completed           bool
	UserMessages        int64
	CallbackAsked       bool
	AverageResponseTime *float64
	ChatTime            *float64
	CreatedAt           time.Time
}
