package usecase

import "errors"

var (
	ErrTenantNotFound       = errors.New("typebot not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrTranscriptNotFound   = errors.New("transcript not found")
)
