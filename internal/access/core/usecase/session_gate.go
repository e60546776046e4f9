package usecase

import (
	"context"
	"fmt"

	"chat-analytics-service/internal/access/core/ports"
)

// Roles allowed to read a typebot's analytics.
var readerRoles = map[string]bool{
	"ADMIN":     true,
	"MEMBER":    true,
	"ANALYTICS": true,
}

type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// SessionGate admits signed-in users that may read the typebot.
type SessionGate struct {
	tokens  TokenValidator
	members ports.MembershipReaderPort
}

func NewSessionGate(tokens TokenValidator, members ports.MembershipReaderPort) *SessionGate {
	return &SessionGate{tokens: tokens, members: members}
}

// Authorize checks credentials, then the typebot, then the role, and returns
// the user id.
func (g *SessionGate) Authorize(ctx context.Context, header, tenantID string) (string, error) {
	raw, err := ExtractBearer(header)
	if err != nil {
		return "", err
	}

	claims, err := g.tokens.Validate(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role, found, err := g.members.Membership(ctx, tenantID, claims.Subject)
	if err != nil {
		return "", fmt.Errorf("lookup membership: %w", err)
	}
	if !found {
		return "", ErrTenantNotFound
	}
	if !readerRoles[role] {
		return "", ErrForbidden
	}
	return claims.Subject, nil
}
