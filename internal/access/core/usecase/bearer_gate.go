package usecase

import (
	"crypto/subtle"
	"strings"
)

// ExtractBearer returns the token of an "Authorization: Bearer <token>" header.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingBearer
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// BearerGate admits requests carrying the shared analytics API key.
type BearerGate struct {
	key []byte
}

func NewBearerGate(apiKey string) *BearerGate {
	return &BearerGate{key: []byte(apiKey)}
}

func (g *BearerGate) Authorize(header string) error {
	token, err := ExtractBearer(header)
	if err != nil {
		return err
	}
	if len(g.key) == 0 || subtle.ConstantTimeCompare([]byte(token), g.key) != 1 {
		return ErrInvalidToken
	}
	return nil
}
