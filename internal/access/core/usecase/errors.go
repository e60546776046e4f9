package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrTenantNotFound = errors.New("typebot not found")

	ErrMissingBearer = fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	ErrInvalidToken  = fmt.Errorf("%w: invalid token", ErrUnauthorized)
)
