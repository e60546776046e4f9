package fiber

import (
	"context"
	"errors"
	"net/http"

	"chat-analytics-service/internal/access/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalUserID is the c.Locals key holding the session user id.
const LocalUserID = "userID"

type APIKeyGate interface {
	Authorize(header string) error
}

type SessionGate interface {
	Authorize(ctx context.Context, header, tenantID string) (string, error)
}

type ErrorResponse struct {
	Error   string `json:"error" example:"unauthorized"`
	Message string `json:"message" example:"unauthorized: missing bearer token"`
}

// RequireAPIKey rejects requests without the analytics API key before any
// handler runs.
func RequireAPIKey(gate APIKeyGate, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.Authorize(c.Get(fiber.HeaderAuthorization)); err != nil {
			return deny(c, log, err)
		}
		return c.Next()
	}
}

// RequireSession admits signed-in users allowed to read the :tenantId typebot.
func RequireSession(gate SessionGate, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := gate.Authorize(c.UserContext(), c.Get(fiber.HeaderAuthorization), c.Params("tenantId"))
		if err != nil {
			return deny(c, log, err)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

func deny(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		log.Debug("Request not authenticated", zap.String("path", c.Path()), zap.Error(err))
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized", Message: err.Error()})
	case errors.Is(err, usecase.ErrTenantNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{Error: "typebot_not_found", Message: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		log.Warn("Request forbidden", zap.String("path", c.Path()), zap.String("tenant_id", c.Params("tenantId")))
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{Error: "forbidden", Message: err.Error()})
	default:
		log.Error("Authorization failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}
}
