// Package httpserver builds the Fiber app shared by every HTTP adapter.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"method_not_allowed"`
	Message string `json:"message" example:"Method Not Allowed"`
}

func New(log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "chat-analytics-service",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          ErrorHandler(log),
	})
}

// ErrorHandler renders errors that escape handlers, including Fiber's own
// 404 and 405, as ErrorResponse.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := http.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else {
			log.Error("Unhandled request error", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(code).JSON(ErrorResponse{
			Error:   errorCode(code),
			Message: message,
		})
	}
}

func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports 503 when the database does not answer.
func Health(db Pinger, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			log.Warn("Health check failed", zap.Error(err))
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
