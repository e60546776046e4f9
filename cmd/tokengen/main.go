// Command tokengen mints session tokens for the stats endpoint.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"chat-analytics-service/internal/access/core/usecase"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type env struct {
	SessionJWTSecret string        `envconfig:"SESSION_JWT_SECRET"`
	SessionTokenTTL  time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"24h"`
}

var errMissingSecret = errors.New("session secret is not set: use --secret or SESSION_JWT_SECRET")

func newRootCmd() *cobra.Command {
	var (
		userID string
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tokengen",
		Short: "Issue a session token",
		Long: `Issue a signed session token for a dashboard user.

The token authorizes GET /analytics/{tenantId}/stats for every typebot
the user is an ADMIN, MEMBER or ANALYTICS member of.

Examples:
  tokengen --user=user_123
  tokengen --user=user_123 --ttl=1h --secret=$SESSION_JWT_SECRET`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var e env
			if err := envconfig.Process("", &e); err != nil {
				return fmt.Errorf("failed to process env: %w", err)
			}
			if secret == "" {
				secret = e.SessionJWTSecret
			}
			if secret == "" {
				return errMissingSecret
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = e.SessionTokenTTL
			}

			token, expiresAt, err := usecase.NewTokenService(secret, ttl).Issue(userID)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to SESSION_JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
