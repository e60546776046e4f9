package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	accessHttp "chat-analytics-service/internal/access/adapters/http/fiber"
	accessRepoPg "chat-analytics-service/internal/access/adapters/postgres"
	accessUsecase "chat-analytics-service/internal/access/core/usecase"

	eventsHttp "chat-analytics-service/internal/events/adapters/http/fiber"
	eventsRepoPg "chat-analytics-service/internal/events/adapters/postgres"
	eventsUsecase "chat-analytics-service/internal/events/core/usecase"

	metricsHttp "chat-analytics-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "chat-analytics-service/internal/metrics/adapters/postgres"
	metricsUsecase "chat-analytics-service/internal/metrics/core/usecase"

	"chat-analytics-service/internal/platform/config"
	"chat-analytics-service/internal/platform/httpserver"
	"chat-analytics-service/internal/platform/logger"
	"chat-analytics-service/internal/platform/observability"
	"chat-analytics-service/internal/platform/postgres"

	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "chat-analytics-service/docs"
)

// @title Chat Analytics Service API
// @version 1.0
// @description Conversation, callback, transcript and stats analytics for typebots.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <analytics API key>
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
// @description Bearer <session JWT>
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		zlog.Fatal("Invalid timezone", zap.Error(err))
	}

	// DB connection
	ctx := context.Background()
	sqlDB, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.PoolConfig{
		MaxOpenConns:    cfg.PostgresMaxOpenConns,
		MaxIdleConns:    cfg.PostgresMaxIdleConns,
		ConnMaxLifetime: cfg.PostgresConnMaxLifetime,
	})
	if err != nil {
		zlog.Fatal("Failed to connect to postgres", zap.Error(err))
	}
	defer sqlDB.Close()

	db := postgres.NewSQLDB(sqlDB)
	if cfg.RunMigrations {
		if err := postgres.Migrate(ctx, db, zlog); err != nil {
			zlog.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Repositories
	recordRepository := metricsRepoPg.NewRecordRepository(db)
	eventRepository := eventsRepoPg.NewEventRepository(db)
	membershipRepository := accessRepoPg.NewMembershipRepository(db)

	collector := observability.New()

	// Usecases
	aggregateUC := metricsUsecase.NewAggregateUseCase(recordRepository, loc, collector)
	listUC := metricsUsecase.NewListUseCase(recordRepository)
	lookupUC := metricsUsecase.NewLookupUseCase(recordRepository)

	conversationUC := eventsUsecase.NewConversationUseCase(eventRepository)
	transcriptUC := eventsUsecase.NewTranscriptUseCase(eventRepository)
	statsUC := eventsUsecase.NewStatsUseCase(eventRepository)

	tokens := accessUsecase.NewTokenService(cfg.SessionJWTSecret, cfg.SessionTokenTTL)
	apiKey := accessHttp.RequireAPIKey(accessUsecase.NewBearerGate(cfg.AnalyticsAPIKey), zlog)
	session := accessHttp.RequireSession(accessUsecase.NewSessionGate(tokens, membershipRepository), zlog)

	// HTTP (Fiber) app + handlers
	app := httpserver.New(zlog)
	app.Use(collector.Middleware())

	metricsHandler := metricsHttp.NewMetricsHandler(aggregateUC, listUC, lookupUC, loc, zlog)
	eventsHandler := eventsHttp.NewEventHandler(conversationUC, transcriptUC, statsUC, zlog)

	analytics := app.Group("/analytics/:tenantId")

	analytics.Get("/conversation", apiKey, metricsHandler.GetConversation)
	analytics.Post("/conversation", apiKey, eventsHandler.PostConversation)
	analytics.Get("/callback", apiKey, metricsHandler.GetCallback)
	analytics.Get("/transcript", apiKey, metricsHandler.GetTranscript)
	analytics.Post("/transcript", apiKey, eventsHandler.PostTranscript)

	analytics.Get("/stats", session, metricsHandler.GetStats)
	analytics.Post("/stats", apiKey, eventsHandler.PostStats)
	analytics.Post("/stats/bulk", apiKey, eventsHandler.PostStatsBatch)

	app.Get("/healthz", httpserver.Health(sqlDB, zlog))
	app.Get("/metrics", collector.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			zlog.Error("Fiber stopped", zap.Error(err))
		}
	}()

	zlog.Info("Server started",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("timezone", loc.String()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	zlog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Error("Fiber shutdown error", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
