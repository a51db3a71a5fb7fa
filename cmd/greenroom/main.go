// Greenroom experiment server — serves the participant HTTP API, drives
// session page graphs, matchmaking, multi-party chat and agent runs.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/greenroomlab/greenroom/pkg/agent"
	"github.com/greenroomlab/greenroom/pkg/api"
	"github.com/greenroomlab/greenroom/pkg/assign"
	"github.com/greenroomlab/greenroom/pkg/cleanup"
	"github.com/greenroomlab/greenroom/pkg/config"
	"github.com/greenroomlab/greenroom/pkg/database"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/llm"
	"github.com/greenroomlab/greenroom/pkg/matchmaking"
	"github.com/greenroomlab/greenroom/pkg/services"
	"github.com/greenroomlab/greenroom/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment")
	}

	cfg := config.Load()
	setupLogging(cfg)

	slog.Info("Starting greenroom",
		"version", version.Full(),
		"port", cfg.Port,
		"env", cfg.AppEnv)

	ctx := context.Background()

	// Database: connect and run migrations.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Event bus: heartbeats start immediately; resolver and disconnect
	// hook are wired once their owners exist.
	bus := events.NewBus()
	bus.Start()

	// Domain services.
	assigner := assign.NewAssigner()
	configService := services.NewConfigService(dbClient.Client)
	idempotencyService := services.NewIdempotencyService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client, bus, configService, idempotencyService, assigner, cfg.ForceAuth)
	chatService := services.NewChatService(dbClient.Client, bus, sessionService)
	groupService := services.NewGroupService(dbClient.Client)
	bus.SetGroupResolver(sessionService)
	slog.Info("Services initialized")

	// Matchmaking scheduler; evicts waiting sessions when their last
	// SSE stream disconnects.
	scheduler := matchmaking.NewScheduler(sessionService, groupService, assigner, bus)
	bus.SetDisconnectHandler(scheduler.HandleDisconnect)

	// LLM client and agent runner.
	llmClient := llm.NewClient(llm.Config{
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
	})
	runner := agent.NewRunner(sessionService, chatService, bus, llmClient)
	chatService.SetAgentTrigger(runner)
	slog.Info("Agent runner initialized")

	// Idempotency retention loop.
	cleanupService := cleanup.NewService(idempotencyService, cfg.IdempotencyTTL, cfg.CleanupInterval)
	cleanupService.Start(ctx)

	// HTTP server.
	server := api.NewServer(dbClient, sessionService, chatService, configService, scheduler, bus)
	router := server.Router(cfg.CORSOrigins)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := router.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: close the listener first so no new work
	// arrives, then drain the async components, then the bus.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cleanupService.Stop()
	runner.Stop()
	scheduler.Stop()
	bus.Stop()

	slog.Info("Shutdown complete")
}

// setupLogging configures the default slog logger: JSON in production,
// text for local development.
func setupLogging(cfg config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
