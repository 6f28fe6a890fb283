// QASum - two-party dialogue task coordinator bot
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NapierNLP/sgge/internal/api"
	"github.com/NapierNLP/sgge/internal/config"
	"github.com/NapierNLP/sgge/internal/items"
	"github.com/NapierNLP/sgge/internal/messages"
	"github.com/NapierNLP/sgge/internal/session"
	"github.com/NapierNLP/sgge/internal/slurk"
	"github.com/NapierNLP/sgge/internal/store"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	catalog, err := messages.ByLanguage(cfg.Language)
	if err != nil {
		slog.Error("Failed to load message catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting bot",
		"slurk_host", cfg.SlurkHost,
		"task_id", cfg.TaskID,
		"language", cfg.Language,
		"ops_port", cfg.Port)

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize audit store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close audit store", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Audit store health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Audit store connected")

	sequencer, err := items.Load(cfg.DataPath, cfg.ItemsPerRoom, cfg.Shuffle, cfg.Seed)
	if err != nil {
		slog.Error("Failed to load exhibit data", "error", err)
		os.Exit(1)
	}
	slog.Info("Exhibit data loaded", "path", cfg.DataPath)

	client := slurk.NewClient(cfg.SlurkHost, cfg.SlurkPort, cfg.BotToken, cfg.BotUserID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	coordinator := session.NewCoordinator(ctx, session.Config{
		TaskID:         cfg.TaskID,
		WaitingRoomID:  cfg.WaitingRoomID,
		BotUserID:      cfg.BotUserID,
		ReadyWait:      cfg.ReadyWait,
		RoundLength:    cfg.RoundLength,
		AgreementWait:  cfg.AgreementWait,
		SilenceWait:    cfg.SilenceWait,
		WaitingTimeout: cfg.WaitingTimeout,
		TeardownDelay:  cfg.TeardownDelay,
		MinMessages:    cfg.MinMessages,
		FuzzyThreshold: cfg.FuzzyThreshold,
	}, catalog, client, client, client, client, repo, sequencer)

	// Setup the ops router.
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	opsHandler := api.NewHandler(repo, coordinator.Registry())
	opsHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Ops server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Run the event stream, reconnecting with a fixed backoff until
	// shutdown.
	go func() {
		for {
			err := client.Listen(ctx, coordinator)
			if ctx.Err() != nil {
				return
			}
			slog.Error("Event stream disconnected, reconnecting", "error", err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Ops server forced to shutdown", "error", err)
	}

	slog.Info("Shutdown complete")
}
