package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adboard/internal/adapter/http"
	"adboard/internal/adapter/mongodb"
	"adboard/internal/adapter/usecase"
	"adboard/internal/config"
	"adboard/internal/db"
)

// main is the entry point of the adboard service. It loads configuration,
// connects to MongoDB, ensures the required indexes, optionally seeds demo
// tenants, wires the repositories and usecases, then starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The application cannot serve a single page without the database, so
	// a failed connection or index setup is fatal.
	database, err := db.NewMongoDatabase(ctx, cfg.Mongo)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		_ = database.Client().Disconnect(context.Background())
	}()

	if err = db.EnsureIndexes(ctx, database); err != nil {
		logger.Error("index setup error", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Mongo.SeedDemo {
		stats, err := db.Seed(ctx, database, 200)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded",
				slog.Int("businesses", stats.Businesses),
				slog.Int("ads", stats.Ads),
				slog.Int("campaigns", stats.Campaigns),
				slog.Int("registrations", stats.Registrations))
		}
	}

	businesses := mongodb.NewBusinessRepository(database)
	campaigns := mongodb.NewCampaignRepository(database)
	ads := mongodb.NewAdRepository(database)
	registrations := mongodb.NewRegistrationRepository(database)
	analytics := mongodb.NewAnalyticsRepository(database)

	handler := httpadapter.NewHandler(
		usecase.NewCampaignUseCase(campaigns, ads),
		usecase.NewAdUseCase(ads, campaigns),
		usecase.NewRegistrationUseCase(registrations),
		usecase.NewAnalyticsUseCase(analytics, campaigns),
		businesses,
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// ctx is already cancelled by the signal; the drain needs its own deadline
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
