package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tokoadmin/internal/app"
	"tokoadmin/internal/config"
	"tokoadmin/internal/database"
	"tokoadmin/internal/logging"
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"
	"tokoadmin/pkg/rabbitmq"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Catalog events (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient

		// Storefronts react to these by pulling fresh lists; here they are
		// only recorded.
		err = mqClient.ConsumeCatalogEvents(ctx, func(event models.ChangeEvent) error {
			zlog.Info().
				Str("store_id", event.StoreID).
				Str("kind", string(event.Kind)).
				Str("id", event.EntityID).
				Str("action", string(event.Action)).
				Msg("catalog changed")
			return nil
		})
		if err != nil {
			zlog.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
	} else {
		zlog.Info().Msg("RABBITMQ_URL not set, catalog events disabled")
	}

	application := app.NewApp(cfg, db, events)

	// --- Start HTTP Server ---
	zlog.Info().Str("port", cfg.AppPort).Msg("starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Fiber.Listen(cfg.AppPort); err != nil {
			zlog.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	zlog.Info().Msg("shutting down server")
	cancel()

	if err := application.Fiber.Shutdown(); err != nil {
		zlog.Error().Err(err).Msg("error during Fiber shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	zlog.Info().Msg("server gracefully stopped")
}
