package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lumina/internal/ai"
	"lumina/internal/app"
	"lumina/internal/config"
	"lumina/internal/payment"
	"lumina/internal/repositories"
	"lumina/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	sessionSweepInterval = 5 * time.Minute
	sessionMaxIdle       = 2 * time.Hour
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Storage ---
	store, err := openStore(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open slot store")
	}

	// --- Payment ---
	provider, err := payment.New(cfg.PaymentConfig(), logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to configure payment provider")
	}

	opts := app.Options{Store: store, Provider: provider}

	// --- RabbitMQ (optional) ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger)
		if err != nil {
			logger.WithError(err).Warn("RabbitMQ unavailable, order events disabled")
		} else {
			defer mqClient.Close()
			opts.Publisher = mqClient
			go func() {
				err := mqClient.ConsumeOrderEvents(ctx, func(event rabbitmq.OrderCompletedEvent) error {
					logger.WithFields(logrus.Fields{
						"order_id": event.OrderID,
						"email":    event.CustomerEmail,
						"total":    event.Total.String(),
					}).Info("Fulfilling completed order")
					return nil
				})
				if err != nil {
					logger.WithError(err).Error("Order event consumer stopped")
				}
			}()
		}
	}

	// --- Assistant (optional) ---
	if cfg.GeminiAPIKey != "" {
		assistant, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.WithError(err).Warn("Assistant unavailable, semantic search and chat disabled")
		} else {
			opts.Searcher = assistant
			opts.Chatter = assistant
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, semantic search and chat disabled")
	}

	application, err := app.New(ctx, cfg, logger, opts)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build application")
	}
	go application.SweepSessions(ctx, sessionSweepInterval, sessionMaxIdle)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.WithField("addr", cfg.AppPort).Info("Starting server")
		if err := application.Fiber.Listen(cfg.AppPort); err != nil {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-quit
	logger.Info("Shutting down server")
	cancel()
	if err := application.Fiber.Shutdown(); err != nil {
		logger.WithError(err).Error("Error during Fiber shutdown")
	}
	logger.Info("Server gracefully stopped")
}

func openStore(cfg *config.Config) (repositories.SlotStore, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case config.DriverMemory:
		return repositories.NewMemorySlotStore(), nil
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, err
	}
	return repositories.NewGORMSlotStore(db)
}
