package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partsbot/config"
	extkafka "partsbot/internal/external/kafka"
	"partsbot/internal/i18n"
	"partsbot/internal/ingest/handlers"
	"partsbot/internal/ingest/webhook"
	"partsbot/pkg/health"
	"partsbot/pkg/logger"
	"partsbot/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Run bootstraps the standalone ingest service: it accepts provider
// webhooks and enqueues them for the bot service's worker pool. Only
// useful in kafka mode; single-instance deployments run the bot binary
// with WEBHOOK_MODE=sync instead.
func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	if err := i18n.Validate(); err != nil {
		slog.Error("ingest - Run - i18n.Validate", "error", err)
		os.Exit(1)
	}

	if cfg.WebhookMode != "kafka" {
		slog.Error("ingest - Run - unsupported webhook mode", "mode", cfg.WebhookMode)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("initializing Kafka publisher", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaMessagesTopic)
	publisher := extkafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaMessagesTopic)
	defer func() { _ = publisher.Close() }()

	processor := webhook.NewQueueProcessor(publisher)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.CorrelationMiddleware())
	engine.Use(logger.RequestLogger())
	engine.Use(metrics.GinMiddleware())

	registry := health.NewRegistry(health.NewKafkaChecker(cfg.KafkaBrokers))
	router := NewRouter(handlers.NewInboundHandler(processor), registry)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("ingest service started", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down ingest service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("ingest service stopped")
}
