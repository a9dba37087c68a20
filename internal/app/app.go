package app

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partsbot/config"
	"partsbot/internal/domain/conversation"
	"partsbot/internal/domain/offer"
	"partsbot/internal/external/assist"
	"partsbot/internal/external/partsource"
	"partsbot/internal/external/vehicleid"
	"partsbot/internal/external/whatsapp"
	"partsbot/internal/i18n"
	"partsbot/internal/ingest"
	"partsbot/internal/ingest/handlers"
	"partsbot/internal/ingest/webhook"
	order_repo "partsbot/internal/repo/order"
	"partsbot/internal/worker"
	"partsbot/pkg/health"
	"partsbot/pkg/logger"
	"partsbot/pkg/metrics"
	"partsbot/pkg/postgres"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	extkafka "partsbot/internal/external/kafka"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const memoryDedupeMaxSize = 10_000

// Run bootstraps and runs the bot service: webhook ingestion, the message
// worker pool and the conversation state machine behind it.
func Run(cfg config.Config) {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	if err := i18n.Validate(); err != nil {
		slog.Error("app - Run - i18n.Validate", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		slog.Error("app - Run - postgres.New", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		slog.Error("app - Run - ApplyMigrations", "error", err)
		os.Exit(1)
	}

	orderRepo := order_repo.NewPgOrderRepo(pool)

	// Collaborators
	collabHTTP := &http.Client{Timeout: cfg.CollaboratorTimeout}
	vehicles := vehicleid.New(cfg.VehicleIDBaseURL, collabHTTP)
	offers := partsource.New(cfg.PartSourceBaseURL, collabHTTP)

	transport := whatsapp.New(whatsapp.Config{
		BaseURL:   cfg.WhatsAppBaseURL,
		AuthToken: cfg.WhatsAppAuthToken,
		Sender:    cfg.WhatsAppSender,
		Timeout:   cfg.WhatsAppTimeout,
	}, nil)

	ranker := offer.NewRanker(cfg.OwnStockShopLabels)

	var opts []conversation.Option
	if cfg.AssistBaseURL != "" {
		opts = append(opts, conversation.WithAssist(assist.New(cfg.AssistBaseURL, collabHTTP)))
	}
	machine := conversation.NewMachine(vehicles, offers, ranker, cfg.PickupLocation, opts...)

	// Locks and idempotency: Redis when configured, in-process otherwise.
	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	var locks worker.Lock
	var dedupe worker.Deduper
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()
		locks = worker.NewRedisLock(rdb, cfg.LockTTL)
		dedupe = worker.NewRedisDeduper(rdb, cfg.DedupeTTL)
		checkers = append(checkers, health.NewRedisChecker(rdb))
	} else {
		slog.Warn("REDIS_ADDR not set, using in-process locks and dedupe")
		locks = worker.NewKeyedMutex()
		dedupe = worker.NewMemoryDeduper(cfg.DedupeTTL, memoryDedupeMaxSize)
	}

	w := worker.New(orderRepo, machine, transport, locks, dedupe)

	// Webhook processing: enqueue to Kafka or run the transition inline.
	var processor webhook.Processor
	if cfg.WebhookMode == "kafka" {
		slog.Info("webhook mode: kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaMessagesTopic)
		publisher := extkafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaMessagesTopic)
		defer func() { _ = publisher.Close() }()
		processor = webhook.NewQueueProcessor(publisher)
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))

		StartWorkers(ctx, cfg, w)
	} else {
		slog.Info("webhook mode: sync")
		processor = webhook.NewSyncProcessor(w)
	}

	engine := NewGinEngine()
	router := ingest.NewRouter(handlers.NewInboundHandler(processor), health.NewRegistry(checkers...))
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	go func() {
		slog.Info("bot service started", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down bot service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("bot service stopped")
}

// NewGinEngine builds the gin engine with recovery, correlation id
// propagation, request logging and HTTP metrics.
func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.CorrelationMiddleware())
	engine.Use(logger.RequestLogger())
	engine.Use(metrics.GinMiddleware())
	return engine
}
