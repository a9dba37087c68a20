package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Collaborator services
	VehicleIDBaseURL    string        `env:"VEHICLE_ID_BASE_URL" required:"true"`
	PartSourceBaseURL   string        `env:"PART_SOURCE_BASE_URL" required:"true"`
	AssistBaseURL       string        `env:"ASSIST_BASE_URL"`
	CollaboratorTimeout time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"15s"`

	// Outbound WhatsApp transport
	WhatsAppBaseURL    string        `env:"WHATSAPP_BASE_URL" required:"true"`
	WhatsAppAuthToken  string        `env:"WHATSAPP_AUTH_TOKEN"`
	WhatsAppSender     string        `env:"WHATSAPP_SENDER" envDefault:"whatsapp:+14155238886"`
	WhatsAppTimeout    time.Duration `env:"WHATSAPP_TIMEOUT" envDefault:"10s"`
	OwnStockShopLabels []string      `env:"OWN_STOCK_SHOP_LABELS" envSeparator:"," envDefault:"Händler-Lager,Eigener Bestand"`
	PickupLocation     string        `env:"PICKUP_LOCATION" envDefault:""`

	// Webhook processing mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"kafka"`

	// Kafka configuration
	KafkaBrokers          []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaMessagesTopic    string   `env:"KAFKA_MESSAGES_TOPIC" envDefault:"bot.messages"`
	KafkaMessagesGroup    string   `env:"KAFKA_MESSAGES_CONSUMER_GROUP" envDefault:"partsbot-messages"`
	KafkaMessagesDLQTopic string   `env:"KAFKA_MESSAGES_DLQ_TOPIC" envDefault:"bot.messages.dlq"`
	WorkerCount           int      `env:"WORKER_COUNT" envDefault:"3"`

	// Redis (per-conversation locks + idempotency)
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL       time.Duration `env:"CONVERSATION_LOCK_TTL" envDefault:"60s"`
	DedupeTTL     time.Duration `env:"MESSAGE_DEDUPE_TTL" envDefault:"24h"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
