package app

import (
	"context"
	"log/slog"

	"partsbot/config"
	"partsbot/internal/controller/message"
	extkafka "partsbot/internal/external/kafka"
	"partsbot/internal/messaging"
	"partsbot/internal/worker"
)

// StartWorkers starts the Kafka consumer pool for inbound messages. Each
// consumer shares the group id so partitions, and with them conversations,
// are spread across the pool. Stops when ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.Config, w *worker.Worker) {
	controller := message.NewMessageController(w)

	dlq := extkafka.NewDLQPublisher(cfg.KafkaBrokers, cfg.KafkaMessagesDLQTopic)

	handler := messaging.WithDLQ(
		messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
		dlq,
	)

	consumers := make([]messaging.Worker, 0, cfg.WorkerCount)
	for i := 0; i < cfg.WorkerCount; i++ {
		consumers = append(consumers, extkafka.NewConsumer(
			cfg.KafkaBrokers,
			cfg.KafkaMessagesTopic,
			cfg.KafkaMessagesGroup,
		))
	}

	runner := messaging.NewRunner(consumers, handler)

	go func() {
		slog.Info("starting message consumers",
			"topic", cfg.KafkaMessagesTopic,
			"group", cfg.KafkaMessagesGroup,
			"count", cfg.WorkerCount)
		if err := runner.Start(ctx); err != nil {
			slog.Error("message runner failed", "error", err)
		}
	}()
}
