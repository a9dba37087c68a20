package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"partsbot/internal/messaging"
	"partsbot/pkg/correlation"
	"partsbot/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Consumer implements messaging.Worker using Kafka. Offsets are committed
// only after the handler succeeds, so a crash mid-processing redelivers
// the message; handlers are idempotent via the worker's dedupe store.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &Consumer{reader: reader}
}

// Start begins consuming messages and passes them to the handler.
// Blocks until context is cancelled or an unrecoverable error occurs.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	cfg := c.reader.Config()
	slog.Info("consumer started", "topic", cfg.Topic, "group_id", cfg.GroupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("consumer stopped", "topic", cfg.Topic)
				return nil
			}
			slog.Error("failed to fetch message", "topic", cfg.Topic, "error", err)
			return err
		}

		msgCtx := contextWithCorrelation(ctx, msg)

		start := time.Now()
		handlerErr := handler(msgCtx, msg.Key, msg.Value)
		status := "success"
		if handlerErr != nil {
			status = "error"
		}
		metrics.KafkaProcessingDuration.WithLabelValues(cfg.Topic, cfg.GroupID, status).Observe(time.Since(start).Seconds())
		metrics.KafkaMessagesProcessed.WithLabelValues(cfg.Topic, cfg.GroupID, status).Inc()

		if handlerErr != nil {
			slog.ErrorContext(msgCtx, "handler error, message not committed",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset,
				"key", string(msg.Key), "error", handlerErr)
			// not committed, redelivered on restart
			continue
		}

		// Commit with a fresh timeout so shutdown cancellation cannot
		// lose an already processed message.
		commitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = c.reader.CommitMessages(commitCtx, msg)
		cancel()
		if err != nil {
			slog.Error("failed to commit message",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "error", err)
			return err
		}
	}
}

func contextWithCorrelation(ctx context.Context, msg kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == correlation.KafkaHeaderName && len(h.Value) > 0 {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	return correlation.WithID(ctx, correlation.NewID())
}

// Close closes the Kafka reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
