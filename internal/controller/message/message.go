package message

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"partsbot/internal/messaging"
	"partsbot/internal/worker"
)

// MessageController consumes inbound message envelopes from the queue and
// hands them to the conversation worker.
type MessageController struct {
	worker *worker.Worker
}

func NewMessageController(w *worker.Worker) *MessageController {
	return &MessageController{worker: w}
}

// HandleMessage implements messaging.MessageHandler. Malformed envelopes and
// payloads are permanent failures so the retry middleware routes them to the
// DLQ instead of spinning.
func (c *MessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %v: %w", err, messaging.ErrPermanent)
	}

	var job worker.Job
	if err := json.Unmarshal(env.Payload, &job); err != nil {
		return fmt.Errorf("unmarshal job payload for event %s: %v: %w", env.EventID, err, messaging.ErrPermanent)
	}

	slog.InfoContext(ctx, "processing inbound message",
		"event_id", env.EventID,
		"from", job.From,
		"message_sid", job.MessageSid)

	if err := c.worker.ProcessJob(ctx, job); err != nil {
		return fmt.Errorf("process job for %s: %w", job.From, err)
	}

	return nil
}
