package webhook

import (
	"context"
	"fmt"

	"partsbot/internal/messaging"
	"partsbot/internal/worker"
)

const inboundMessageType = "inbound_message"

// QueueProcessor enqueues inbound messages for asynchronous processing.
// The envelope key is the sender's phone number so the broker keeps
// per-conversation ordering.
type QueueProcessor struct {
	publisher messaging.Publisher
}

func NewQueueProcessor(publisher messaging.Publisher) *QueueProcessor {
	return &QueueProcessor{publisher: publisher}
}

func (p *QueueProcessor) ProcessInbound(ctx context.Context, msg InboundMessage) error {
	job := worker.Job{
		From:       msg.From,
		Text:       msg.Body,
		MediaURLs:  msg.MediaUrls,
		MessageSid: msg.MessageSid,
	}

	env, err := messaging.NewEnvelope(msg.From, inboundMessageType, job)
	if err != nil {
		return fmt.Errorf("build envelope: %w", err)
	}

	if err := p.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish inbound message: %w", err)
	}

	return nil
}
