package webhook

import (
	"context"

	"partsbot/internal/worker"
)

// SyncProcessor runs the conversation transition inline with the webhook
// request. Meant for single-instance deployments without a broker.
type SyncProcessor struct {
	worker *worker.Worker
}

func NewSyncProcessor(w *worker.Worker) *SyncProcessor {
	return &SyncProcessor{worker: w}
}

func (p *SyncProcessor) ProcessInbound(ctx context.Context, msg InboundMessage) error {
	return p.worker.ProcessJob(ctx, worker.Job{
		From:       msg.From,
		Text:       msg.Body,
		MediaURLs:  msg.MediaUrls,
		MessageSid: msg.MessageSid,
	})
}
