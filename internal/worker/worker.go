// Package worker processes inbound message jobs: one job is one customer
// message, driven through the state machine under a per-conversation
// lock, persisted with an optimistic version check, then answered.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/messaging"
	"partsbot/pkg/metrics"
)

const lockKeyPrefix = "conversation:"

// Job is one inbound customer message pulled off the queue.
type Job struct {
	From       string   `json:"from"`
	Text       string   `json:"text"`
	MediaURLs  []string `json:"media_urls,omitempty"`
	MessageSid string   `json:"message_sid,omitempty"`
}

// Transport delivers replies back to the customer channel.
type Transport interface {
	SendMessage(ctx context.Context, to, text string) error
	// SendTyping is best effort and must never fail the job.
	SendTyping(ctx context.Context, to string)
}

type Worker struct {
	repo      conversation.Repo
	machine   *conversation.Machine
	transport Transport
	locks     Lock
	dedupe    Deduper
}

func New(repo conversation.Repo, machine *conversation.Machine, transport Transport, locks Lock, dedupe Deduper) *Worker {
	return &Worker{
		repo:      repo,
		machine:   machine,
		transport: transport,
		locks:     locks,
		dedupe:    dedupe,
	}
}

// ProcessJob runs one job end to end. Returned errors are transient from
// the queue's point of view and safe to retry; jobs that must not be
// retried wrap messaging.ErrPermanent.
func (w *Worker) ProcessJob(ctx context.Context, job Job) error {
	if job.From == "" {
		return fmt.Errorf("job without sender: %w", messaging.ErrPermanent)
	}

	if job.MessageSid != "" {
		seen, err := w.dedupe.Seen(ctx, job.MessageSid)
		if err != nil {
			return fmt.Errorf("dedupe check: %w", err)
		}
		if seen {
			metrics.DuplicateJobsSkipped.Inc()
			slog.InfoContext(ctx, "duplicate job skipped", "message_sid", job.MessageSid)
			return nil
		}
	}

	w.transport.SendTyping(ctx, job.From)

	release, err := w.locks.Acquire(ctx, lockKeyPrefix+job.From)
	if err != nil {
		return fmt.Errorf("acquire conversation lock: %w", err)
	}
	defer release()

	ord, err := w.loadOrCreate(ctx, job.From)
	if err != nil {
		return err
	}
	expectedVersion := ord.Version

	res := w.machine.Transition(ctx, ord, conversation.Message{
		Text:      job.Text,
		MediaURLs: job.MediaURLs,
	})
	res.Order.LastActivityAt = time.Now().UTC()

	if err := w.repo.Update(ctx, res.Order, expectedVersion); err != nil {
		return fmt.Errorf("persist conversation: %w", err)
	}

	// The transition is committed, so the id is marked before the sends:
	// a retry of the same message must never run the transition a second
	// time against the already advanced state. If a send below fails the
	// retry is acked silently instead of replaying the dialog step.
	if job.MessageSid != "" {
		if err := w.dedupe.MarkProcessed(ctx, job.MessageSid); err != nil {
			slog.WarnContext(ctx, "failed to mark job processed", "message_sid", job.MessageSid, "error", err)
		}
	}

	for _, reply := range res.Replies {
		if err := w.transport.SendMessage(ctx, job.From, reply); err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
	return nil
}

func (w *Worker) loadOrCreate(ctx context.Context, phone string) (conversation.Order, error) {
	ord, err := w.repo.GetByPhone(ctx, phone)
	if err == nil {
		return ord, nil
	}
	if !errors.Is(err, conversation.ErrNotFound) {
		return conversation.Order{}, fmt.Errorf("load conversation: %w", err)
	}

	now := time.Now().UTC()
	ord = conversation.Order{
		ID:             uuid.NewString(),
		Phone:          phone,
		Status:         conversation.StatusCollectVehicle,
		LastActivityAt: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := w.repo.Create(ctx, ord); err != nil {
		if errors.Is(err, conversation.ErrAlreadyExists) {
			// lost a create race with another instance, use theirs
			return w.repo.GetByPhone(ctx, phone)
		}
		return conversation.Order{}, fmt.Errorf("create conversation: %w", err)
	}
	return ord, nil
}
