package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	handler := WithRetry(func(ctx context.Context, key, value []byte) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastRetry(3))

	err := handler(context.Background(), []byte("k"), []byte("v"))
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ExhaustionWrapsLastError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	handler := WithRetry(func(ctx context.Context, key, value []byte) error {
		calls++
		return boom
	}, fastRetry(3))

	err := handler(context.Background(), []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_PermanentFailureNotRetried(t *testing.T) {
	calls := 0
	handler := WithRetry(func(ctx context.Context, key, value []byte) error {
		calls++
		return fmt.Errorf("bad payload: %w", ErrPermanent)
	}, fastRetry(5))

	err := handler(context.Background(), []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, ErrPermanent)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := WithRetry(func(ctx context.Context, key, value []byte) error {
		cancel()
		return errors.New("transient")
	}, RetryConfig{MaxAttempts: 3, InitialBackoff: time.Minute, MaxBackoff: time.Minute})

	err := handler(ctx, []byte("k"), []byte("v"))
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeDLQ struct {
	published [][]byte
	errs      []error
}

func (f *fakeDLQ) PublishToDLQ(_ context.Context, _, value []byte, err error) error {
	f.published = append(f.published, value)
	f.errs = append(f.errs, err)
	return nil
}

func TestWithDLQ_RoutesFailureAndCommits(t *testing.T) {
	dlq := &fakeDLQ{}
	boom := errors.New("handler failed")
	handler := WithDLQ(func(ctx context.Context, key, value []byte) error {
		return boom
	}, dlq)

	err := handler(context.Background(), []byte("k"), []byte("payload"))
	// nil so the consumer commits; the message lives in the DLQ now
	require.NoError(t, err)
	require.Len(t, dlq.published, 1)
	assert.Equal(t, []byte("payload"), dlq.published[0])
	assert.ErrorIs(t, dlq.errs[0], boom)
}

func TestWithDLQ_SuccessBypassesDLQ(t *testing.T) {
	dlq := &fakeDLQ{}
	handler := WithDLQ(func(ctx context.Context, key, value []byte) error {
		return nil
	}, dlq)

	require.NoError(t, handler(context.Background(), []byte("k"), []byte("v")))
	assert.Empty(t, dlq.published)
}

func TestNewEnvelope(t *testing.T) {
	env, err := NewEnvelope("+4915112345678", "inbound_message", map[string]string{"text": "hallo"})
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "+4915112345678", env.Key)
	assert.Equal(t, "inbound_message", env.Type)
	assert.JSONEq(t, `{"text":"hallo"}`, string(env.Payload))
	assert.False(t, env.Timestamp.IsZero())
}
