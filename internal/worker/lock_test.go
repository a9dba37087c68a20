package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := NewKeyedMutex()
	ctx := context.Background()

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locks.Acquire(ctx, "conversation:+49151")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	locks := NewKeyedMutex()
	ctx := context.Background()

	releaseA, err := locks.Acquire(ctx, "conversation:a")
	require.NoError(t, err)
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB, err := locks.Acquire(ctx, "conversation:b")
		assert.NoError(t, err)
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent key blocked by unrelated holder")
	}
}

func TestKeyedMutex_AcquireRespectsContext(t *testing.T) {
	locks := NewKeyedMutex()

	release, err := locks.Acquire(context.Background(), "conversation:a")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = locks.Acquire(ctx, "conversation:a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedMutex_ReleaseIdempotent(t *testing.T) {
	locks := NewKeyedMutex()

	release, err := locks.Acquire(context.Background(), "conversation:a")
	require.NoError(t, err)
	release()
	release() // second call must be a no-op

	release2, err := locks.Acquire(context.Background(), "conversation:a")
	require.NoError(t, err)
	release2()
}
