//go:build integration
// +build integration

package worker_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"partsbot/internal/testinfra"
	"partsbot/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rc *testinfra.RedisContainer

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	rc, err = testinfra.NewRedis(ctx)
	if err != nil {
		panic(err)
	}

	code := m.Run()
	rc.Cleanup(ctx)
	os.Exit(code)
}

func TestRedisLock_Serializes(t *testing.T) {
	ctx := context.Background()
	lock := worker.NewRedisLock(rc.Client, 10*time.Second)

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := lock.Acquire(ctx, "conversation:+4917612345678")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}

func TestRedisLock_AcquireTimesOut(t *testing.T) {
	ctx := context.Background()
	lock := worker.NewRedisLock(rc.Client, 10*time.Second)

	release, err := lock.Acquire(ctx, "conversation:+4917699999999")
	require.NoError(t, err)
	defer release()

	shortCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	_, err = lock.Acquire(shortCtx, "conversation:+4917699999999")
	assert.Error(t, err)
}

func TestRedisDeduper(t *testing.T) {
	ctx := context.Background()
	dedupe := worker.NewRedisDeduper(rc.Client, time.Minute)

	seen, err := dedupe.Seen(ctx, "SM-integration-1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, dedupe.MarkProcessed(ctx, "SM-integration-1"))

	seen, err = dedupe.Seen(ctx, "SM-integration-1")
	require.NoError(t, err)
	assert.True(t, seen)
}
