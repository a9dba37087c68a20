package worker

import (
	"context"
	"sync"
)

// Lock serializes job processing per conversation. Acquire blocks until
// the key is free or ctx is done; the returned func releases the lock.
type Lock interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// KeyedMutex is an in-process Lock for single-instance deployments and
// tests. Multi-instance deployments use RedisLock.
type KeyedMutex struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{held: make(map[string]chan struct{})}
}

func (k *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	for {
		k.mu.Lock()
		waitCh, taken := k.held[key]
		if !taken {
			ch := make(chan struct{})
			k.held[key] = ch
			k.mu.Unlock()

			var once sync.Once
			release := func() {
				once.Do(func() {
					k.mu.Lock()
					delete(k.held, key)
					k.mu.Unlock()
					close(ch)
				})
			}
			return release, nil
		}
		k.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-waitCh:
			// holder released, try again
		}
	}
}
