package worker

import (
	"context"
	"sync"
	"time"
)

// Deduper short-circuits webhook retries: the provider message id is
// recorded after a job fully succeeds, and seen ids are acked silently.
type Deduper interface {
	Seen(ctx context.Context, id string) (bool, error)
	MarkProcessed(ctx context.Context, id string) error
}

// memoryDeduper keeps processed ids in a bounded in-process map. Entries
// expire after the retention window; when the map overflows, the oldest
// expired entries are pruned first.
type memoryDeduper struct {
	mu        sync.Mutex
	seen      map[string]time.Time
	retention time.Duration
	maxSize   int
	now       func() time.Time
}

func NewMemoryDeduper(retention time.Duration, maxSize int) Deduper {
	return &memoryDeduper{
		seen:      make(map[string]time.Time),
		retention: retention,
		maxSize:   maxSize,
		now:       time.Now,
	}
}

func (d *memoryDeduper) Seen(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	at, ok := d.seen[id]
	if !ok {
		return false, nil
	}
	if d.now().Sub(at) > d.retention {
		delete(d.seen, id)
		return false, nil
	}
	return true, nil
}

func (d *memoryDeduper) MarkProcessed(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.seen) >= d.maxSize {
		d.prune()
	}
	d.seen[id] = d.now()
	return nil
}

// prune drops expired entries, and if nothing expired, evicts the oldest
// entry to stay bounded. Callers hold d.mu.
func (d *memoryDeduper) prune() {
	now := d.now()
	var oldestID string
	var oldestAt time.Time
	for id, at := range d.seen {
		if now.Sub(at) > d.retention {
			delete(d.seen, id)
			continue
		}
		if oldestID == "" || at.Before(oldestAt) {
			oldestID, oldestAt = id, at
		}
	}
	if len(d.seen) >= d.maxSize && oldestID != "" {
		delete(d.seen, oldestID)
	}
}
