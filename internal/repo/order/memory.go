package order_repo

import (
	"context"
	"sync"
	"time"

	"partsbot/internal/domain/conversation"
)

// MemoryRepo is a map-backed conversation.Repo with the same optimistic
// versioning semantics as the Postgres implementation. Used in tests and
// when running without a database.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]conversation.Order
	byPhone map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]conversation.Order),
		byPhone: make(map[string]string),
	}
}

func (m *MemoryRepo) GetByPhone(_ context.Context, phone string) (conversation.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byPhone[phone]
	if !ok {
		return conversation.Order{}, conversation.ErrNotFound
	}
	return m.byID[id], nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (conversation.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ord, ok := m.byID[id]
	if !ok {
		return conversation.Order{}, conversation.ErrNotFound
	}
	return ord, nil
}

func (m *MemoryRepo) Create(_ context.Context, ord conversation.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byPhone[ord.Phone]; exists {
		return conversation.ErrAlreadyExists
	}
	if _, exists := m.byID[ord.ID]; exists {
		return conversation.ErrAlreadyExists
	}
	m.byID[ord.ID] = ord
	m.byPhone[ord.Phone] = ord.ID
	return nil
}

func (m *MemoryRepo) Update(_ context.Context, ord conversation.Order, expectedVersion int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.byID[ord.ID]
	if !ok {
		return conversation.ErrNotFound
	}
	if current.Version != expectedVersion {
		return conversation.ErrVersionConflict
	}
	ord.Version = expectedVersion + 1
	ord.UpdatedAt = time.Now().UTC()
	m.byID[ord.ID] = ord
	m.byPhone[ord.Phone] = ord.ID
	return nil
}
