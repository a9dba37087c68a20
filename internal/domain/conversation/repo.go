package conversation

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("conversation not found")
	ErrAlreadyExists = errors.New("conversation already exists")
	// ErrVersionConflict reports a lost optimistic-lock race: the record
	// changed between load and update. The caller reloads and retries.
	ErrVersionConflict = errors.New("conversation version conflict")
)

// Repo persists conversation orders. One row per phone number; the
// record carries the whole dialog state and is updated with an
// optimistic version check.
type Repo interface {
	GetByPhone(ctx context.Context, phone string) (Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	Create(ctx context.Context, ord Order) error
	// Update persists ord only if the stored version still equals
	// expectedVersion, bumping the version by one.
	Update(ctx context.Context, ord Order, expectedVersion int) error
}
