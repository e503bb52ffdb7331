package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict indicates the same key was used with a different payload or item.
var ErrIdempotencyConflict = errors.New("idempotency conflict")

// IdempotencyRecord links a client-supplied key to the cart item it created.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	CartItemID  int64
	CreatedAt   time.Time
}

// IdempotencyStore persists idempotency keys so add-to-cart retries can be replayed.
type IdempotencyStore interface {
	// Get returns the stored record for the key, or nil when unknown.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Save persists the record. When the key already exists with the same hash and item the
	// stored record is returned; otherwise ErrIdempotencyConflict is returned with it.
	Save(ctx context.Context, record IdempotencyRecord) (*IdempotencyRecord, error)
}

// IdempotencyPurger drops keys recorded before a cutoff so retries past the retention window create new items.
type IdempotencyPurger interface {
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}
