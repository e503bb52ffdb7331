package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
)

var (
	ErrNotFound = errors.New("cart item not found")
	// ErrStorageUnavailable wraps failures to reach the durable backend.
	ErrStorageUnavailable = errors.New("cart storage unavailable")
)

// Repository persists cart items. Create assigns the identifier; DeleteByID is
// idempotent and reports no error for unknown ids.
type Repository interface {
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	List(ctx context.Context) ([]*domain.CartItem, error)
	DeleteByID(ctx context.Context, id int64) error
}

// UnitOfWork runs fn atomically against a transaction-scoped repository.
// Changes made through repo are committed only when fn returns nil.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error
}
