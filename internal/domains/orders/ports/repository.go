package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrIDExhausted is returned when every drawn identifier collided with a stored order.
	ErrIDExhausted = errors.New("could not allocate a unique order id")
)

// Repository keeps orders for the lifetime of the process. Create ignores any
// identifier on the input and assigns a fresh one. There is no update or delete.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
