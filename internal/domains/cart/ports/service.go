package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
)

// AddCartItemInput carries the caller-supplied fields of a new cart item.
type AddCartItemInput struct {
	ProductID      string
	Name           string
	Price          decimal.Decimal
	IdempotencyKey string
}

// Service exposes cart use cases to adapters.
type Service interface {
	AddToCart(ctx context.Context, input AddCartItemInput) (*domain.CartItem, error)
	ListCart(ctx context.Context) ([]*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, id int64) error
}
