package ports

import (
	"context"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
)

// WorkflowOrchestrator runs add-to-cart either durably or inline.
type WorkflowOrchestrator interface {
	AddToCart(ctx context.Context, input AddCartItemInput) (*domain.CartItem, error)
}
