package cart

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

const (
	// PersistCartItemActivityName stores a new cart item through the cart service.
	PersistCartItemActivityName = "cart.activities.PersistCartItem"

	// Application error types surfaced to callers of the workflow.
	ErrTypeInvalidInput        = "InvalidInput"
	ErrTypeIdempotencyConflict = "IdempotencyConflict"
	ErrTypeStorageUnavailable  = "StorageUnavailable"
)

// Activities groups activities that operate on the cart.
type Activities struct {
	service cartports.Service
}

func NewActivities(service cartports.Service) *Activities {
	return &Activities{service: service}
}

// PersistCartItem adds the item to the cart. Validation and idempotency failures are not retried.
func (a *Activities) PersistCartItem(ctx context.Context, input cartports.AddCartItemInput) (*cartdomain.CartItem, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("cart persist activity not initialized", "productId", input.ProductID)
		return nil, errors.New("cart persist activity not initialized")
	}
	logger.Info("PersistCartItem activity started", "productId", input.ProductID)
	item, err := a.service.AddToCart(ctx, input)
	if err != nil {
		logger.Error("PersistCartItem activity failed", "productId", input.ProductID, "error", err)
		return nil, classify(err)
	}
	logger.Info("PersistCartItem activity completed", "cartItemId", item.ID)
	return item, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, cartapp.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, err)
	case errors.Is(err, cartports.ErrIdempotencyConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeIdempotencyConflict, err)
	case errors.Is(err, cartports.ErrStorageUnavailable):
		return temporal.NewApplicationErrorWithCause(err.Error(), ErrTypeStorageUnavailable, err)
	default:
		return err
	}
}
