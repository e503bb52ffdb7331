package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	cartactivities "github.com/Apurer/go-gin-shop-services/internal/durable/temporal/activities/cart"
)

// RunCartItemPersistenceSequence executes the activities that store a new cart item.
func RunCartItemPersistenceSequence(ctx workflow.Context, input cartports.AddCartItemInput) (*cartdomain.CartItem, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("cart item persistence sequence started", "productId", input.ProductID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var item cartdomain.CartItem
	err := workflow.ExecuteActivity(ctx, cartactivities.PersistCartItemActivityName, input).Get(ctx, &item)
	if err != nil {
		logger.Error("cart item persistence sequence failed", "productId", input.ProductID, "error", err)
		return nil, err
	}
	logger.Info("cart item persistence sequence completed", "cartItemId", item.ID)
	return &item, nil
}
