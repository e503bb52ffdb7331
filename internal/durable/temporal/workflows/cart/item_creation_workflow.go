package cart

import (
	"go.temporal.io/sdk/workflow"

	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	"github.com/Apurer/go-gin-shop-services/internal/durable/temporal/sequences"
)

const (
	// ItemCreationWorkflowName is the public identifier for registering the workflow.
	ItemCreationWorkflowName = "cart.workflows.ItemCreation"
	// ItemCreationTaskQueue is the queue consumed by the cart worker.
	ItemCreationTaskQueue = "CART_ITEM_CREATION"
)

// ItemCreationWorkflowInput carries an add-to-cart command and the caller's trace id.
type ItemCreationWorkflowInput struct {
	Command cartports.AddCartItemInput
	TraceID string
}

// RegisterOptions registers ItemCreationWorkflow under its public name.
func RegisterOptions() workflow.RegisterOptions {
	return workflow.RegisterOptions{Name: ItemCreationWorkflowName}
}

func ItemCreationWorkflow(ctx workflow.Context, input ItemCreationWorkflowInput) (*cartdomain.CartItem, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("ItemCreationWorkflow started", withTraceID(input.TraceID, "productId", input.Command.ProductID)...)
	item, err := sequences.RunCartItemPersistenceSequence(ctx, input.Command)
	if err != nil {
		logger.Error("ItemCreationWorkflow failed", withTraceID(input.TraceID, "productId", input.Command.ProductID, "error", err)...)
		return nil, err
	}
	logger.Info("ItemCreationWorkflow completed", withTraceID(input.TraceID, "cartItemId", item.ID)...)
	return item, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
