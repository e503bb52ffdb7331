package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	cartactivities "github.com/Apurer/go-gin-shop-services/internal/durable/temporal/activities/cart"
	cartworkflows "github.com/Apurer/go-gin-shop-services/internal/durable/temporal/workflows/cart"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalCartWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineCartWorkflows)(nil)
)

// TemporalCartWorkflows starts cart workflows on a Temporal cluster.
type TemporalCartWorkflows struct {
	client    client.Client
	taskQueue string
}

func NewTemporalCartWorkflows(c client.Client) *TemporalCartWorkflows {
	return &TemporalCartWorkflows{client: c, taskQueue: cartworkflows.ItemCreationTaskQueue}
}

// AddToCart runs the item creation workflow and waits for the stored item.
func (o *TemporalCartWorkflows) AddToCart(ctx context.Context, input ports.AddCartItemInput) (*cartdomain.CartItem, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal cart workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildItemCreationWorkflowID(input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		cartworkflows.ItemCreationWorkflowName,
		cartworkflows.ItemCreationWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
		} else {
			return nil, err
		}
	}
	var item cartdomain.CartItem
	if err := run.Get(ctx, &item); err != nil {
		return nil, translateWorkflowError(err)
	}
	return &item, nil
}

// InlineCartWorkflows calls the service directly. Used when Temporal is disabled or unreachable.
type InlineCartWorkflows struct {
	service ports.Service
}

func NewInlineCartWorkflows(service ports.Service) *InlineCartWorkflows {
	return &InlineCartWorkflows{service: service}
}

func (o *InlineCartWorkflows) AddToCart(ctx context.Context, input ports.AddCartItemInput) (*cartdomain.CartItem, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline cart workflows not configured")
	}
	return o.service.AddToCart(ctx, input)
}

// translateWorkflowError restores the cart sentinel errors carried as application error types.
func translateWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case cartactivities.ErrTypeInvalidInput:
		return fmt.Errorf("%w: %s", cartapp.ErrInvalidInput, appErr.Message())
	case cartactivities.ErrTypeIdempotencyConflict:
		return fmt.Errorf("%w: %s", ports.ErrIdempotencyConflict, appErr.Message())
	case cartactivities.ErrTypeStorageUnavailable:
		return fmt.Errorf("%w: %s", ports.ErrStorageUnavailable, appErr.Message())
	default:
		return err
	}
}

func buildItemCreationWorkflowID(input ports.AddCartItemInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("cart-item-creation-idem-%s", hashIdempotencyKey(key))
	}
	return fmt.Sprintf("cart-item-creation-%s-%s-%d", input.ProductID, traceComponent, time.Now().UnixNano())
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
