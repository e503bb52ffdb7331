package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing, logging, and metrics.
type Service struct {
	inner   cartports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) AddToCart(ctx context.Context, input cartports.AddCartItemInput) (*cartdomain.CartItem, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddToCart",
		trace.WithAttributes(
			attribute.String("cart.product_id", input.ProductID),
			attribute.Bool("cart.idempotent", input.IdempotencyKey != ""),
		))
	defer span.End()

	s.logInfo(ctx, "adding item to cart", slog.String("cart.product_id", input.ProductID), slog.String("cart.price", input.Price.String()))
	result, err := s.inner.AddToCart(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add item to cart", slog.String("cart.product_id", input.ProductID))
	}
	span.SetAttributes(attribute.Int64("cart.item_id", result.ID))
	s.metrics.recordAdded(ctx)
	s.logInfo(ctx, "item added to cart", slog.Int64("cart.item_id", result.ID), slog.String("cart.product_id", result.ProductID))
	return result, nil
}

func (s *Service) ListCart(ctx context.Context) ([]*cartdomain.CartItem, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.ListCart")
	defer span.End()

	result, err := s.inner.ListCart(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list cart items")
	}
	span.SetAttributes(attribute.Int("cart.item_count", len(result)))
	return result, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveFromCart", trace.WithAttributes(attribute.Int64("cart.item_id", id)))
	defer span.End()

	s.logInfo(ctx, "removing item from cart", slog.Int64("cart.item_id", id))
	if err := s.inner.RemoveFromCart(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to remove item from cart", slog.Int64("cart.item_id", id))
	}
	s.metrics.recordRemoved(ctx)
	s.logInfo(ctx, "item removed from cart", slog.Int64("cart.item_id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	itemsAdded   metric.Int64Counter
	itemsRemoved metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("cart.service.items_added", metric.WithDescription("Number of items added to the cart"))
	itemsRemoved, _ := m.Int64Counter("cart.service.items_removed", metric.WithDescription("Number of cart removals"))
	return serviceMetrics{itemsAdded: itemsAdded, itemsRemoved: itemsRemoved}
}

func (m serviceMetrics) recordAdded(ctx context.Context) {
	if m.itemsAdded != nil {
		m.itemsAdded.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordRemoved(ctx context.Context) {
	if m.itemsRemoved != nil {
		m.itemsRemoved.Add(ctx, 1)
	}
}

var _ cartports.Service = (*Service)(nil)
