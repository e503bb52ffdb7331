package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/go-gin-shop-services/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-gin-shop-services/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner        orderports.Service
	tracer       trace.Tracer
	logger       *slog.Logger
	ordersPlaced metric.Int64Counter
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
		if m == nil {
			return
		}
		s.ordersPlaced, _ = m.Int64Counter("orders.service.placed", metric.WithDescription("Number of orders placed"))
	}
}

func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	attrs := []attribute.KeyValue{}
	if order != nil {
		attrs = append(attrs, attribute.String("order.product_id", order.ProductID), attribute.Int("order.qty", int(order.Qty)))
	}
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder", trace.WithAttributes(attrs...))
	defer span.End()

	placed, err := s.inner.PlaceOrder(ctx, order)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to place order")
	}
	span.SetAttributes(attribute.String("order.id", placed.ID))
	if s.ordersPlaced != nil {
		s.ordersPlaced.Add(ctx, 1)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed",
		slog.String("order.id", placed.ID),
		slog.String("order.product_id", placed.ProductID),
		slog.Int("order.qty", int(placed.Qty)),
	)
	return placed, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	order, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to get order", slog.String("order.id", id))
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	orders, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("order.count", len(orders)))
	return orders, nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	level := slog.LevelError
	if errors.Is(err, orderports.ErrNotFound) {
		level = slog.LevelDebug
	}
	s.logger.LogAttrs(ctx, level, msg, append(attrs, slog.String("error", err.Error()))...)
	return err
}

var _ orderports.Service = (*Service)(nil)
