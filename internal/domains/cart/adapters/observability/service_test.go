package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	cartmemory "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/memory"
	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-gin-shop-services/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

func TestService_RecordsSpansMetricsAndLogs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var logs bytes.Buffer

	repo := cartmemory.NewRepository()
	svc := New(cartapp.NewService(repo, repo),
		WithTracer(tp.Tracer("test")),
		WithMeter(mp.Meter("test")),
		WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
	)
	ctx := context.Background()

	saved, err := svc.AddToCart(ctx, cartports.AddCartItemInput{ProductID: "P1", Name: "Widget", Price: decimal.RequireFromString("9.99")})
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromCart(ctx, saved.ID))
	_, err = svc.ListCart(ctx)
	require.NoError(t, err)

	names := []string{}
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	require.Equal(t, []string{"CartService.AddToCart", "CartService.RemoveFromCart", "CartService.ListCart"}, names)
	require.Contains(t, logs.String(), "item added to cart")
	require.Contains(t, logs.String(), "item removed from cart")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	counters := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					counters[m.Name] += dp.Value
				}
			}
		}
	}
	require.Equal(t, int64(1), counters["cart.service.items_added"])
	require.Equal(t, int64(1), counters["cart.service.items_removed"])
}

func TestService_PropagatesErrorsUnchanged(t *testing.T) {
	boom := errors.New("storage down")
	var logs bytes.Buffer
	svc := New(failingService{err: boom}, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	err := svc.RemoveFromCart(context.Background(), 3)
	require.Same(t, boom, err)
	require.Contains(t, logs.String(), "failed to remove item from cart")

	_, err = svc.AddToCart(context.Background(), cartports.AddCartItemInput{})
	require.Same(t, boom, err)
}

type failingService struct {
	err error
}

func (f failingService) AddToCart(context.Context, cartports.AddCartItemInput) (*cartdomain.CartItem, error) {
	return nil, f.err
}

func (f failingService) ListCart(context.Context) ([]*cartdomain.CartItem, error) {
	return nil, f.err
}

func (f failingService) RemoveFromCart(context.Context, int64) error {
	return f.err
}
