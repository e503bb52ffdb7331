package orderapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	orderhttp "github.com/Apurer/go-gin-shop-services/internal/domains/orders/adapters/http"
	ordermemory "github.com/Apurer/go-gin-shop-services/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-gin-shop-services/internal/domains/orders/adapters/observability"
	orderapp "github.com/Apurer/go-gin-shop-services/internal/domains/orders/application"
	orderports "github.com/Apurer/go-gin-shop-services/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-shop-services/internal/platform/httpserver"
	platformobservability "github.com/Apurer/go-gin-shop-services/internal/platform/observability"
)

// ServiceName identifies the order API in logs and traces.
const ServiceName = "order-api"

// Run boots the order HTTP API and blocks until ctx is cancelled. Orders live
// in process memory and are lost when Run returns.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, ServiceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()

	router := NewRouter(NewService(instruments))
	return httpserver.Serve(ctx, net.JoinHostPort("", cfg.Port), router, cfg.ShutdownTimeout, instruments.Logger)
}

// NewService assembles the order service over a fresh in-memory registry.
func NewService(instruments *platformobservability.Instruments) orderports.Service {
	return orderobs.New(
		orderapp.NewService(ordermemory.NewRepository()),
		orderobs.WithLogger(instruments.Logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
}

func NewRouter(service orderports.Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(ServiceName))
	orderhttp.NewOrderAPI(service).RegisterRoutes(router)
	return router
}
