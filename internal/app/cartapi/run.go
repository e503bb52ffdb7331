package cartapi

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	carthttp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/http"
	cartobs "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/observability"
	cartworkflows "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/workflows"
	cartapp "github.com/Apurer/go-gin-shop-services/internal/domains/cart/application"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	"github.com/Apurer/go-gin-shop-services/internal/platform/httpserver"
	platformobservability "github.com/Apurer/go-gin-shop-services/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-shop-services/internal/platform/temporal"
)

// ServiceName identifies the cart API in logs and traces.
const ServiceName = "cart-api"

// Run boots the cart HTTP API and blocks until ctx is cancelled.
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
	logger := instruments.Logger

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer storage.Close()
	service := NewService(storage, instruments)

	var workflows cartports.WorkflowOrchestrator = cartworkflows.NewInlineCartWorkflows(service)
	if !storage.Durable {
		logger.Info("cart storage is in-memory, running inline AddToCart")
	} else if temporalClient, err := platformtemporal.Dial(cfg.Temporal, logger, instruments.Tracer("temporal-client")); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline AddToCart", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		workflows = cartworkflows.NewTemporalCartWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Temporal.Namespace))
	}

	router := NewRouter(service, workflows)
	return httpserver.Serve(ctx, net.JoinHostPort("", cfg.Port), router, cfg.ShutdownTimeout, logger)
}

// NewService assembles the cart service with its observability decorator.
func NewService(storage *Storage, instruments *platformobservability.Instruments) cartports.Service {
	core := cartapp.NewService(storage.Repository, storage.UnitOfWork, cartapp.WithIdempotencyStore(storage.Idempotency))
	return cartobs.New(
		core,
		cartobs.WithLogger(instruments.Logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)
}

// NewRouter mounts the cart routes behind recovery and tracing middleware.
func NewRouter(service cartports.Service, workflows cartports.WorkflowOrchestrator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(ServiceName))
	carthttp.NewCartAPI(service, workflows).RegisterRoutes(router)
	return router
}
