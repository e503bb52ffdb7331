package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"

	"github.com/Apurer/go-gin-shop-services/internal/app/cartapi"
	cartactivities "github.com/Apurer/go-gin-shop-services/internal/durable/temporal/activities/cart"
	cartworkflows "github.com/Apurer/go-gin-shop-services/internal/durable/temporal/workflows/cart"
	platformobservability "github.com/Apurer/go-gin-shop-services/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-shop-services/internal/platform/temporal"
)

func main() {
	ctx := context.Background()
	const serviceName = "cart-worker"
	cfg, err := cartapi.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	storage, err := cartapi.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open cart storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()
	if !storage.Durable {
		storage.Close()
		logger.Error("worker requires POSTGRES_DSN; in-memory items would not be visible to the cart API")
		os.Exit(1)
	}
	cartActivities := cartactivities.NewActivities(cartapi.NewService(storage, instruments))

	temporalCfg := cfg.Temporal
	temporalCfg.Disabled = false
	temporalClient, err := platformtemporal.Dial(temporalCfg, logger, instruments.Tracer("temporal-worker"))
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, cartworkflows.ItemCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(cartworkflows.ItemCreationWorkflow, cartworkflows.RegisterOptions())
	w.RegisterActivityWithOptions(cartActivities.PersistCartItem, activity.RegisterOptions{Name: cartactivities.PersistCartItemActivityName})

	logger.Info("worker listening", slog.String("taskQueue", cartworkflows.ItemCreationTaskQueue), slog.String("namespace", temporalCfg.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
