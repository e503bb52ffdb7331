package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/go-gin-shop-services/internal/app/cartapi"
	cartpostgres "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/persistence/postgres"
	platformobservability "github.com/Apurer/go-gin-shop-services/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-shop-services/internal/platform/postgres"
)

// Deletes add-to-cart idempotency keys older than IDEMPOTENCY_KEY_TTL_SECONDS.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := cartapi.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := platformobservability.NewLogger(os.Stdout, "cart-idempotency-purger", os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN not set; cannot purge idempotency keys")
	}
	db, cleanup, err := platformpostgres.Open(ctx, cfg.PostgresDSN, cfg.PostgresDriver, logger)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer cleanup()

	cutoff := time.Now().Add(-cfg.IdempotencyKeyTTL)
	purged, err := cartpostgres.NewIdempotencyStore(db).PurgeExpired(ctx, cutoff)
	if err != nil {
		log.Fatalf("failed to purge idempotency keys: %v", err)
	}
	logger.Info("idempotency key purge completed", slog.Int64("purged", purged), slog.Time("cutoff", cutoff))
}
