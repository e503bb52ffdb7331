package cartapi

import (
	"context"
	"fmt"
	"log/slog"

	cartmemory "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/memory"
	cartpostgres "github.com/Apurer/go-gin-shop-services/internal/domains/cart/adapters/persistence/postgres"
	cartports "github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
	"github.com/Apurer/go-gin-shop-services/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-gin-shop-services/internal/platform/postgres"
)

// Storage bundles the cart persistence adapters chosen at startup.
type Storage struct {
	Repository  cartports.Repository
	UnitOfWork  cartports.UnitOfWork
	Idempotency interface {
		cartports.IdempotencyStore
		cartports.IdempotencyPurger
	}
	Durable bool
	Close   func()
}

// OpenStorage connects to PostgreSQL and prepares its schema. Only an unset DSN
// selects the in-memory adapters; a configured database that cannot be reached
// fails with ports.ErrStorageUnavailable.
func OpenStorage(ctx context.Context, cfg Config, logger *slog.Logger) (*Storage, error) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory cart repository")
		return memoryStorage(), nil
	}
	db, cleanup, err := platformpostgres.Open(ctx, cfg.PostgresDSN, cfg.PostgresDriver, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cartports.ErrStorageUnavailable, err)
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		cleanup()
		return nil, fmt.Errorf("prepare cart schema: %w", err)
	}
	repo := cartpostgres.NewRepository(db)
	logger.Info("cart repository configured with postgres")
	return &Storage{
		Repository:  repo,
		UnitOfWork:  repo,
		Idempotency: cartpostgres.NewIdempotencyStore(db),
		Durable:     true,
		Close:       cleanup,
	}, nil
}

func memoryStorage() *Storage {
	repo := cartmemory.NewRepository()
	return &Storage{
		Repository:  repo,
		UnitOfWork:  repo,
		Idempotency: cartmemory.NewIdempotencyStore(),
		Close:       func() {},
	}
}
