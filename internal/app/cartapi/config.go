package cartapi

import (
	"os"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-shop-services/internal/platform/env"
	platformpostgres "github.com/Apurer/go-gin-shop-services/internal/platform/postgres"
	platformtemporal "github.com/Apurer/go-gin-shop-services/internal/platform/temporal"
)

// Config carries environment-driven settings for the cart processes.
type Config struct {
	Port              string
	PostgresDSN       string
	PostgresDriver    platformpostgres.Driver
	Temporal          platformtemporal.Config
	ShutdownTimeout   time.Duration
	IdempotencyKeyTTL time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	port, err := env.Port("PORT", "8080")
	if err != nil {
		return Config{}, err
	}
	driver, err := platformpostgres.ParseDriver(os.Getenv("POSTGRES_DRIVER"))
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := env.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	keyTTL, err := env.Seconds("IDEMPOTENCY_KEY_TTL_SECONDS", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port:           port,
		PostgresDSN:    strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		PostgresDriver: driver,
		Temporal: platformtemporal.Config{
			Address:   env.Default("TEMPORAL_ADDRESS", client.DefaultHostPort),
			Namespace: env.Default("TEMPORAL_NAMESPACE", client.DefaultNamespace),
			Disabled:  env.Truthy("TEMPORAL_DISABLED"),
		},
		ShutdownTimeout:   shutdownTimeout,
		IdempotencyKeyTTL: keyTTL,
	}, nil
}
