package cartapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	platformpostgres "github.com/Apurer/go-gin-shop-services/internal/platform/postgres"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "POSTGRES_DSN", "POSTGRES_DRIVER", "TEMPORAL_ADDRESS", "TEMPORAL_NAMESPACE",
		"TEMPORAL_DISABLED", "SHUTDOWN_TIMEOUT_SECONDS", "IDEMPOTENCY_KEY_TTL_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.PostgresDSN)
	require.Equal(t, platformpostgres.DriverPGX, cfg.PostgresDriver)
	require.Equal(t, client.DefaultHostPort, cfg.Temporal.Address)
	require.Equal(t, client.DefaultNamespace, cfg.Temporal.Namespace)
	require.False(t, cfg.Temporal.Disabled)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 24*time.Hour, cfg.IdempotencyKeyTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_DSN", " postgres://cart@db/cart ")
	t.Setenv("POSTGRES_DRIVER", "postgres")
	t.Setenv("TEMPORAL_DISABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "postgres://cart@db/cart", cfg.PostgresDSN)
	require.Equal(t, platformpostgres.DriverPQ, cfg.PostgresDriver)
	require.True(t, cfg.Temporal.Disabled)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"PORT":                        "http",
		"POSTGRES_DRIVER":             "mysql",
		"SHUTDOWN_TIMEOUT_SECONDS":    "-5",
		"IDEMPOTENCY_KEY_TTL_SECONDS": "forever",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
