package orderapi

import (
	"time"

	"github.com/Apurer/go-gin-shop-services/internal/platform/env"
)

// Config carries environment-driven settings for the order API process.
type Config struct {
	Port            string
	ShutdownTimeout time.Duration
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() (Config, error) {
	port, err := env.Port("PORT", "8081")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := env.Seconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	return Config{Port: port, ShutdownTimeout: shutdownTimeout}, nil
}
