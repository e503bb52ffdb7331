// Package env reads process configuration from environment variables.
package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default returns the trimmed value of key, or fallback when it is unset or blank.
func Default(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// Truthy reports whether key holds 1, true, or yes (case-insensitive).
func Truthy(key string) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return value == "1" || value == "true" || value == "yes"
}

// Seconds reads key as a positive number of seconds.
func Seconds(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return time.Duration(n) * time.Second, nil
}

// Port reads key as a TCP port number.
func Port(key, fallback string) (string, error) {
	port := Default(key, fallback)
	n, err := strconv.Atoi(port)
	if err != nil || n <= 0 || n > 65535 {
		return "", fmt.Errorf("%s must be a port number, got %q", key, port)
	}
	return port, nil
}
