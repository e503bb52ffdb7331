package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Driver selects the database/sql driver underneath GORM.
type Driver string

const (
	// DriverPGX uses jackc/pgx through its database/sql adapter (GORM's default).
	DriverPGX Driver = "pgx"
	// DriverPQ uses lib/pq, registered under the "postgres" name.
	DriverPQ Driver = "postgres"
)

// ParseDriver maps a POSTGRES_DRIVER value to a Driver; empty means pgx.
func ParseDriver(raw string) (Driver, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pgx":
		return DriverPGX, nil
	case "postgres", "pq", "lib/pq":
		return DriverPQ, nil
	default:
		return "", fmt.Errorf("unsupported postgres driver %q", raw)
	}
}

// Connect opens a PostgreSQL connection via GORM and verifies connectivity.
func Connect(ctx context.Context, dsn string, driver Driver) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	cfg := postgres.Config{DSN: dsn}
	if driver == DriverPQ {
		cfg.DriverName = string(DriverPQ)
	}
	db, err := gorm.Open(postgres.New(cfg), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// Open connects and returns the DB with a cleanup that closes the pool. A failed
// connection is returned as an error; callers decide whether that is fatal.
func Open(ctx context.Context, dsn string, driver Driver, logger *slog.Logger) (*gorm.DB, func(), error) {
	db, err := Connect(ctx, dsn, driver)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if logger != nil {
		logger.Info("postgres connection established", slog.String("driver", string(driver)))
	}
	return db, func() { _ = sqlDB.Close() }, nil
}
