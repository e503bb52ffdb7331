package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-services/internal/domains/cart/ports"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "nil", err: nil},
		{name: "bad conn", err: fmt.Errorf("query: %w", driver.ErrBadConn), unavailable: true},
		{name: "conn done", err: sql.ErrConnDone, unavailable: true},
		{name: "pgx connection failure", err: &pgconn.PgError{Code: "08006"}, unavailable: true},
		{name: "pgx admin shutdown", err: &pgconn.PgError{Code: "57P01"}, unavailable: true},
		{name: "pq too many connections", err: &pq.Error{Code: "53300"}, unavailable: true},
		{name: "network", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, unavailable: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "pq syntax error", err: &pq.Error{Code: "42601"}},
		{name: "record not found", err: gorm.ErrRecordNotFound},
		{name: "deadline", err: context.DeadlineExceeded},
		{name: "canceled", err: context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if tt.err == nil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tt.err)
			require.Equal(t, tt.unavailable, errors.Is(got, ports.ErrStorageUnavailable))
		})
	}
}

func TestClassifyError_DoesNotWrapTwice(t *testing.T) {
	once := classifyError(driver.ErrBadConn)
	require.Same(t, once, classifyError(once))
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, isUniqueViolation(errors.New("other")))
}

func TestRepository_NotConfigured(t *testing.T) {
	var repo *Repository
	_, err := repo.List(context.Background())
	require.Error(t, err)
	require.Error(t, NewRepository(nil).DeleteByID(context.Background(), 1))
	_, err = NewIdempotencyStore(nil).Get(context.Background(), "k")
	require.Error(t, err)
}
