package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, driver, logger.Nop()), mock
}

func newMockPostgresDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	return newMockDB(t, config.DriverPostgres)
}

// noRetryDelays makes retries instantaneous for the duration of the test.
func noRetryDelays(t *testing.T) {
	t.Helper()

	old := retryDelays
	retryDelays = []time.Duration{0, 0, 0}
	t.Cleanup(func() { retryDelays = old })
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

