// Package testutils provides shared fixtures and storage helpers for tests
package testutils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis server and a client for
// it. Both are closed when the test ends; seed data through the server.
func CreateTestRedisClient(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

// TestSQLitePath returns a database path inside the test's temp dir
func TestSQLitePath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "sheet.db")
}

// OpenTestSQLite opens a SQLite file in a temp dir with the given opener,
// closing it when the test ends
func OpenTestSQLite(t *testing.T, open func(path string) (*sql.DB, error)) *sql.DB {
	db, err := open(TestSQLitePath(t))
	require.NoError(t, err, "failed to open sqlite")
	t.Cleanup(func() { _ = db.Close() })
	return db
}
