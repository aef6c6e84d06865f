package sheet

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

type sqliteStore struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite sheet repository.
type SQLiteConfig struct {
	DB *sql.DB
	// Key defaults to DefaultKey
	Key   string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// OpenSQLite opens (creating if needed) the database file at path. The
// caller owns the returned handle.
func OpenSQLite(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite db").
			WithMeta("path", path)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db").
			WithMeta("path", path)
	}
	return db, nil
}

// NewSQLite creates a SQLite-backed sheet repository, creating the kv table
// when it does not exist yet
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := cfg.DB.ExecContext(ctx, createKVTable); err != nil {
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return newBlobRepository(&sqliteStore{db: cfg.DB}, cfg.Key, cfg.Clock), nil
}

func (s *sqliteStore) name() string { return "sqlite" }

func (s *sqliteStore) read(ctx context.Context, key string) (*blob, error) {
	var (
		value     []byte
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT value, updated_at FROM kv WHERE key = ?`, key).
		Scan(&value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &blob{value: value, updatedAt: time.UnixMilli(updatedAt).UTC()}, nil
}

func (s *sqliteStore) write(ctx context.Context, key string, value []byte, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, at.UTC().UnixMilli())
	return err
}

func (s *sqliteStore) remove(ctx context.Context, key string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
