// sqlite.go implements Store on SQLite. This is the only file that imports the
// SQLite driver, which keeps the backend swappable.
//
// Design: WAL mode with a busy timeout balances concurrency and durability.
// WAL allows a reader (e.g. `glint history`) while another process writes, and
// the timeout prevents "database is locked" errors without waiting forever on
// a stuck connection.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Compile-time interface compliance check: if a method is missing or has the
// wrong signature the build fails here, not at the first runtime use.
var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the SQLite database at path and returns a
// configured SQLiteStore. The caller should call Close on the returned store.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		// NORMAL is safe against corruption under WAL; FULL would fsync
		// every commit for no benefit at this write rate.
		`PRAGMA synchronous=NORMAL`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Init creates the kv table if it doesn't exist. Safe to call multiple times.
func (s *SQLiteStore) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or ErrNotFound if absent.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a no-op.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// defaultPathFunc returns the history database path.
// Tests can override this to use a temp directory.
var defaultPathFunc = defaultPath

func defaultPath() string {
	if dir := os.Getenv("GLINT_DIR"); dir != "" {
		return filepath.Join(dir, "glint.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		return filepath.Join(".glint", "glint.db")
	}
	return filepath.Join(home, ".glint", "glint.db")
}

// DefaultPath returns the path to the history database:
// GLINT_DIR/glint.db if GLINT_DIR is set, else ~/.glint/glint.db.
func DefaultPath() string {
	return defaultPathFunc()
}

// OpenDefault opens the history database at its default location, creating
// parent directories as needed.
func OpenDefault() (*SQLiteStore, error) {
	p := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	s, err := Open(p)
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
