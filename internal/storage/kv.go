// Package storage provides the SQLite-backed key/value store used to
// persist search state (currently only the recent-query history) across
// sessions.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tiendamayor/smartsearch/internal/history"
)

// KV is a small key/value store on SQLite. It implements history.Sink.
type KV struct {
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// Compile-time checks that both stores satisfy history.Sink.
var (
	_ history.Sink = (*KV)(nil)
	_ history.Sink = (*Memory)(nil)
)

// DefaultDBPath returns the default database path (~/.smartsearch/state.db).
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".smartsearch", "state.db"), nil
}

// Open creates or opens the store at dbPath. An empty path uses
// DefaultDBPath. The database is opened in WAL mode with a busy timeout;
// SQLite behaves best with a single writer, so the pool is pinned to one
// connection.
func Open(dbPath string) (*KV, error) {
	if dbPath == "" {
		var err error
		dbPath, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// modernc.org/sqlite uses _pragma=name(value) syntax.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	kv := &KV{db: db}
	if err := kv.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return kv, nil
}

// migrate creates the schema if it does not exist yet.
func (s *KV) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
		  key TEXT PRIMARY KEY,
		  value TEXT NOT NULL,
		  updated_at_unix_ms INTEGER NOT NULL
		)
	`)
	return err
}

// Get retrieves the value for key. The second return value reports whether
// the key exists.
func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("storage: key is required")
	}
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores or replaces the value for key. Last write wins.
func (s *KV) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("storage: key is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at_unix_ms) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
		  value = excluded.value,
		  updated_at_unix_ms = excluded.updated_at_unix_ms
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("storage: set %q: %w", key, err)
	}
	return nil
}

// Close closes the database. It is idempotent.
func (s *KV) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}
