package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS entries (
	key        TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
)`

// SQLiteCache stores entries in a single SQLite database file
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLiteCache opens (or creates) the database at path
func NewSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &SQLiteCache{db: db, ttl: ttl}, nil
}

// Get retrieves a value, dropping it if it has expired
func (c *SQLiteCache) Get(key string) ([]byte, bool) {
	var data []byte
	var expiresAt int64

	err := c.db.QueryRow(`SELECT data, expires_at FROM entries WHERE key = ?`, key).Scan(&data, &expiresAt)
	if err != nil {
		return nil, false
	}

	if expiresAt != 0 && time.Now().UnixNano() > expiresAt {
		_ = c.Delete(key)
		return nil, false
	}

	return data, true
}

// Set upserts value; a zero ttl uses the cache default, and a negative one
// never expires.
func (c *SQLiteCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).UnixNano()
	}

	_, err := c.db.Exec(
		`INSERT INTO entries (key, data, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`,
		key, value, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("write sqlite entry: %w", err)
	}
	return nil
}

// Delete removes a value; a missing entry is not an error
func (c *SQLiteCache) Delete(key string) error {
	if _, err := c.db.Exec(`DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete sqlite entry: %w", err)
	}
	return nil
}

// Clear removes every entry
func (c *SQLiteCache) Clear() error {
	if _, err := c.db.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear sqlite cache: %w", err)
	}
	return nil
}

// Close closes the database
func (c *SQLiteCache) Close() error {
	if err := c.db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("close sqlite cache: %w", err)
	}
	return nil
}
