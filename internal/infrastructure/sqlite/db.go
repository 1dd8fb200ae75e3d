// Package sqlite provides the durable preference store backing umbra's
// theme manager.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/dstaley/umbra/internal/log"
)

// schema is the full preference store schema. It is small enough that
// CREATE IF NOT EXISTS at open time replaces a migration tool.
const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// DB wraps the sqlite connection and hands out repositories.
type DB struct {
	db *sql.DB
}

// NewDB opens (creating if needed) the state database at path. The parent
// directory is created, WAL mode and a busy timeout are applied, and the
// schema is ensured.
func NewDB(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	log.Debug(log.CatStore, "Opened state database", "path", path)
	return &DB{db: db}, nil
}

// NewMemoryDB opens an in-memory database with the schema applied.
// Used by tests and as a fallback when no state directory is writable.
func NewMemoryDB() (*DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Preferences returns the key-value preference repository.
func (d *DB) Preferences() *PreferenceStore {
	return NewPreferenceStore(d.db)
}

// Connection exposes the underlying *sql.DB.
func (d *DB) Connection() *sql.DB {
	return d.db
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
