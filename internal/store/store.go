// Package store persists accounts, transactions, categories, rules and
// settings in a single sqlite database. Transactions are keyed by
// (account_id, id); everything else lives in global tables.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Sentinel errors surfaced to the presentation layer.
var (
	// ErrColumnMappingUnset means a CSV import was requested before the
	// column mapping was configured.
	ErrColumnMappingUnset = errors.New("csv column mapping not configured")
	// ErrAccountNotFound means the named account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrProtectedCategory means an edit targeted the Delete category.
	ErrProtectedCategory = errors.New("the Delete category cannot be modified or removed")
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store wraps the sqlite database. All access is synchronous; the tracker is
// single-user and single-process.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and brings the schema
// up to date.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
