package stockroom

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const queryTimeout = 5 * time.Second

// schemaVersion is written alongside every document so future readers can
// tolerate field additions.
const schemaVersion = 1

const collectionsSchema = `
	CREATE TABLE IF NOT EXISTS collections (
		name    TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		data    BLOB NOT NULL
	);`

// SQLiteStore persists collections in a single local SQLite file. It is the
// default backend: single-process, no server, and Commit maps directly onto
// a SQL transaction.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the store file at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}

	// A single writer keeps things simple; WAL keeps readers cheap. The
	// pragmas are best effort: a store that cannot switch journal mode is
	// still a working store.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		db.Exec(pragma)
	}

	if _, err := db.Exec(collectionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create collections table in %q: %w", path, err)
	}

	return &SQLiteStore{db: db}, nil
}

// Read returns the document for name, or nil when it was never written.
func (s *SQLiteStore) Read(name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Collection: name, Err: err}
	}
	return data, nil
}

// Commit upserts every document in puts inside one transaction.
func (s *SQLiteStore) Commit(puts map[string][]byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "commit", Err: err}
	}
	defer tx.Rollback()

	for name, data := range puts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO collections (name, version, data) VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET version = excluded.version, data = excluded.data`,
			name, schemaVersion, data)
		if err != nil {
			return &StorageError{Op: "commit", Collection: name, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

var _ Store = (*SQLiteStore)(nil)
