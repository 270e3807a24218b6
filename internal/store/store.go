package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// busyTimeoutMS bounds how long a statement waits on an engine-level lock
// before failing. Contention between transactions in this process never
// reaches the engine (the write mutex serializes them first); this covers
// checkpointing and any other process touching the file.
const busyTimeoutMS = 5000

// Store provides durable storage for stock records.
//
// It owns one shared database handle, safe for concurrent use from any
// goroutine, and the single write mutex that serializes transactions.
// Construct one Store per backing file and share it by reference.
type Store struct {
	db *sql.DB

	// writeMu is the sole write serialization point. WithTransaction holds
	// it from before BEGIN until after COMMIT/ROLLBACK.
	writeMu sync.Mutex
}

// Open creates or opens a SQLite database at the given path.
//
// The connection is configured with:
//   - deferred transaction locking, so transaction boundaries are fully
//     manual: no statement commits outside an explicit commit
//   - WAL mode, so lookups proceed during an in-flight write
//   - a busy timeout for residual engine-level lock contention
//
// Deferred locking and the busy timeout ride the DSN so they apply to
// every pooled connection; WAL is set once by pragma since it persists in
// the database file itself.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_txlock=deferred&_busy_timeout=%d", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &StoreError{Kind: KindUnavailable, Op: "open", Err: err}
	}

	// Verify connection works (sql.Open alone doesn't touch the file)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Kind: KindUnavailable, Op: "open", Err: err}
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, &StoreError{Kind: KindUnavailable, Op: "configure", Err: err}
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateSchema creates the stocks table. Call at most once per fresh
// backing file: unlike a migration, this is not idempotent, and a second
// call fails with a SCHEMA error because the table already exists.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return &StoreError{Kind: KindSchema, Op: "create schema", Err: err}
	}
	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
