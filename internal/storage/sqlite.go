package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema bootstraps the single key-document table. No migration chain:
// document schema changes get new keys instead.
const schema = `
CREATE TABLE IF NOT EXISTS aggregates (
	key        TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const (
	sqlGetDoc = `SELECT doc FROM aggregates WHERE key = ?`

	sqlUpsertDoc = `
		INSERT INTO aggregates (key, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`
)

// SQLiteKV is the durable backend: an embedded sqlite database, one
// file per user profile.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and
// ensures the schema exists.
func OpenSQLite(path string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single writer by construction; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteKV{db: db}, nil
}

// Get implements KV.
func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx, sqlGetDoc, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return doc, true, nil
}

// PutAll implements KV: every document commits in one transaction.
func (s *SQLiteKV) PutAll(ctx context.Context, docs map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for key, doc := range docs {
		if _, err := tx.ExecContext(ctx, sqlUpsertDoc, key, doc); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Ping reports whether the database file is still reachable.
func (s *SQLiteKV) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements KV.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
