/*
Package sqlite keeps the last check result in a SQLite database.

Only one result is ever stored: each save replaces the previous row. The
result is kept as JSON alongside its id, mark, judgment and timestamp so
the row can be inspected without decoding.

USAGE:

	store, err := sqlite.New("./gobrace.db")
	if err != nil {
	    return err
	}
	defer store.Close()

	designer, err := brace.New(cat, brace.WithStore(store))
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/alexiusacademia/gobrace/internal/check"
)

// Store implements brace.ResultStore using SQLite.
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath and creates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS last_result (
		slot INTEGER PRIMARY KEY CHECK (slot = 1),
		id TEXT NOT NULL,
		mark TEXT NOT NULL,
		judgment TEXT NOT NULL,
		created_at TEXT NOT NULL,
		body TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveLast replaces the stored result with r.
func (s *Store) SaveLast(ctx context.Context, r *check.Result) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO last_result (slot, id, mark, judgment, created_at, body)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			id = excluded.id,
			mark = excluded.mark,
			judgment = excluded.judgment,
			created_at = excluded.created_at,
			body = excluded.body
	`, r.ID, r.Mark, string(r.Judgment()), r.CreatedAt.UTC().Format(time.RFC3339Nano), string(body))
	if err != nil {
		return fmt.Errorf("save last result: %w", err)
	}
	return nil
}

// LoadLast returns the stored result, or nil when nothing was saved yet.
func (s *Store) LoadLast(ctx context.Context) (*check.Result, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM last_result WHERE slot = 1`).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last result: %w", err)
	}

	var r check.Result
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("decode last result: %w", err)
	}
	return &r, nil
}
