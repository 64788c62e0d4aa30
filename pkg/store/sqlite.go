package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Mindburn-Labs/continuum/pkg/codec"
	"github.com/Mindburn-Labs/continuum/pkg/continuum"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists events in a SQLite database. Rows keep a
// monotonic sequence so Load returns events in insertion order, and
// the payload column holds the codec wire form of each event.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database handle and ensures the schema
// exists.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}
	return s, nil
}

// OpenSQLite opens (or creates) the database at path and wraps it in a
// store. The caller owns the returned store and must Close it.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	s, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		seq      INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL UNIQUE,
		kind     TEXT NOT NULL,
		date     TEXT NOT NULL,
		payload  TEXT NOT NULL
	);`
	_, err := s.db.ExecContext(context.Background(), query)
	return err
}

func (s *SQLiteStore) Append(ctx context.Context, ev continuum.Event) error {
	payload, err := codec.MarshalEvent(ev)
	if err != nil {
		return fmt.Errorf("store: encode event: %w", err)
	}

	query := `INSERT INTO events (event_id, kind, date, payload) VALUES (?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(), string(ev.EventKind()), string(ev.EventDate()), string(payload),
	)
	if err != nil {
		return fmt.Errorf("store: insert event: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AppendAll(ctx context.Context, events []continuum.Event) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO events (event_id, kind, date, payload) VALUES (?, ?, ?, ?)`
	for _, ev := range events {
		payload, err := codec.MarshalEvent(ev)
		if err != nil {
			return fmt.Errorf("store: encode event: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query,
			uuid.NewString(), string(ev.EventKind()), string(ev.EventDate()), string(payload),
		); err != nil {
			return fmt.Errorf("store: insert event: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Load(ctx context.Context) ([]continuum.Event, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("store: query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]continuum.Event, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("store: scan event: %w", err)
		}
		ev, err := codec.UnmarshalEvent([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("store: decode event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate events: %w", err)
	}
	return events, nil
}

func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count events: %w", err)
	}
	return n, nil
}
