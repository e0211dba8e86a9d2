// Package history persists visited pages in sqlite.
package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/tabdeck/internal/browser"
	"github.com/jask/tabdeck/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrNotFound is returned when deleting an entry that does not exist.
var ErrNotFound = errors.New("history entry not found")

// Store implements browser.HistoryProvider.
type Store struct {
	db  *sql.DB
	now func() int64
}

var _ browser.HistoryProvider = (*Store)(nil)

// Open opens (creating if needed) the history database at path and migrates it.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, migrations, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return &Store{db: db, now: database.NowMillis}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Add records a visit. A zero Timestamp is stamped with the current time.
func (s *Store) Add(ctx context.Context, e browser.HistoryEntry) (browser.HistoryEntry, error) {
	if e.Timestamp == 0 {
		e.Timestamp = s.now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history(title, url, visited_at) VALUES (?, ?, ?)`,
		e.Title, e.URL, e.Timestamp)
	if err != nil {
		return browser.HistoryEntry{}, fmt.Errorf("add history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return browser.HistoryEntry{}, fmt.Errorf("add history: %w", err)
	}
	e.ID = id
	return e, nil
}

// List returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]browser.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, title, url, visited_at FROM history
	ORDER BY visited_at DESC, id DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()
	var out []browser.HistoryEntry
	for rows.Next() {
		var e browser.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Title, &e.URL, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete history %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete history %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		return nil
	})
}
