// Package session persists the tab collection between runs in a SQLite
// database so the shell reopens with the tabs and histories it closed with.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
)

// Store is a SQLite-backed session store holding one snapshot.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the session database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{db: db, path: path}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- A single row recording which tab was active
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		active INTEGER NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Tabs in display order
	CREATE TABLE IF NOT EXISTS tabs (
		position INTEGER PRIMARY KEY,
		tab_id INTEGER NOT NULL,
		history_index INTEGER NOT NULL
	);

	-- History entries of each tab, oldest first
	CREATE TABLE IF NOT EXISTS tab_entries (
		tab_position INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		url TEXT NOT NULL,
		PRIMARY KEY (tab_position, seq)
	);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// Save replaces the stored snapshot with snap in one transaction.
func (s *Store) Save(ctx context.Context, snap tabs.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"tab_entries", "tabs", "session"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err = tx.ExecContext(ctx, "INSERT INTO session (id, active) VALUES (1, ?)", snap.Active); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	for pos, t := range snap.Tabs {
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO tabs (position, tab_id, history_index) VALUES (?, ?, ?)",
			pos, t.ID, t.Index,
		); err != nil {
			return fmt.Errorf("failed to insert tab %d: %w", t.ID, err)
		}
		for seq, url := range t.URLs {
			if _, err = tx.ExecContext(ctx,
				"INSERT INTO tab_entries (tab_position, seq, url) VALUES (?, ?, ?)",
				pos, seq, url,
			); err != nil {
				return fmt.Errorf("failed to insert entry %d of tab %d: %w", seq, t.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// Load returns the stored snapshot. It reports false when nothing has been
// saved yet.
func (s *Store) Load(ctx context.Context) (tabs.Snapshot, bool, error) {
	var snap tabs.Snapshot
	err := s.db.QueryRowContext(ctx, "SELECT active FROM session WHERE id = 1").Scan(&snap.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return tabs.Snapshot{}, false, nil
	}
	if err != nil {
		return tabs.Snapshot{}, false, fmt.Errorf("failed to read session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT position, tab_id, history_index FROM tabs ORDER BY position")
	if err != nil {
		return tabs.Snapshot{}, false, fmt.Errorf("failed to query tabs: %w", err)
	}
	var positions []int
	for rows.Next() {
		var pos int
		var t tabs.TabSnapshot
		if err := rows.Scan(&pos, &t.ID, &t.Index); err != nil {
			rows.Close()
			return tabs.Snapshot{}, false, fmt.Errorf("failed to scan tab: %w", err)
		}
		positions = append(positions, pos)
		snap.Tabs = append(snap.Tabs, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return tabs.Snapshot{}, false, fmt.Errorf("failed to iterate tabs: %w", err)
	}

	for i, pos := range positions {
		urls, err := s.loadEntries(ctx, pos)
		if err != nil {
			return tabs.Snapshot{}, false, err
		}
		snap.Tabs[i].URLs = urls
	}

	return snap, true, nil
}

func (s *Store) loadEntries(ctx context.Context, pos int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM tab_entries WHERE tab_position = ? ORDER BY seq", pos)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// Clear removes the stored snapshot.
func (s *Store) Clear(ctx context.Context) error {
	for _, table := range []string{"tab_entries", "tabs", "session"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}
