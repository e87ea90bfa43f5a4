// Package storage persists assessment snapshots in a local SQLite database
// and reports changes made to it by other processes.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"octalysis/internal/state"
)

// StateKey is the row the current assessment is stored under.
const StateKey = "octalysisState"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("storage closed")

// Store is a SQLite-backed snapshot store. Load and Save may be called from
// several goroutines; Close must come after they are done.
type Store struct {
	path     string
	writerID string
	db       *sql.DB
	logger   *slog.Logger
}

// Open opens (creating if needed) the database at path. Every Store gets a
// fresh writer id so it can tell its own writes from other processes'.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	// modernc.org/sqlite registers itself as "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure %s: %w", path, err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &Store{path: path, writerID: uuid.NewString(), db: db, logger: logger}
	logger.Debug("storage opened", "path", path, "writer", s.writerID)
	return s, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			k TEXT PRIMARY KEY,
			json TEXT NOT NULL,
			writer_id TEXT NOT NULL DEFAULT '',
			updated_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (s *Store) Path() string     { return s.path }
func (s *Store) WriterID() string { return s.writerID }

// Load returns the stored assessment. ok is false when nothing has been
// saved yet.
func (s *Store) Load(ctx context.Context) (st state.AppState, ok bool, err error) {
	st, _, ok, err = s.load(ctx)
	return st, ok, err
}

// LoadForeign is Load restricted to snapshots written by another Store.
// It lets a watcher ignore the echo of this process's own saves.
func (s *Store) LoadForeign(ctx context.Context) (state.AppState, bool, error) {
	st, writer, ok, err := s.load(ctx)
	if err != nil || !ok || writer == s.writerID {
		return state.AppState{}, false, err
	}
	return st, true, nil
}

func (s *Store) load(ctx context.Context) (state.AppState, string, bool, error) {
	if s.db == nil {
		return state.AppState{}, "", false, ErrClosed
	}
	var raw, writer string
	err := s.db.QueryRowContext(ctx, `SELECT json, writer_id FROM snapshots WHERE k = ?`, StateKey).Scan(&raw, &writer)
	if errors.Is(err, sql.ErrNoRows) {
		return state.AppState{}, "", false, nil
	}
	if err != nil {
		return state.AppState{}, "", false, fmt.Errorf("load snapshot: %w", err)
	}
	st, err := decodeState([]byte(raw))
	if err != nil {
		return state.AppState{}, "", false, err
	}
	return st, writer, true, nil
}

// Save replaces the stored assessment.
func (s *Store) Save(ctx context.Context, st state.AppState) error {
	if s.db == nil {
		return ErrClosed
	}
	b, err := encodeState(st)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots(k, json, writer_id, updated_at_unixms) VALUES(?, ?, ?, ?)`,
		StateKey, string(b), s.writerID, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Remove deletes the stored assessment.
func (s *Store) Remove(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE k = ?`, StateKey); err != nil {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
