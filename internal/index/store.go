// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps built records in a local SQLite database so that
// repeated exports of the same notes collapse onto one row per content id.
package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/notesplit/internal/record"
	"github.com/pdiddy/notesplit/pkg/types"
)

const dbFile = "notes.db"

// Store manages the record index database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	now        func() time.Time
}

// Open opens or creates the index database at cfg.Dir/notes.db and creates
// the schema if it does not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, &types.OpError{Op: "index.open", Kind: types.KindInvalidConfig, Err: errors.New("index directory is required")}
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, &types.OpError{Op: "index.open", Kind: types.KindIO, Path: cfg.Dir, Err: err}
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open(driverName, dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			started_at TEXT NOT NULL,
			added INTEGER NOT NULL DEFAULT 0,
			duplicates INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			creation_date TEXT NOT NULL,
			last_modified TEXT NOT NULL,
			run_id TEXT NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run ON records(run_id, seq)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	RunID      string
	Added      int
	Duplicates int
}

// Total returns the number of records read from the source document.
func (s IngestSummary) Total() int {
	return s.Added + s.Duplicates
}

// Ingest reads an output.json document and inserts its records. Records whose
// id is already stored are counted as duplicates and left unchanged. The
// whole document is applied in one transaction.
func (s *Store) Ingest(ctx context.Context, path string, w io.Writer) (IngestSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := types.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = types.KindNotFound
		}
		return IngestSummary{}, &types.OpError{Op: "index.ingest", Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	records, err := record.Decode(f)
	if err != nil {
		return IngestSummary{}, &types.OpError{Op: "index.ingest", Kind: types.KindEncoding, Path: path, Err: err}
	}

	summary := IngestSummary{RunID: uuid.NewString()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	startedAt := record.FormatTimestamp(s.now())
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, started_at) VALUES (?, ?, ?)`,
		summary.RunID, path, startedAt,
	); err != nil {
		return IngestSummary{}, fmt.Errorf("recording run: %w", err)
	}

	var seq int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM records`).Scan(&seq); err != nil {
		return IngestSummary{}, fmt.Errorf("reading sequence: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (id, content, creation_date, last_modified, run_id, seq)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		select {
		case <-ctx.Done():
			return IngestSummary{}, ctx.Err()
		default:
		}

		seq++
		res, err := stmt.ExecContext(ctx, r.ID, r.Content, r.CreationDate, r.LastModified, summary.RunID, seq)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting record %s: %w", r.ID, err)
		}
		if n == 0 {
			summary.Duplicates++
			continue
		}
		summary.Added++
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE runs SET added = ?, duplicates = ? WHERE id = ?`,
		summary.Added, summary.Duplicates, summary.RunID,
	); err != nil {
		return IngestSummary{}, fmt.Errorf("updating run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "ingested %s: %d added, %d duplicate(s) (run %s)\n",
		filepath.Base(path), summary.Added, summary.Duplicates, summary.RunID)
	return summary, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
