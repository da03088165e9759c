// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/notesplit/pkg/types"
)

// SearchOptions holds parameters for index queries.
type SearchOptions struct {
	// Query is matched as a substring of content after Unicode case
	// folding of both sides.
	// Empty matches every record.
	Query string

	// RunID restricts results to records first added by one ingest run.
	RunID string

	// MaxResults limits result count. Zero uses the store default; a
	// negative value means no limit.
	MaxResults int
}

// Search returns matching records in ingest order.
func (s *Store) Search(ctx context.Context, opts SearchOptions) ([]types.Record, error) {
	limit := opts.MaxResults
	if limit == 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, content, creation_date, last_modified FROM records WHERE 1=1`)
	if opts.Query != "" {
		qb.WriteString(` AND instr(fold(content), ?) > 0`)
		args = append(args, foldText(opts.Query))
	}
	if opts.RunID != "" {
		qb.WriteString(` AND run_id = ?`)
		args = append(args, opts.RunID)
	}
	qb.WriteString(` ORDER BY seq`)
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.ID, &r.Content, &r.CreationDate, &r.LastModified); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get returns the record with the given id, or a not-found error.
func (s *Store) Get(ctx context.Context, id string) (types.Record, error) {
	var r types.Record
	err := s.db.QueryRowContext(ctx,
		`SELECT id, content, creation_date, last_modified FROM records WHERE id = ?`, id,
	).Scan(&r.ID, &r.Content, &r.CreationDate, &r.LastModified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, &types.OpError{Op: "index.get", Kind: types.KindNotFound, Err: fmt.Errorf("record %s", id)}
		}
		return r, fmt.Errorf("loading record %s: %w", id, err)
	}
	return r, nil
}
