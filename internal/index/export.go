// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/internal/record"
	"github.com/pdiddy/notesplit/pkg/types"
)

// ExportPath returns the default export location for a format.
func (s *Store) ExportPath(format string) string {
	return filepath.Join(s.dir, "export."+format)
}

// ExportYAML writes the records matching opts to path as a YAML sequence.
func (s *Store) ExportYAML(ctx context.Context, path string, opts SearchOptions) (int, error) {
	opts.MaxResults = -1
	records, err := s.Search(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return 0, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := writeExport(path, data); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ExportJSON writes the records matching opts to path in the output.json
// format, so an export can be fed back to another index.
func (s *Store) ExportJSON(ctx context.Context, path string, opts SearchOptions) (int, error) {
	opts.MaxResults = -1
	records, err := s.Search(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	var buf bytes.Buffer
	if err := record.Encode(&buf, records); err != nil {
		return 0, err
	}
	if err := writeExport(path, buf.Bytes()); err != nil {
		return 0, err
	}
	return len(records), nil
}

// writeExport creates the parent directory of path and replaces path with data.
func writeExport(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &types.OpError{Op: "index.export", Kind: types.KindIO, Path: dir, Err: err}
	}
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return &types.OpError{Op: "index.export", Kind: types.KindIO, Path: path, Err: err}
	}
	return nil
}
