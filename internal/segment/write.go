// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/pkg/types"
)

// sectionFilePattern matches files produced by WriteSections.
var sectionFilePattern = regexp.MustCompile(`^section_[0-9]+\.md$`)

// SectionFileName returns the file name for the n-th section (1-based).
func SectionFileName(n int) string {
	return fmt.Sprintf("section_%d.md", n)
}

// Result holds the outcome of a split run.
type Result struct {
	Sections int
	Removed  int
	Target   string
}

// WriteSections creates dir if needed and writes one file per section in
// order. Files written before a failure are left in place.
func WriteSections(dir string, sections []types.Section, w io.Writer) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, &types.OpError{Op: "segment.mkdir", Kind: types.KindIO, Path: dir, Err: err}
	}

	written := 0
	for i, s := range sections {
		n := s.Index
		if n <= 0 {
			n = i + 1
		}
		name := SectionFileName(n)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(s.Text()), 0o644); err != nil {
			return written, &types.OpError{Op: "segment.write", Kind: types.KindIO, Path: path, Err: err}
		}
		written++
		fmt.Fprintf(w, "wrote: %s\n", name)
	}
	return written, nil
}

// CleanSections removes section files left in dir by an earlier run. Other
// files are untouched. A missing dir is not an error.
func CleanSections(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, &types.OpError{Op: "segment.clean", Kind: types.KindIO, Path: dir, Err: err}
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !sectionFilePattern.MatchString(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil {
			return removed, &types.OpError{Op: "segment.clean", Kind: types.KindIO, Path: path, Err: err}
		}
		removed++
	}
	return removed, nil
}

// SplitFile runs the split stage: it segments cfg.Source and writes the
// sections into cfg.Target, holding the target lock for the whole run.
func SplitFile(cfg types.SplitConfig, w io.Writer) (Result, error) {
	result := Result{Target: cfg.Target}

	if cfg.Target == "" {
		return result, &types.OpError{Op: "segment.split", Kind: types.KindInvalidConfig, Err: errors.New("target directory is required")}
	}

	f, err := os.Open(cfg.Source)
	if err != nil {
		kind := types.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = types.KindNotFound
		}
		return result, &types.OpError{Op: "segment.open", Kind: kind, Path: cfg.Source, Err: err}
	}
	defer f.Close()

	sections, err := Segment(f, Options{Sentinel: cfg.Sentinel, Encoding: cfg.Encoding})
	if err != nil {
		var oe *types.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = cfg.Source
		}
		return result, err
	}

	unlock, err := fsutil.Lock(cfg.Target)
	if err != nil {
		return result, err
	}
	defer unlock()

	if cfg.Clean {
		removed, err := CleanSections(cfg.Target)
		result.Removed = removed
		if err != nil {
			return result, err
		}
		if removed > 0 {
			fmt.Fprintf(w, "removed %d stale section file(s)\n", removed)
		}
	}

	n, err := WriteSections(cfg.Target, sections, w)
	result.Sections = n
	if err != nil {
		return result, err
	}

	fmt.Fprintf(w, "Split complete. %d section(s) saved to %s\n", n, cfg.Target)
	return result, nil
}
