// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/internal/textenc"
	"github.com/pdiddy/notesplit/pkg/types"
)

// Failure describes a section file that could not become a record.
type Failure struct {
	Path string
	Err  error
}

// BuildResult holds the outcome of a build run.
type BuildResult struct {
	// Records are the built records in output order.
	Records []types.Record

	// Succeeded lists record ids in output order.
	Succeeded []string

	// Failed lists entries that were skipped, with the reason.
	Failed []Failure

	// Undated lists entries built with the run instant because their note
	// date was missing or unreadable (DatesNote only).
	Undated []string

	// Output is the path of the written document.
	Output string

	// Stamp is the run instant. Every record carries it unless note dates
	// are in use.
	Stamp time.Time
}

// Total returns the number of entries processed.
func (r BuildResult) Total() int {
	return len(r.Succeeded) + len(r.Failed)
}

// HasFailures reports whether any entry failed.
func (r BuildResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// Option configures Build.
type Option func(*builder)

// WithNow replaces the clock used when no timestamp is pinned.
func WithNow(now func() time.Time) Option {
	return func(b *builder) { b.now = now }
}

type builder struct {
	now func() time.Time
}

// Build runs the build stage: it collects section files from cfg.Source,
// turns each into a record, and writes cfg.Target/output.json. An entry that
// cannot be read or decoded, or lacks a note date under DatesNoteStrict, is
// reported in BuildResult.Failed and the run continues. Enumeration and
// output errors abort the run.
func Build(cfg types.BuildConfig, w io.Writer, opts ...Option) (BuildResult, error) {
	b := builder{now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}

	var result BuildResult

	cfg, loc, err := normalizeConfig(cfg)
	if err != nil {
		return result, err
	}

	result.Stamp = b.now().UTC()
	if cfg.Timestamp != "" {
		// Already validated by normalizeConfig.
		result.Stamp, _ = ParseTimestamp(cfg.Timestamp)
	}

	paths, err := Collect(cfg.Source, cfg.Suffix, cfg.Order)
	if err != nil {
		return result, err
	}

	unlock, err := fsutil.Lock(cfg.Target)
	if err != nil {
		return result, err
	}
	defer unlock()

	result.Records = make([]types.Record, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		text, err := ReadSection(path, cfg.Encoding)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
			result.Failed = append(result.Failed, Failure{Path: path, Err: err})
			continue
		}

		stamp := result.Stamp
		if cfg.Dates != types.DatesRun {
			created, err := noteStamp(path, text, loc)
			switch {
			case err == nil:
				stamp = created
			case cfg.Dates == types.DatesNoteStrict:
				fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
				result.Failed = append(result.Failed, Failure{Path: path, Err: err})
				continue
			default:
				fmt.Fprintf(w, "undated: %s (%v)\n", name, err)
				result.Undated = append(result.Undated, path)
			}
		}

		rec := New(text, stamp)
		fmt.Fprintf(w, "built:   %s %s\n", name, rec.ID)
		result.Records = append(result.Records, rec)
		result.Succeeded = append(result.Succeeded, rec.ID)
	}

	out, err := WriteFile(cfg.Target, result.Records)
	if err != nil {
		return result, err
	}
	result.Output = out

	fmt.Fprintf(w, "\nBuild summary: %d built, %d failed (total: %d)\n",
		len(result.Succeeded), len(result.Failed), result.Total())
	fmt.Fprintf(w, "Conversion complete. JSON file saved to %s\n", out)
	return result, nil
}

// ReadSection reads and decodes one section file with universal newlines.
func ReadSection(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := types.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = types.KindNotFound
		}
		return "", &types.OpError{Op: "record.read", Kind: kind, Path: path, Err: err}
	}

	text, err := textenc.Decode(data, encoding)
	if err != nil {
		var oe *types.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = path
		}
		return "", err
	}
	return textenc.UniversalNewlines(text), nil
}

func noteStamp(path, text string, loc *time.Location) (time.Time, error) {
	created, found, err := NoteCreatedAt(text, loc)
	if !found {
		err = fmt.Errorf("no %q line", CreatedAtPrefix)
	}
	if err != nil {
		return time.Time{}, &types.OpError{Op: "record.date", Kind: types.KindFormat, Path: path, Err: err}
	}
	return created, nil
}

func normalizeConfig(cfg types.BuildConfig) (types.BuildConfig, *time.Location, error) {
	invalid := func(format string, args ...any) error {
		return &types.OpError{Op: "record.config", Kind: types.KindInvalidConfig, Err: fmt.Errorf(format, args...)}
	}

	if strings.TrimSpace(cfg.Source) == "" {
		return cfg, nil, invalid("source directory is required")
	}
	if strings.TrimSpace(cfg.Target) == "" {
		return cfg, nil, invalid("target directory is required")
	}
	if cfg.Suffix == "" {
		cfg.Suffix = types.DefaultSuffix
	}
	if cfg.Order == "" {
		cfg.Order = types.OrderSequence
	}
	if !cfg.Order.Valid() {
		return cfg, nil, invalid("unknown order policy %q: use %s or %s", cfg.Order, types.OrderSequence, types.OrderLexical)
	}
	if !textenc.Supported(cfg.Encoding) {
		return cfg, nil, invalid("unsupported encoding %q", cfg.Encoding)
	}
	if cfg.Timestamp != "" {
		if _, err := ParseTimestamp(cfg.Timestamp); err != nil {
			return cfg, nil, invalid("timestamp %q: %v", cfg.Timestamp, err)
		}
	}
	if cfg.Dates == "" {
		cfg.Dates = types.DatesRun
	}
	if !cfg.Dates.Valid() {
		return cfg, nil, invalid("unknown date source %q: use %s, %s or %s", cfg.Dates, types.DatesRun, types.DatesNote, types.DatesNoteStrict)
	}
	if cfg.DateZone == "" {
		cfg.DateZone = "UTC"
	}
	loc, err := time.LoadLocation(cfg.DateZone)
	if err != nil {
		return cfg, nil, invalid("date zone %q: %v", cfg.DateZone, err)
	}
	return cfg, loc, nil
}
