// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a notes document into sections at sentinel lines
// and persists each section as its own Markdown file.
package segment

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/pdiddy/notesplit/internal/textenc"
	"github.com/pdiddy/notesplit/pkg/types"
)

// Options controls how a document is read and where it is cut.
type Options struct {
	// Sentinel is the delimiter line. Empty means types.DefaultSentinel.
	Sentinel string

	// Encoding is the IANA charset of the document. Empty means UTF-8.
	Encoding string
}

func (o Options) sentinel() string {
	if o.Sentinel == "" {
		return types.DefaultSentinel
	}
	return o.Sentinel
}

// ValidateSentinel rejects delimiters that could never match a trimmed line
// or would match every blank line.
func ValidateSentinel(sentinel string) error {
	if strings.TrimSpace(sentinel) == "" || strings.TrimSpace(sentinel) != sentinel {
		return &types.OpError{
			Op:   "segment.sentinel",
			Kind: types.KindInvalidConfig,
			Err:  fmt.Errorf("sentinel %q must be non-empty without surrounding whitespace", sentinel),
		}
	}
	if strings.ContainsAny(sentinel, "\r\n") {
		return &types.OpError{
			Op:   "segment.sentinel",
			Kind: types.KindInvalidConfig,
			Err:  fmt.Errorf("sentinel %q must fit on one line", sentinel),
		}
	}
	return nil
}

// Segment reads the whole document from r, decodes it, and returns its
// sections in encounter order.
func Segment(r io.Reader, opts Options) ([]types.Section, error) {
	sentinel := opts.sentinel()
	if err := ValidateSentinel(sentinel); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &types.OpError{Op: "segment.read", Kind: types.KindIO, Err: err}
	}

	text, err := textenc.Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	return SegmentText(textenc.UniversalNewlines(text), sentinel), nil
}

// SegmentText cuts text into sections. A line whose trimmed content equals
// sentinel closes the current section and is dropped. Sections are never
// empty: a sentinel with nothing buffered emits nothing.
func SegmentText(text, sentinel string) []types.Section {
	var (
		sections []types.Section
		buf      []string
	)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		sections = append(sections, types.Section{Index: len(sections) + 1, Lines: buf})
		buf = nil
	}

	for _, line := range splitLines(text) {
		if strings.TrimFunc(line, isSpace) == sentinel {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return sections
}

// isSpace reports whitespace for sentinel matching: Unicode white space plus
// the ASCII file, group, record and unit separators (0x1c-0x1f).
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// splitLines returns the lines of text with their "\n" terminators. The final
// line keeps no terminator when text does not end with one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
