// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TimestampLayout is the ISO-8601 UTC layout with millisecond precision used
// for record dates (e.g. "2023-09-14T17:28:08.006Z").
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Section is one contiguous span of document lines between two sentinel
// lines, or between a sentinel and the document boundary.
type Section struct {
	// Index is the 1-based position of the section in encounter order.
	Index int `json:"index" yaml:"index"`

	// Lines holds the raw lines with their terminators.
	Lines []string `json:"lines" yaml:"lines"`
}

// Text joins the section lines back into the original span.
func (s Section) Text() string {
	n := 0
	for _, l := range s.Lines {
		n += len(l)
	}
	b := make([]byte, 0, n)
	for _, l := range s.Lines {
		b = append(b, l...)
	}
	return string(b)
}

// Empty reports whether the section holds no lines.
func (s Section) Empty() bool {
	return len(s.Lines) == 0
}

// Record is the canonical unit written to output.json. Field order is part
// of the interchange format.
type Record struct {
	// ID is the 32-character lowercase hex MD5 digest of the section text
	// before normalization.
	ID string `json:"id" yaml:"id"`

	// Content is the section text with every line terminator replaced by a
	// single space.
	Content string `json:"content" yaml:"content"`

	CreationDate string `json:"creationDate" yaml:"creationDate"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
}
