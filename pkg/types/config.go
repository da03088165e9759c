// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultSentinel is the line content that separates sections in an
// exported notes document.
const DefaultSentinel = "****"

// DefaultSuffix selects section files during record building.
const DefaultSuffix = ".md"

// DefaultEncoding is the charset assumed for documents and section files.
const DefaultEncoding = "utf-8"

// OrderPolicy decides the order in which section files become records.
type OrderPolicy string

const (
	// OrderSequence sorts by the integer embedded in the file name
	// (section_2.md before section_10.md), restoring document order.
	OrderSequence OrderPolicy = "sequence"
	// OrderLexical sorts by file name bytes.
	OrderLexical OrderPolicy = "lexical"
)

// Valid reports whether p names a known policy.
func (p OrderPolicy) Valid() bool {
	return p == OrderSequence || p == OrderLexical
}

// DateSource decides where a record's creationDate and lastModified come from.
type DateSource string

const (
	// DatesRun stamps every record with the instant of the run.
	DatesRun DateSource = "run"
	// DatesNote uses the note's "*Created at: ...*" line when present and
	// falls back to the run instant otherwise.
	DatesNote DateSource = "note"
	// DatesNoteStrict requires the "*Created at: ...*" line; a section
	// without a parseable one fails.
	DatesNoteStrict DateSource = "note-strict"
)

// Valid reports whether d names a known date source.
func (d DateSource) Valid() bool {
	return d == DatesRun || d == DatesNote || d == DatesNoteStrict
}

// SplitConfig holds settings for the split stage.
type SplitConfig struct {
	// Source is the document to split.
	Source string `json:"source" yaml:"source"`

	// Target is the directory that receives section_<n>.md files. Created if absent.
	Target string `json:"target" yaml:"target"`

	// Sentinel is the delimiter line (default "****"). Surrounding whitespace
	// on the document line is ignored when matching.
	Sentinel string `json:"sentinel" yaml:"sentinel"`

	// Encoding is the IANA charset of Source (default utf-8).
	Encoding string `json:"encoding" yaml:"encoding"`

	// Clean removes section files left in Target by earlier runs before writing.
	Clean bool `json:"clean" yaml:"clean"`
}

// BuildConfig holds settings for the build stage.
type BuildConfig struct {
	// Source is the directory of section files, scanned non-recursively.
	Source string `json:"source" yaml:"source"`

	// Target is the directory that receives output.json. Created if absent.
	Target string `json:"target" yaml:"target"`

	// Suffix filters Source entries (default ".md").
	Suffix string `json:"suffix" yaml:"suffix"`

	// Order selects how entries are ordered in the output (default sequence).
	Order OrderPolicy `json:"order" yaml:"order"`

	// Timestamp pins creationDate and lastModified (RFC 3339). Empty means
	// the processing instant of the run.
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Encoding is the IANA charset of the section files (default utf-8).
	Encoding string `json:"encoding" yaml:"encoding"`

	// Dates selects the date source (default run).
	Dates DateSource `json:"dates" yaml:"dates"`

	// DateZone is the IANA time zone of note dates written without an
	// offset (default UTC).
	DateZone string `json:"date_zone" yaml:"date_zone"`
}

// IndexConfig holds settings for the local record index.
type IndexConfig struct {
	// Dir contains the SQLite database (notes.db).
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default search limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// LogConfig holds diagnostic logger settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Split SplitConfig `json:"split" yaml:"split"`
	Build BuildConfig `json:"build" yaml:"build"`
	Index IndexConfig `json:"index" yaml:"index"`
	Log   LogConfig   `json:"log" yaml:"log"`
}
