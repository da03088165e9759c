// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record turns section files into hashed, normalized, timestamped
// records and serializes them as one JSON document.
package record

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pdiddy/notesplit/pkg/types"
)

// ID returns the content identity of text: the lowercase hex MD5 digest of
// its UTF-8 bytes. It is a stable handle, not a security primitive.
func ID(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

var terminatorReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// Normalize collapses every line terminator to a single space. No other
// whitespace is touched.
func Normalize(text string) string {
	return terminatorReplacer.Replace(text)
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(types.TimestampLayout)
}

// ParseTimestamp accepts RFC 3339 input (with or without fractional
// seconds) and returns it in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// New builds a record from section text. The id is computed before
// normalization.
func New(text string, stamp time.Time) types.Record {
	id := ID(text)
	ts := FormatTimestamp(stamp)
	return types.Record{
		ID:           id,
		Content:      Normalize(text),
		CreationDate: ts,
		LastModified: ts,
	}
}
