// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	// Zone names in BuildConfig.DateZone resolve on hosts without a
	// zoneinfo database.
	_ "time/tzdata"
)

// CreatedAtPrefix opens the line that carries a note's creation date in
// exported notes, e.g. "*Created at: 14/09/2023 17:28*".
const CreatedAtPrefix = "*Created at:"

// noteDateLayout is the day-first layout the notes exporter writes.
const noteDateLayout = "02/01/2006 15:04"

// NoteCreatedAt finds the last created-at line in text and parses its date.
// found is false when text has no such line. err is set when the line exists
// but its date cannot be parsed.
func NoteCreatedAt(text string, loc *time.Location) (t time.Time, found bool, err error) {
	line, found := lastCreatedAtLine(text)
	if !found {
		return time.Time{}, false, nil
	}
	t, err = ParseNoteDate(line, loc)
	return t, true, err
}

func lastCreatedAtLine(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimLeftFunc(lines[i], unicode.IsSpace)
		if strings.HasPrefix(line, CreatedAtPrefix) {
			return line, true
		}
	}
	return "", false
}

// ParseNoteDate parses a created-at line. RFC 3339 values keep their offset;
// dd/mm/yyyy hh:mm values are read in loc (UTC when nil). The result is UTC.
func ParseNoteDate(line string, loc *time.Location) (time.Time, error) {
	v := strings.TrimPrefix(strings.TrimSpace(line), CreatedAtPrefix)
	v = strings.TrimSpace(strings.TrimRight(v, "*"))

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t.UTC(), nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(noteDateLayout, v, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("created-at date %q: want dd/mm/yyyy hh:mm or RFC 3339", v)
	}
	return t.UTC(), nil
}
