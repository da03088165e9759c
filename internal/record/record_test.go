// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedStamp = time.Date(2023, 9, 14, 17, 28, 8, 6_000_000, time.UTC)

func TestID(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"A\n", "bf072e9119077b4e76437a93986787ef"},
		{"B\nC\n", "cb0ca34f59548a48cc3ca5d294e027af"},
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"héllo\n", "1082e4bdaee22cfa4057c4f6a5e4c3da"},
	}
	for _, tt := range tests {
		got := ID(tt.text)
		assert.Equal(t, tt.want, got, "ID(%q)", tt.text)
		assert.Len(t, got, 32)
		assert.Equal(t, strings.ToLower(got), got)
	}
}

func TestID_DiffersByOneByte(t *testing.T) {
	assert.NotEqual(t, ID("B\nC\n"), ID("B\nC \n"))
	assert.NotEqual(t, ID("A\n"), ID("A"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A\n", "A "},
		{"B\nC\n", "B C "},
		{"a\r\nb", "a b"},
		{"a\rb", "a b"},
		{"\n\n", "  "},
		{"tabs\tand  spaces\n", "tabs\tand  spaces "},
		{"", ""},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.in)
		assert.NotContains(t, got, "\n")
		assert.NotContains(t, got, "\r")
		assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
	}
}

func TestNew_HashesBeforeNormalizing(t *testing.T) {
	rec := New("B\nC\n", fixedStamp)

	assert.Equal(t, ID("B\nC\n"), rec.ID)
	assert.NotEqual(t, ID("B C "), rec.ID)
	assert.Equal(t, "B C ", rec.Content)
	assert.Equal(t, "2023-09-14T17:28:08.006Z", rec.CreationDate)
	assert.Equal(t, rec.CreationDate, rec.LastModified)
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, 1, 2, 5, 4, 5, 123_456_789, loc)
	assert.Equal(t, "2024-01-02T03:04:05.123Z", FormatTimestamp(ts))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", FormatTimestamp(ts.Truncate(time.Second)))
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2023-09-14T17:28:08.006Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(fixedStamp))

	got, err = ParseTimestamp(" 2023-09-14T19:28:08+02:00 ")
	require.NoError(t, err)
	assert.Equal(t, "2023-09-14T17:28:08.000Z", FormatTimestamp(got))

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}
