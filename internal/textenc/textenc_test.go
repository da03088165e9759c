// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notesplit/pkg/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		charset string
		want    string
		kind    types.ErrorKind
	}{
		{name: "utf-8 default", data: []byte("héllo ✓"), want: "héllo ✓"},
		{name: "utf-8 explicit", data: []byte("abc"), charset: "UTF-8", want: "abc"},
		{name: "bom is kept", data: []byte("\xef\xbb\xbfA\n"), want: "\ufeffA\n"},
		{name: "invalid utf-8", data: []byte("ok\xff\xfe"), kind: types.KindEncoding},
		{name: "latin-1", data: []byte{'c', 'a', 'f', 0xe9}, charset: "ISO-8859-1", want: "café"},
		{name: "windows-1252", data: []byte{0x80}, charset: "windows-1252", want: "€"},
		{name: "unknown charset", data: []byte("x"), charset: "klingon-8", kind: types.KindInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.charset)
			if tt.kind != "" {
				require.Error(t, err)
				assert.True(t, types.IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(""))
	assert.True(t, Supported("utf8"))
	assert.True(t, Supported("windows-1252"))
	assert.False(t, Supported("klingon-8"))
}

func TestUniversalNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc\n", UniversalNewlines("a\r\nb\rc\n"))
	assert.Equal(t, "a\n\nb", UniversalNewlines("a\r\rb"))
	assert.Equal(t, "plain\n", UniversalNewlines("plain\n"))
}
