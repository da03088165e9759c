// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/pkg/types"
)

func TestSortNames(t *testing.T) {
	names := func() []string {
		return []string{"section_10.md", "notes.md", "section_2.md", "section_1.md", "appendix.md", "section_11.md"}
	}

	seq := names()
	SortNames(seq, ".md", types.OrderSequence)
	assert.Equal(t, []string{"section_1.md", "section_2.md", "section_10.md", "section_11.md", "appendix.md", "notes.md"}, seq)

	lex := names()
	SortNames(lex, ".md", types.OrderLexical)
	assert.Equal(t, []string{"appendix.md", "notes.md", "section_1.md", "section_10.md", "section_11.md", "section_2.md"}, lex)
}

func TestSortNames_EqualNumbersFallBackToName(t *testing.T) {
	names := []string{"part_3.md", "chapter_3.md", "chapter_03.md"}
	SortNames(names, ".md", types.OrderSequence)
	assert.Equal(t, []string{"chapter_03.md", "chapter_3.md", "part_3.md"}, names)
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"section_2.md", "section_1.md", "section_10.md", "output.json", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.md"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.md", "section_3.md"), []byte("x"), 0o644))

	got, err := Collect(dir, ".md", types.OrderSequence)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "section_1.md"),
		filepath.Join(dir, "section_2.md"),
		filepath.Join(dir, "section_10.md"),
	}, got)
}

func TestCollect_SkipsLockFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"section_1.md", fsutil.LockFileName} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	tests := []struct {
		suffix string
		want   []string
	}{
		{".md", []string{"section_1.md"}},
		{"", []string{"section_1.md"}},
		{".lock", nil},
	}
	for _, tt := range tests {
		t.Run("suffix="+tt.suffix, func(t *testing.T) {
			got, err := Collect(dir, tt.suffix, types.OrderSequence)
			require.NoError(t, err)
			var names []string
			for _, p := range got {
				names = append(names, filepath.Base(p))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestCollect_Errors(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "missing"), ".md", types.OrderSequence)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = Collect(t.TempDir(), ".md", types.OrderPolicy("shuffle"))
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestCollect_EmptyDir(t *testing.T) {
	got, err := Collect(t.TempDir(), ".md", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
