// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notesplit/pkg/types"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.json")
	assert.Error(t, WriteFileAtomic(path, []byte("x"), 0o644))
}

func TestLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sections")

	unlock, err := Lock(dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, LockFileName))

	_, err = Lock(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocked)
	assert.True(t, types.IsKind(err, types.KindIO))

	require.NoError(t, unlock())
	assert.FileExists(t, filepath.Join(dir, LockFileName), "lock file outlives the lock")

	unlock, err = Lock(dir)
	require.NoError(t, err)
	require.NoError(t, unlock())
}

func TestLock_SecondRunWaitsOnSameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LockFileName)

	unlock, err := Lock(dir)
	require.NoError(t, err)
	before, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, unlock())

	unlock, err = Lock(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, unlock()) }()
	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after), "relock must reuse the existing lock file")

	_, err = Lock(dir)
	assert.ErrorIs(t, err, ErrLocked)
}
