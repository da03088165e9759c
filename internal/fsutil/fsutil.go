// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil holds the filesystem helpers shared by the split and build
// stages: atomic file replacement and an advisory lock on a target directory.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/pdiddy/notesplit/pkg/types"
)

// LockFileName is created inside a locked target directory.
const LockFileName = ".notesplit.lock"

// WriteFileAtomic writes data to a temporary file next to path, syncs it, and
// renames it over path. Readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("directory is locked by another notesplit run")

// Lock takes an exclusive advisory lock on dir, creating dir if needed.
// The returned function releases the lock. The lock file is left in place:
// removing it would let a waiting run lock a file that is already unlinked
// while a third run locks a fresh one at the same path.
func Lock(dir string) (func() error, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.OpError{Op: "fsutil.lock", Kind: types.KindIO, Path: dir, Err: err}
	}

	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, &types.OpError{Op: "fsutil.lock", Kind: types.KindIO, Path: path, Err: fmt.Errorf("acquire lock: %w", err)}
	}
	if !ok {
		return nil, &types.OpError{Op: "fsutil.lock", Kind: types.KindIO, Path: path, Err: ErrLocked}
	}

	return fl.Unlock, nil
}
