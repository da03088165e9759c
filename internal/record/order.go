// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/notesplit/internal/fsutil"
	"github.com/pdiddy/notesplit/pkg/types"
)

// trailingNumber captures the last integer in a file stem (section_12 -> 12).
var trailingNumber = regexp.MustCompile(`([0-9]+)$`)

// Collect lists non-directory entries in dir whose names end with suffix, without
// descending into subdirectories, ordered by policy. It returns full paths.
// A lock file left by an earlier run is never collected.
func Collect(dir, suffix string, order types.OrderPolicy) ([]string, error) {
	if order == "" {
		order = types.OrderSequence
	}
	if !order.Valid() {
		return nil, &types.OpError{Op: "record.collect", Kind: types.KindInvalidConfig, Err: fmt.Errorf("unknown order policy %q", order)}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		kind := types.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = types.KindNotFound
		}
		return nil, &types.OpError{Op: "record.collect", Kind: kind, Path: dir, Err: err}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == fsutil.LockFileName || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, e.Name())
	}

	SortNames(names, suffix, order)

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
	}
	return paths, nil
}

// SortNames orders file names in place. Under OrderSequence names carrying a
// trailing integer before the suffix sort numerically and come first; the
// rest follow in lexical order.
func SortNames(names []string, suffix string, order types.OrderPolicy) {
	if order == types.OrderLexical {
		slices.Sort(names)
		return
	}
	slices.SortStableFunc(names, func(a, b string) int {
		na, oka := sequenceNumber(a, suffix)
		nb, okb := sequenceNumber(b, suffix)
		switch {
		case oka && okb:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		case oka:
			return -1
		case okb:
			return 1
		}
		return strings.Compare(a, b)
	})
}

func sequenceNumber(name, suffix string) (uint64, bool) {
	m := trailingNumber.FindString(strings.TrimSuffix(name, suffix))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
