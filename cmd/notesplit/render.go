// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/notesplit/internal/record"
)

// renderFailures prints the entries a build run skipped. Terminals get a
// table; pipes get one tab-separated line per entry.
func renderFailures(w io.Writer, failures []record.Failure, pretty bool) {
	if len(failures) == 0 {
		return
	}

	if !pretty {
		for _, f := range failures {
			fmt.Fprintf(w, "%s\t%v\n", f.Path, f.Err)
		}
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "File", "Reason"})
	for i, f := range failures {
		tw.AppendRow(table.Row{i + 1, filepath.Base(f.Path), f.Err.Error()})
	}
	fmt.Fprintln(w, tw.Render())
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
