// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesplit/internal/record"
	"github.com/pdiddy/notesplit/pkg/types"
)

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [sections-dir]",
		Short: "Build output.json from a directory of section files",
		Long: `Build reads every file with the configured suffix in the source
directory (not recursively) and writes one record per file to
<target>/output.json. Each record carries the MD5 of the section text as
its id, the text with line breaks collapsed to spaces, and creation and
modification dates taken from the run (or --timestamp).

With --dates note, a section's "*Created at: dd/mm/yyyy hh:mm*" line
supplies its dates instead; sections without one keep the run date.
--dates note-strict fails those sections.

Files that cannot be read or decoded are reported and skipped; the rest
are still written. The command exits non-zero when any file failed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBuild,
	}

	cmd.Flags().String("source", "sections", "directory of section files")
	cmd.Flags().String("target", ".", "directory for output.json")
	cmd.Flags().String("suffix", types.DefaultSuffix, "file name suffix of section files")
	cmd.Flags().String("order", string(types.OrderSequence), "record order: sequence (by section number) or lexical (by file name)")
	cmd.Flags().String("timestamp", "", "RFC 3339 instant for creationDate/lastModified (default: now)")
	cmd.Flags().String("encoding", types.DefaultEncoding, "charset of the section files (IANA name)")
	cmd.Flags().String("dates", string(types.DatesRun), "date source: run, note (created-at line, else run) or note-strict")
	cmd.Flags().String("date-zone", "UTC", "IANA time zone of created-at dates without an offset")

	for _, name := range []string{"source", "target", "suffix", "order", "timestamp", "encoding", "dates"} {
		a.bindFlag("build."+name, cmd.Flags().Lookup(name))
	}
	a.bindFlag("build.date_zone", cmd.Flags().Lookup("date-zone"))
	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	cfg := a.buildConfig(args)
	a.logger.Debug("build",
		slog.String("source", cfg.Source),
		slog.String("target", cfg.Target),
		slog.String("suffix", cfg.Suffix),
		slog.String("order", string(cfg.Order)),
		slog.String("dates", string(cfg.Dates)),
	)

	out := cmd.OutOrStdout()
	result, err := record.Build(cfg, out)
	if err != nil {
		return err
	}
	if len(result.Undated) > 0 {
		a.logger.Warn("sections without a created-at date", slog.Int("count", len(result.Undated)))
	}

	if result.HasFailures() {
		renderFailures(out, result.Failed, isTerminal(os.Stdout))
		return fmt.Errorf("%d section file(s) failed", len(result.Failed))
	}
	return nil
}

func (a *app) buildConfig(args []string) types.BuildConfig {
	cfg := types.BuildConfig{
		Source:    a.v.GetString("build.source"),
		Target:    a.v.GetString("build.target"),
		Suffix:    a.v.GetString("build.suffix"),
		Order:     types.OrderPolicy(a.v.GetString("build.order")),
		Timestamp: a.v.GetString("build.timestamp"),
		Encoding:  a.v.GetString("build.encoding"),
		Dates:     types.DateSource(a.v.GetString("build.dates")),
		DateZone:  a.v.GetString("build.date_zone"),
	}
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	return cfg
}
