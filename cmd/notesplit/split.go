// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesplit/internal/segment"
	"github.com/pdiddy/notesplit/pkg/types"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [document]",
		Short: "Split a notes document into section files",
		Long: `Split reads one document and writes every span between sentinel lines
to its own file, section_1.md, section_2.md, ... in encounter order. Sentinel
lines are dropped and empty spans produce no file. The target directory is
created if absent.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSplit,
	}

	cmd.Flags().String("source", "", "document to split")
	cmd.Flags().String("target", "sections", "directory for section files")
	cmd.Flags().String("sentinel", types.DefaultSentinel, "delimiter line between sections")
	cmd.Flags().String("encoding", types.DefaultEncoding, "charset of the document (IANA name)")
	cmd.Flags().Bool("clean", false, "remove section files from earlier runs before writing")

	for _, name := range []string{"source", "target", "sentinel", "encoding", "clean"} {
		a.bindFlag("split."+name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func (a *app) runSplit(cmd *cobra.Command, args []string) error {
	cfg := a.splitConfig(args)
	a.logger.Debug("split",
		slog.String("source", cfg.Source),
		slog.String("target", cfg.Target),
		slog.String("sentinel", cfg.Sentinel),
		slog.String("encoding", cfg.Encoding),
	)

	result, err := segment.SplitFile(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.logger.Debug("split finished", slog.Int("sections", result.Sections), slog.Int("removed", result.Removed))
	return nil
}

func (a *app) splitConfig(args []string) types.SplitConfig {
	cfg := types.SplitConfig{
		Source:   a.v.GetString("split.source"),
		Target:   a.v.GetString("split.target"),
		Sentinel: a.v.GetString("split.sentinel"),
		Encoding: a.v.GetString("split.encoding"),
		Clean:    a.v.GetBool("split.clean"),
	}
	if len(args) > 0 {
		cfg.Source = args[0]
	}
	return cfg
}
