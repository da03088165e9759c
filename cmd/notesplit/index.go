// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesplit/internal/index"
	"github.com/pdiddy/notesplit/internal/record"
	"github.com/pdiddy/notesplit/pkg/types"
)

func newIndexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage the local record index (ingest, search, export)",
		Long: `Index keeps built records in a local SQLite database. Records are keyed
by their content id, so ingesting overlapping output.json files stores each
distinct section once.`,
	}

	// Shared flags on the parent command, inherited by subcommands.
	cmd.PersistentFlags().String("index-dir", "index", "directory holding notes.db and exports")
	cmd.PersistentFlags().Int("max-results", 20, "default maximum number of search results")
	a.bindFlag("index.dir", cmd.PersistentFlags().Lookup("index-dir"))
	a.bindFlag("index.max_results", cmd.PersistentFlags().Lookup("max-results"))

	cmd.AddCommand(
		a.newIndexIngestCmd(),
		a.newIndexSearchCmd(),
		a.newIndexExportCmd(),
	)
	return cmd
}

// --- ingest subcommand ---

func (a *app) newIndexIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [output.json...]",
		Short: "Add the records of one or more output.json files to the index",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runIndexIngest,
	}
}

func (a *app) runIndexIngest(cmd *cobra.Command, args []string) error {
	store, err := index.Open(a.indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	var total index.IngestSummary
	for _, path := range args {
		summary, err := store.Ingest(cmd.Context(), path, out)
		if err != nil {
			return err
		}
		total.Added += summary.Added
		total.Duplicates += summary.Duplicates
	}
	if len(args) > 1 {
		fmt.Fprintf(out, "\nadded: %d, duplicates: %d\n", total.Added, total.Duplicates)
	}
	return nil
}

// --- search subcommand ---

func (a *app) newIndexSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search indexed records by content",
		RunE:  a.runIndexSearch,
	}
	cmd.Flags().Int("limit", 0, "maximum results (0 = use default, -1 = all)")
	cmd.Flags().String("run", "", "only records first added by this ingest run id")
	cmd.Flags().Bool("json", false, "output results in the output.json format")
	return cmd
}

func (a *app) runIndexSearch(cmd *cobra.Command, args []string) error {
	store, err := index.Open(a.indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runID, _ := cmd.Flags().GetString("run")
	results, err := store.Search(cmd.Context(), index.SearchOptions{
		Query:      strings.Join(args, " "),
		RunID:      runID,
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return record.Encode(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}
	for _, r := range results {
		content := r.Content
		if runes := []rune(content); len(runes) > 70 {
			content = string(runes[:67]) + "..."
		}
		fmt.Fprintf(out, "%s  %s\n", r.ID, content)
	}
	fmt.Fprintf(out, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

func (a *app) newIndexExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export indexed records to YAML or JSON",
		RunE:  a.runIndexExport,
	}
	cmd.Flags().String("format", "yaml", "export format: yaml or json")
	cmd.Flags().String("out", "", "export file (default: <index-dir>/export.<format>)")
	cmd.Flags().String("query", "", "only export records whose content contains this text")
	return cmd
}

func (a *app) runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("out")
	query, _ := cmd.Flags().GetString("query")

	store, err := index.Open(a.indexConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := index.SearchOptions{Query: query}
	var n int
	switch format {
	case "yaml", "":
		if path == "" {
			path = store.ExportPath("yaml")
		}
		n, err = store.ExportYAML(cmd.Context(), path, opts)
	case "json":
		if path == "" {
			path = store.ExportPath("json")
		}
		n, err = store.ExportJSON(cmd.Context(), path, opts)
	default:
		return &types.OpError{Op: "index.export", Kind: types.KindInvalidConfig, Err: fmt.Errorf("unsupported format %q: use yaml or json", format)}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", n, path)
	return nil
}

// --- shared helpers ---

func (a *app) indexConfig() types.IndexConfig {
	return types.IndexConfig{
		Dir:        a.v.GetString("index.dir"),
		MaxResults: a.v.GetInt("index.max_results"),
	}
}
