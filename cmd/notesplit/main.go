// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notesplit CLI.
// Stages: split (document -> section files), build (section files ->
// output.json), and index (output.json -> local SQLite store).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notesplit/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// app is the state shared by the commands of one invocation: its config
// and its diagnostic logger. Diagnostics go to stderr; stage progress goes
// to the command's output.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

// newRootCmd builds the full command tree with its own config instance, so
// flag values and config never carry over between invocations.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "notesplit",
		Short: "Split exported notes into sections and build a JSON record collection",
		Long: `notesplit prepares an exported notes document for ingestion by an
indexing or storage system.

split cuts the document at sentinel lines ("****" by default) into
section_<n>.md files. build turns a directory of section files into
output.json: one record per section with a content-derived id, the text
with line breaks collapsed to spaces, and creation/modification dates.
index keeps built records in a local SQLite store keyed by id.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")
			if err := a.initConfig(cfgFile, cmd.ErrOrStderr()); err != nil {
				return err
			}
			l, err := logging.New(os.Stderr, logging.Options{
				Level:  a.v.GetString("log.level"),
				Format: a.v.GetString("log.format"),
			})
			if err != nil {
				return err
			}
			a.logger = l
			if used := a.v.ConfigFileUsed(); used != "" {
				a.logger.Debug("config loaded", slog.String("path", used))
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./notesplit.yaml or ~/.config/notesplit/notesplit.yaml)")
	root.PersistentFlags().String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "text", "diagnostic log format: text or json")

	a.bindFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	a.bindFlag("log.format", root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(
		newSplitCmd(a),
		newBuildCmd(a),
		newIndexCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) initConfig(cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("notesplit")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "notesplit"))
		}
	}

	a.v.SetEnvPrefix("NOTESPLIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	err := a.v.ReadInConfig()
	switch {
	case err == nil:
		fmt.Fprintln(stderr, "Using config file:", a.v.ConfigFileUsed())
	case cfgFile != "":
		return fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
