// Package cli implements the graphclone command line.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "graphclone",
	Short: "Deep-clone YAML object graphs with shared and cyclic references",
	Long: `graphclone reads YAML documents whose anchors and aliases describe shared
and cyclic references, deep-clones the resulting object graph, and reports on
its topology.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger returns a text logger on w, at debug level when --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
