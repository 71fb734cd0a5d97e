package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphclone/clone"
	"github.com/katalvlaran/graphclone/codec/yamlgraph"
)

var (
	cloneOutput string
	cloneEager  bool
)

var cloneCmd = &cobra.Command{
	Use:   "clone <file.yaml>",
	Short: "Deep-clone a YAML document and print the clone",
	Long: `Decode a YAML document into an object graph, deep-clone it and encode the
clone back to YAML. Shared and cyclic references are written as anchors and
aliases.

Examples:
  graphclone clone graph.yaml
  graphclone clone graph.yaml --output copy.yaml
  graphclone clone graph.yaml --eager -v`,
	Args: cobra.ExactArgs(1),
	RunE: runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)

	cloneCmd.Flags().StringVar(&cloneOutput, "output", "", "Output file (default: stdout)")
	cloneCmd.Flags().BoolVar(&cloneEager, "eager", false, "Resolve back and shared edges while copying")
}

func runClone(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	graph, err := yamlgraph.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	res, err := clone.Clone(graph,
		clone.WithEagerLinks(cloneEager),
		clone.WithLogger(newLogger(cmd.ErrOrStderr())),
	)
	if err != nil {
		return fmt.Errorf("failed to clone: %w", err)
	}

	out, err := yamlgraph.Encode(res.Value)
	if err != nil {
		return fmt.Errorf("failed to encode clone: %w", err)
	}

	if cloneOutput != "" {
		if err := os.WriteFile(cloneOutput, out, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Clone written to %s\n", cloneOutput)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}
