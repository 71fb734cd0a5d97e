package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphclone/codec/yamlgraph"
	"github.com/katalvlaran/graphclone/container"
	"github.com/katalvlaran/graphclone/topology"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.yaml>",
	Short: "Report containers, shared references and cycles of a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	graph, err := yamlgraph.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

	w := cmd.OutOrStdout()
	root, ok := container.AsNode(graph)
	if !ok {
		fmt.Fprintf(w, "containers: 0\n")
		return nil
	}

	walk, err := topology.Walk(root)
	if err != nil {
		return err
	}
	shared := topology.Shared(root)
	_, cycles := topology.DetectCycles(root)

	fmt.Fprintf(w, "containers: %d\n", len(walk.Order))
	fmt.Fprintf(w, "shared: %d\n", len(shared))
	fmt.Fprintf(w, "cycles: %d\n", len(cycles))
	for _, c := range cycles {
		fmt.Fprintf(w, "  %s\n", c)
	}

	return nil
}
