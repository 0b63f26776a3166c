package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lex00/streamwire-aws-go/internal/graph"
)

func newGraphCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "graph <config>",
		Short: "Generate DOT graph of resource dependencies",
		Long: `Generate a DOT or Mermaid format graph showing resource dependencies.

The output can be rendered with Graphviz:
    streamwire-aws graph stream.yaml | dot -Tpng -o deps.png

Or used in GitHub markdown (Mermaid format):
    streamwire-aws graph stream.yaml -f mermaid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format: dot or mermaid")

	return cmd
}

func runGraph(configPath, format string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, err := synthesize(cfg)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	var graphFormat graph.Format
	switch format {
	case "dot":
		graphFormat = graph.FormatDOT
	case "mermaid":
		graphFormat = graph.FormatMermaid
	default:
		return fmt.Errorf("unknown format: %s (use 'dot' or 'mermaid')", format)
	}

	gen := &graph.Generator{Format: graphFormat}
	return gen.Generate(ctx, os.Stdout)
}
