// Package graph generates DOT and Mermaid format dependency graphs from a
// synthesis context.
package graph

import (
	"io"
	"strings"

	"github.com/emicklei/dot"

	"github.com/lex00/streamwire-aws-go/synth"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// Generator creates dependency graphs from registered resources.
type Generator struct {
	// Format specifies the output format (dot or mermaid). Defaults to dot.
	Format Format
}

// Generate creates a dependency graph of the context's resources and their
// DependsOn edges, and writes it to w.
func (g *Generator) Generate(ctx *synth.Context, w io.Writer) error {
	graph := g.buildGraph(ctx)

	format := g.Format
	if format == "" {
		format = FormatDOT
	}

	var output string
	if format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := w.Write([]byte(output))
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(ctx *synth.Context) (string, error) {
	var sb strings.Builder
	if err := g.Generate(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// buildGraph creates the dot.Graph structure from the context.
func (g *Generator) buildGraph(ctx *synth.Context) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	for _, id := range ctx.IDs() {
		n := graph.Node(id)
		n.Label(id + "\\n[" + ctx.TypeOf(id) + "]")
	}

	for _, id := range ctx.IDs() {
		for _, dep := range ctx.DependsOn(id) {
			if ctx.TypeOf(dep) == "" {
				continue
			}
			graph.Edge(graph.Node(id), graph.Node(dep))
		}
	}

	return graph
}
