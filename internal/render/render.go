// Package render draws valve networks with Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/maisem/pressure"
)

// Options configures DOT output.
type Options struct {
	// Costs labels every arc with its travel time. Arcs costing one minute
	// are only labelled when Costs is set.
	Costs bool
}

// ToDOT converts ix to Graphviz DOT. Valves with flow are filled, the start
// valve is drawn with a double outline, and arcs costing more than a minute
// (as in a collapsed index) are labelled with their cost.
func ToDOT(ix *pressure.Index, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph valves {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for i, v := range ix.Valves {
		attrs := []string{fmt.Sprintf("label=%q", label(v))}
		if i < ix.K {
			attrs = append(attrs, `style=filled`, `fillcolor="#f4c542"`)
		}
		if i == ix.Start {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, arcs := range ix.Adj {
		from := ix.Valves[i].Name
		for _, a := range arcs {
			to := ix.Valves[a.To].Name
			if opts.Costs || a.Cost != 1 {
				fmt.Fprintf(&buf, "  %q -> %q [label=\"%d\"];\n", from, to, a.Cost)
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func label(v pressure.Valve) string {
	if v.Rate == 0 {
		return v.Name
	}
	return fmt.Sprintf("%s\n%d", v.Name, v.Rate)
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
