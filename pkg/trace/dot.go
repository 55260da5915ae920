// Package trace renders a walked route as a node-link diagram.
//
// A token sequence becomes a polyline of waypoints starting at the origin,
// emitted as Graphviz DOT and rendered to SVG or PNG with go-graphviz.
package trace

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/driftcli/drift/pkg/route"
)

// Options configures trace rendering.
type Options struct {
	// Detailed includes coordinates in waypoint labels.
	// When false, only the start and end carry labels.
	Detailed bool
}

// ToDOT converts a token sequence to Graphviz DOT format. Waypoints are
// laid out left to right in walk order; each edge carries the token that
// produced it. The resulting DOT string can be rendered with [RenderSVG]
// or [RenderPNG].
func ToDOT(tokens []route.Token, opts Options) (string, error) {
	points, err := route.Waypoints(tokens)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph walk {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for i, p := range points {
		label := waypointLabel(i, len(points), p, opts.Detailed)
		attrs := []string{fmt.Sprintf("label=%q", label)}
		switch i {
		case 0:
			attrs = append(attrs, "fillcolor=lightblue")
		case len(points) - 1:
			attrs = append(attrs, "fillcolor=lightgreen")
		}
		fmt.Fprintf(&buf, "  wp%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, t := range tokens {
		fmt.Fprintf(&buf, "  wp%d -> wp%d [label=%q];\n", i, i+1, t.String())
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func waypointLabel(i, total int, p route.Point, detailed bool) string {
	switch {
	case i == 0:
		return "start"
	case detailed || i == total-1:
		return fmt.Sprintf("(%g, %g)", p.X, p.Y)
	}
	return ""
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
