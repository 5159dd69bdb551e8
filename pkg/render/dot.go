// Package render draws keyboard layouts as adjacency graphs.
//
// Each key becomes a node pinned at its physical position; class-1
// pairs are joined by solid edges and, optionally, class-2 pairs by
// dashed ones. The DOT output can be rendered to SVG or PNG with
// Graphviz for visual inspection of a layout's distance model.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/typomap/typomap/pkg/distance"
	"github.com/typomap/typomap/pkg/layout"
)

// Options configures adjacency graph rendering.
type Options struct {
	// ShowNear includes dashed edges for class-2 (one key out) pairs.
	// Off by default: near edges roughly triple the edge count and
	// clutter small renders.
	ShowNear bool
}

// ToDOT converts a layout and its distance matrix to Graphviz DOT.
// Nodes are pinned to the layout's half-key coordinates so the drawing
// mirrors the physical board; render it with a layout engine that
// honors pinned positions (neato).
func ToDOT(def layout.Definition, m distance.Matrix, opts Options) string {
	positions := layout.Positions(def)

	var buf bytes.Buffer
	buf.WriteString("graph keyboard {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=20, fixedsize=true, width=0.6];\n")
	buf.WriteString("\n")

	for _, row := range def.Rows {
		for _, key := range row {
			pos := positions[key]
			// Row axis points down on a keyboard, up in graphviz.
			fmt.Fprintf(&buf, "  %c [pos=\"%d,%d!\"];\n", key, pos.Col, -pos.Row)
		}
	}

	buf.WriteString("\n")
	for i := 0; i < distance.Alphabet; i++ {
		for j := i + 1; j < distance.Alphabet; j++ {
			switch m[i][j] {
			case distance.Adjacent:
				fmt.Fprintf(&buf, "  %c -- %c;\n", 'a'+i, 'a'+j)
			case distance.Near:
				if opts.ShowNear {
					fmt.Fprintf(&buf, "  %c -- %c [style=dashed, color=grey];\n", 'a'+i, 'a'+j)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
