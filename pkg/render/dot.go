// Package render is C12: a pure debug/demo aid that draws a finalized
// relationship graph as a Graphviz node-link diagram. It never sits on the
// path of Construct or PrintGraph and has no effect on the elimination
// plan.
//
// Grounded on the teacher's pkg/render/nodelink/dot.go: build a DOT string
// by hand, then render it to SVG in-process with goccy/go-graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mutk-project/relgraph/pkg/graph"
)

// ToDOT converts a finalized graph to Graphviz DOT. Vertices are styled by
// stratum — founders as boxes, germline as rounded boxes, somatic as
// ellipses, samples as filled ellipses — and every edge is labeled with its
// scaled length.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if v.Cleared() {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.Label, strings.Join(vertexAttrs(v), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		from, _ := g.Vertex(e.From)
		to, _ := g.Vertex(e.To)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from.Label, to.Label, strconv.FormatFloat(e.Length, 'g', -1, 64))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func vertexAttrs(v graph.Vertex) []string {
	attrs := []string{fmt.Sprintf("label=%q", v.Label)}
	switch v.Type {
	case graph.Founder:
		attrs = append(attrs, "shape=box")
	case graph.Somatic:
		attrs = append(attrs, "shape=ellipse")
	case graph.Sample:
		attrs = append(attrs, "shape=ellipse", "style=filled", "fillcolor=lightgrey")
	default: // graph.Germline
		attrs = append(attrs, "shape=box", "style=rounded")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz, exactly as the
// teacher does: graphviz.New, then ParseBytes, then Render into a buffer.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
