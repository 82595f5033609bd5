package transform

import "github.com/mutk-project/relgraph/pkg/graph"

// ScaleEdgeLengths is C4: every germline edge's length is multiplied by
// muGerm, every other edge's by muSoma. Both rates are caller-supplied
// non-negative reals.
func ScaleEdgeLengths(g *graph.Graph, muGerm, muSoma float64) {
	g.MapEdges(func(e graph.Edge) graph.Edge {
		if e.Kind.Has(graph.GermEdge) {
			e.Length *= muGerm
		} else {
			e.Length *= muSoma
		}
		return e
	})
}
