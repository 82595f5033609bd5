package transform

import "github.com/mutk-project/relgraph/pkg/graph"

// Simplify is C6: three linear sweeps over the topological order — tip
// pruning, founder unlinking, chain bypass — each run once, with no
// fixed-point iteration.
func Simplify(g *graph.Graph) error {
	order, err := g.TopologicalOrder()
	if err != nil {
		return err
	}

	pruneTips(g, order)
	unlinkFounders(g, order)
	bypassChains(g, order)
	return nil
}

// pruneTips clears any vertex with out-degree 0 whose type is not Sample,
// scanning in reverse topological order so a tip cleared this pass can make
// its own parent a tip on the same sweep.
func pruneTips(g *graph.Graph, order []graph.VertexID) {
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		vertex, _ := g.Vertex(v)
		if g.OutDegree(v) == 0 && vertex.Type != graph.Sample {
			g.ClearVertex(v)
		}
	}
}

// unlinkFounders clears the parent links of any Germline vertex whose
// parents all exist solely to feed it (total degree 1), so it reclassifies
// as a Founder in C7.
func unlinkFounders(g *graph.Graph, order []graph.VertexID) {
	for _, v := range order {
		vertex, _ := g.Vertex(v)
		if vertex.Type != graph.Germline || g.InDegree(v) == 0 {
			continue
		}

		parents := g.InEdges(v)
		soleProvider := true
		for _, e := range parents {
			if g.Degree(e.From) != 1 {
				soleProvider = false
				break
			}
		}
		if !soleProvider {
			continue
		}

		g.RemoveEdgesFunc(func(e graph.Edge) bool { return e.To == v })
		for _, e := range parents {
			g.ClearVertex(e.From)
		}
	}
}

// bypassChains collapses each degree-1 intermediate vertex v (in-degree ≥ 1,
// out-degree 1) into its unique child c, provided the child's parentage
// would not exceed diploid and both share ploidy. Every in-edge of v is
// re-created as an edge into c with summed length and OR'd kind, then v is
// cleared.
func bypassChains(g *graph.Graph, order []graph.VertexID) {
	for _, v := range order {
		if g.InDegree(v) == 0 || g.OutDegree(v) != 1 {
			continue
		}
		out := g.OutEdges(v)[0]
		c := out.To

		vVertex, _ := g.Vertex(v)
		cVertex, _ := g.Vertex(c)
		if g.InDegree(c)+g.InDegree(v)-1 > 2 || cVertex.Ploidy != vVertex.Ploidy {
			continue
		}

		for _, in := range g.InEdges(v) {
			g.AddEdge(graph.Edge{
				From:   in.From,
				To:     c,
				Length: in.Length + out.Length,
				Kind:   in.Kind | out.Kind,
			})
		}
		g.ClearVertex(v)
	}
}
