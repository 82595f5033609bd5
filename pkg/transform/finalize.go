package transform

import "github.com/mutk-project/relgraph/pkg/graph"

// Finalize is C7: it builds a fresh graph whose vertex indices are ordered
// by stratum — Founders, then non-founder Germline, then Somatic, then
// Sample — each stratum itself in reverse-topological order, and drops any
// vertex that survives none of the four passes (a cleared vertex, or one
// left with no edges by earlier stages).
func Finalize(g *graph.Graph) (*graph.Graph, error) {
	reverse, err := g.ReverseTopologicalOrder()
	if err != nil {
		return nil, err
	}

	var founders, nonFounders, somatic, sample []graph.VertexID
	for _, v := range reverse {
		vertex, _ := g.Vertex(v)
		switch {
		case vertex.Type == graph.Germline && g.InDegree(v) == 0 && g.OutDegree(v) > 0:
			founders = append(founders, v)
		case vertex.Type == graph.Germline && g.InDegree(v) > 0:
			nonFounders = append(nonFounders, v)
		case vertex.Type == graph.Somatic && g.Degree(v) > 0:
			somatic = append(somatic, v)
		case vertex.Type == graph.Sample && g.Degree(v) > 0:
			sample = append(sample, v)
		}
	}

	out := graph.New()
	remap := make(map[graph.VertexID]graph.VertexID, len(founders)+len(nonFounders)+len(somatic)+len(sample))

	appendStratum := func(ids []graph.VertexID, suffix string, retype graph.VertexType) {
		for _, old := range ids {
			vertex, _ := g.Vertex(old)
			vertex.Label += suffix
			vertex.Type = retype
			remap[old] = out.AddVertex(vertex)
		}
	}
	appendStratum(founders, "/z", graph.Founder)
	appendStratum(nonFounders, "/z", graph.Germline)
	appendStratum(somatic, "/t", graph.Somatic)
	appendStratum(sample, "", graph.Sample)

	for _, e := range g.Edges() {
		newFrom, okFrom := remap[e.From]
		newTo, okTo := remap[e.To]
		if !okFrom || !okTo {
			continue
		}
		out.AddEdge(graph.Edge{From: newFrom, To: newTo, Length: e.Length, Kind: e.Kind})
	}

	return out, nil
}
