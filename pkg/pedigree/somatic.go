package pedigree

import (
	"github.com/mutk-project/relgraph/pkg/graph"
	"github.com/mutk-project/relgraph/pkg/pedigree/newick"
)

// AttachSomaticTrees is C3: for every sample string recorded against a
// member, it invokes oracle to graft the corresponding somatic lineage onto
// that member's germline vertex. Once every sample has been attached, any
// Somatic vertex whose label appears in knownSamples is retyped to Sample.
func AttachSomaticTrees(g *graph.Graph, p Pedigree, knownSamples map[string]bool, oracle newick.Oracle, normalize bool) error {
	for i, m := range p.Members {
		for _, sample := range m.Samples {
			if !oracle.Attach(sample, g, graph.VertexID(i), normalize) {
				return Invalidf("unable to parse somatic data for individual %q", m.Name)
			}
		}
	}

	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if v.Type == graph.Somatic && knownSamples[v.Label] {
			v.Type = graph.Sample
			g.SetVertex(id, v)
		}
	}
	return nil
}
