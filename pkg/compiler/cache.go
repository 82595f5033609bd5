package compiler

import (
	"github.com/mutk-project/relgraph/pkg/elimination"
	"github.com/mutk-project/relgraph/pkg/graph"
)

// planEnvelope is the JSON-serializable form of a finalized graph and its
// elimination plan, used as the cache payload keyed by planKey. Construct
// is a pure function of (pedigree, options), so a cache hit can skip every
// pipeline stage entirely.
type planEnvelope struct {
	Vertices []envelopeVertex `json:"vertices"`
	Edges    []envelopeEdge   `json:"edges"`
	Order    []graph.VertexID `json:"order"`
	Tree     []elimination.Node `json:"tree"`
}

type envelopeVertex struct {
	Label  string          `json:"label"`
	Sex    graph.Sex       `json:"sex"`
	Ploidy int             `json:"ploidy"`
	Type   graph.VertexType `json:"type"`
}

type envelopeEdge struct {
	From   graph.VertexID `json:"from"`
	To     graph.VertexID `json:"to"`
	Length float64        `json:"length"`
	Kind   graph.EdgeKind `json:"kind"`
}

func envelopeFrom(g *graph.Graph, plan elimination.Plan) planEnvelope {
	env := planEnvelope{Order: plan.Order, Tree: plan.Tree}
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		env.Vertices = append(env.Vertices, envelopeVertex{Label: v.Label, Sex: v.Sex, Ploidy: v.Ploidy, Type: v.Type})
	}
	for _, e := range g.Edges() {
		env.Edges = append(env.Edges, envelopeEdge{From: e.From, To: e.To, Length: e.Length, Kind: e.Kind})
	}
	return env
}

func (env planEnvelope) toGraph() *graph.Graph {
	g := graph.New()
	for _, v := range env.Vertices {
		g.AddVertex(graph.Vertex{Label: v.Label, Sex: v.Sex, Ploidy: v.Ploidy, Type: v.Type})
	}
	for _, e := range env.Edges {
		g.AddEdge(graph.Edge{From: e.From, To: e.To, Length: e.Length, Kind: e.Kind})
	}
	return g
}

func (env planEnvelope) toPlan() elimination.Plan {
	return elimination.Plan{Order: env.Order, Tree: env.Tree}
}
