package transform

import (
	"testing"

	"github.com/mutk-project/relgraph/pkg/graph"
)

func newFamily(g *graph.Graph, dadSex, momSex graph.Sex) (dad, mom, child graph.VertexID) {
	dad = g.AddVertex(graph.Vertex{Label: "dad", Sex: dadSex, Ploidy: 2})
	mom = g.AddVertex(graph.Vertex{Label: "mom", Sex: momSex, Ploidy: 2})
	child = g.AddVertex(graph.Vertex{Label: "child", Sex: graph.SexMale, Ploidy: 2})
	g.AddEdge(graph.Edge{From: dad, To: child, Length: 1, Kind: graph.GermEdge})
	g.AddEdge(graph.Edge{From: mom, To: child, Length: 1, Kind: graph.GermEdge})
	return dad, mom, child
}

func TestPruneYLinkedRemovesMaternalEdgeAndClearsFemales(t *testing.T) {
	g := graph.New()
	dad, mom, child := newFamily(g, graph.SexMale, graph.SexFemale)

	if err := Prune(g, YLinked); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	if got := g.InDegree(child); got != 1 {
		t.Fatalf("child InDegree = %d, want 1 (maternal edge pruned)", got)
	}
	momV, _ := g.Vertex(mom)
	if !momV.Cleared() {
		t.Fatalf("mom not cleared: %+v", momV)
	}
	dadV, _ := g.Vertex(dad)
	if dadV.Ploidy != 1 {
		t.Fatalf("dad ploidy = %d, want 1", dadV.Ploidy)
	}
}

func TestPruneYLinkedRejectsUnknownSexWithDescendants(t *testing.T) {
	g := graph.New()
	dad := g.AddVertex(graph.Vertex{Label: "dad", Sex: graph.SexUnknown, Ploidy: 2})
	child := g.AddVertex(graph.Vertex{Label: "child", Sex: graph.SexMale, Ploidy: 2})
	g.AddEdge(graph.Edge{From: dad, To: child, Length: 1, Kind: graph.GermEdge})

	err := Prune(g, YLinked)
	if err == nil {
		t.Fatal("Prune() error = nil, want failure for unknown sex")
	}
}

func TestPrunePaternalRemovesFemaleSourcedEdges(t *testing.T) {
	g := graph.New()
	dad, mom, child := newFamily(g, graph.SexMale, graph.SexFemale)

	if err := Prune(g, Paternal); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	edges := g.InEdges(child)
	if len(edges) != 1 || edges[0].From != dad {
		t.Fatalf("InEdges(child) = %v, want single edge from dad", edges)
	}
	momV, _ := g.Vertex(mom)
	if momV.Cleared() {
		t.Fatal("paternal model must not clear vertices")
	}
}

func TestPruneMaternalRemovesMaleSourcedEdges(t *testing.T) {
	g := graph.New()
	_, mom, child := newFamily(g, graph.SexMale, graph.SexFemale)

	if err := Prune(g, Maternal); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	edges := g.InEdges(child)
	if len(edges) != 1 || edges[0].From != mom {
		t.Fatalf("InEdges(child) = %v, want single edge from mom", edges)
	}
}

func TestPruneXLinkedRemovesFatherToSonEdge(t *testing.T) {
	g := graph.New()
	dad, mom, son := newFamily(g, graph.SexMale, graph.SexFemale)

	if err := Prune(g, XLinked); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}

	edges := g.InEdges(son)
	if len(edges) != 1 || edges[0].From != mom {
		t.Fatalf("InEdges(son) = %v, want single edge from mom", edges)
	}
	dadV, _ := g.Vertex(dad)
	if dadV.Ploidy != 1 {
		t.Fatalf("dad ploidy = %d, want 1", dadV.Ploidy)
	}
}

func TestPruneAutosomalIsNoOp(t *testing.T) {
	g := graph.New()
	_, _, child := newFamily(g, graph.SexMale, graph.SexFemale)

	if err := Prune(g, Autosomal); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if got := g.InDegree(child); got != 2 {
		t.Fatalf("child InDegree = %d, want 2", got)
	}
}
