package graph_test

import (
	"fmt"

	"github.com/mutk-project/relgraph/pkg/graph"
)

func ExampleGraph_basic() {
	g := graph.New()
	dad := g.AddVertex(graph.Vertex{Label: "dad", Sex: graph.SexMale, Ploidy: 2, Type: graph.Founder})
	mom := g.AddVertex(graph.Vertex{Label: "mom", Sex: graph.SexFemale, Ploidy: 2, Type: graph.Founder})
	child := g.AddVertex(graph.Vertex{Label: "child", Ploidy: 2, Type: graph.Germline})

	g.AddEdge(graph.Edge{From: dad, To: child, Length: 1, Kind: graph.GermEdge})
	g.AddEdge(graph.Edge{From: mom, To: child, Length: 1, Kind: graph.GermEdge})

	fmt.Println("vertices:", g.NumVertices())
	fmt.Println("child in-degree:", g.InDegree(child))
	// Output:
	// vertices: 3
	// child in-degree: 2
}

func ExampleGraph_ClearVertex() {
	g := graph.New()
	a := g.AddVertex(graph.Vertex{Label: "a", Ploidy: 2})
	b := g.AddVertex(graph.Vertex{Label: "b", Ploidy: 2})
	g.AddEdge(graph.Edge{From: a, To: b, Length: 1})

	g.ClearVertex(a)

	v, _ := g.Vertex(a)
	fmt.Println("ploidy after clear:", v.Ploidy)
	fmt.Println("b in-degree:", g.InDegree(b))
	// Output:
	// ploidy after clear: 0
	// b in-degree: 0
}
