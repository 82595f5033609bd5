package transform

import (
	"testing"

	"github.com/mutk-project/relgraph/pkg/graph"
)

func TestFinalizeOrdersStrataAndSuffixesLabels(t *testing.T) {
	g := graph.New()
	dad := g.AddVertex(graph.Vertex{Label: "dad", Sex: graph.SexMale, Ploidy: 2, Type: graph.Germline})
	mom := g.AddVertex(graph.Vertex{Label: "mom", Sex: graph.SexFemale, Ploidy: 2, Type: graph.Germline})
	child := g.AddVertex(graph.Vertex{Label: "child", Ploidy: 2, Type: graph.Germline})
	sampleV := g.AddVertex(graph.Vertex{Label: "leaf", Ploidy: 2, Type: graph.Sample})
	g.AddEdge(graph.Edge{From: dad, To: child, Length: 1e-8, Kind: graph.GermEdge})
	g.AddEdge(graph.Edge{From: mom, To: child, Length: 1e-8, Kind: graph.GermEdge})
	g.AddEdge(graph.Edge{From: child, To: sampleV, Length: 1, Kind: graph.SomaEdge})

	out, err := Finalize(g)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if out.NumVertices() != 4 {
		t.Fatalf("NumVertices() = %d, want 4", out.NumVertices())
	}

	var founderCount, sampleCount int
	lastFounderIdx, firstNonFounderIdx, firstSampleIdx := -1, -1, -1
	for _, id := range out.Vertices() {
		v, _ := out.Vertex(id)
		switch v.Type {
		case graph.Founder:
			founderCount++
			lastFounderIdx = int(id)
			if v.Label[len(v.Label)-2:] != "/z" {
				t.Fatalf("founder label %q missing /z suffix", v.Label)
			}
		case graph.Germline:
			if firstNonFounderIdx == -1 {
				firstNonFounderIdx = int(id)
			}
			if v.Label[len(v.Label)-2:] != "/z" {
				t.Fatalf("germline label %q missing /z suffix", v.Label)
			}
		case graph.Sample:
			sampleCount++
			if firstSampleIdx == -1 {
				firstSampleIdx = int(id)
			}
			if v.Label != "leaf" {
				t.Fatalf("sample label = %q, want unchanged", v.Label)
			}
		}
	}

	if founderCount != 2 {
		t.Fatalf("founderCount = %d, want 2 (dad, mom)", founderCount)
	}
	if sampleCount != 1 {
		t.Fatalf("sampleCount = %d, want 1", sampleCount)
	}
	if lastFounderIdx >= firstNonFounderIdx {
		t.Fatalf("founders must precede non-founder germline: lastFounder=%d firstNonFounder=%d", lastFounderIdx, firstNonFounderIdx)
	}
	if firstNonFounderIdx >= firstSampleIdx {
		t.Fatalf("germline must precede sample: firstNonFounder=%d firstSample=%d", firstNonFounderIdx, firstSampleIdx)
	}
}

func TestFinalizeDropsClearedVertices(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(graph.Vertex{Label: "A", Ploidy: 2, Type: graph.Germline})
	cleared := g.AddVertex(graph.Vertex{Label: "cleared", Ploidy: 2, Type: graph.Germline})
	_ = cleared
	g.ClearVertex(cleared)

	out, err := Finalize(g)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if out.NumVertices() != 0 {
		t.Fatalf("NumVertices() = %d, want 0 (A has no edges, cleared has none either)", out.NumVertices())
	}
	_, ok := g.Vertex(a)
	if !ok {
		t.Fatal("original graph vertex lookup broke")
	}
}
