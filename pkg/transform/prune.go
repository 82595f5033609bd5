package transform

import (
	"github.com/mutk-project/relgraph/pkg/graph"
	"github.com/mutk-project/relgraph/pkg/pedigree"
)

// Prune is C5: dispatches the inheritance-model pruning strategy. Every
// strategy shares the same template — remove violating germline edges,
// normalize ploidy, clear excluded individuals — differing only in the
// predicates and constants from the model table.
func Prune(g *graph.Graph, model Model) error {
	switch model {
	case Autosomal:
		return nil
	case YLinked:
		return pruneSexLinked(g, "Y-linked", removeIfEitherSex(graph.SexFemale), graph.SexMale, hasSex(graph.SexFemale))
	case XLinked:
		return pruneSexLinked(g, "X-linked", removeIfBothSex(graph.SexMale), graph.SexMale, never)
	case WLinked:
		return pruneSexLinked(g, "W-linked", removeIfEitherSex(graph.SexMale), graph.SexFemale, hasSex(graph.SexMale))
	case ZLinked:
		return pruneSexLinked(g, "Z-linked", removeIfBothSex(graph.SexFemale), graph.SexFemale, never)
	case Maternal:
		pruneUniparental(g, graph.SexMale)
		return nil
	case Paternal:
		// See REDESIGN FLAGS: paternal inheritance removes edges with a
		// Female source, not Male — the source's prune_paternal duplicated
		// prune_maternal verbatim.
		pruneUniparental(g, graph.SexFemale)
		return nil
	default:
		return pedigree.Invalidf("unknown inheritance model")
	}
}

// pruneSexLinked implements the Y/X/W/Z-linked template: reject any vertex
// with unknown sex and descendants, remove violating germline edges, set
// ploidy 1 for haploidSex, and clear every vertex for which clear reports
// true.
func pruneSexLinked(g *graph.Graph, label string, remove func(*graph.Graph, graph.Edge) bool, haploidSex graph.Sex, clear func(graph.Sex) bool) error {
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if v.Sex == graph.SexUnknown && g.OutDegree(id) > 0 {
			return pedigree.Invalidf("%s inheritance requires every individual to have a known sex", label)
		}
	}

	g.RemoveEdgesFunc(func(e graph.Edge) bool {
		return e.Kind.Has(graph.GermEdge) && remove(g, e)
	})
	setPloidyForSex(g, haploidSex, 1)
	clearVerticesWithSex(g, clear)
	return nil
}

// pruneUniparental implements the Maternal/Paternal template: remove
// germline edges whose source has excludedSex, and set every vertex's
// ploidy to 1 (haploid transmission along a single lineage).
func pruneUniparental(g *graph.Graph, excludedSex graph.Sex) {
	g.RemoveEdgesFunc(func(e graph.Edge) bool {
		return e.Kind.Has(graph.GermEdge) && sexOf(g, e.From) == excludedSex
	})
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		v.Ploidy = 1
		g.SetVertex(id, v)
	}
}

func removeIfEitherSex(sex graph.Sex) func(*graph.Graph, graph.Edge) bool {
	return func(g *graph.Graph, e graph.Edge) bool {
		return sexOf(g, e.From) == sex || sexOf(g, e.To) == sex
	}
}

func removeIfBothSex(sex graph.Sex) func(*graph.Graph, graph.Edge) bool {
	return func(g *graph.Graph, e graph.Edge) bool {
		return sexOf(g, e.From) == sex && sexOf(g, e.To) == sex
	}
}

func hasSex(sex graph.Sex) func(graph.Sex) bool {
	return func(s graph.Sex) bool { return s == sex }
}

func never(graph.Sex) bool { return false }

func sexOf(g *graph.Graph, id graph.VertexID) graph.Sex {
	v, _ := g.Vertex(id)
	return v.Sex
}

func setPloidyForSex(g *graph.Graph, sex graph.Sex, ploidy int) {
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if v.Sex == sex {
			v.Ploidy = ploidy
			g.SetVertex(id, v)
		}
	}
}

func clearVerticesWithSex(g *graph.Graph, clear func(graph.Sex) bool) {
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		if clear(v.Sex) {
			g.ClearVertex(id)
		}
	}
}
