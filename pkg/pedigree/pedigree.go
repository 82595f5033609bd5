// Package pedigree builds the initial relationship graph (C2) from a
// Pedigree description: one vertex per member, with parentage edges added
// according to each member's declared ploidy.
package pedigree

import (
	"strings"

	"github.com/mutk-project/relgraph/pkg/graph"
)

// Member is one individual in a Pedigree: a name, sex, optional parent
// names (with optional generational distances), a tag list that determines
// ploidy and founder status, and any sequenced sample labels attached to
// this individual's somatic lineage.
type Member struct {
	Name string
	Sex  graph.Sex

	Dad, Mom           string
	DadLength, MomLength float64 // 0 means unset; defaults to 1.0

	Tags    []string
	Samples []string
}

// Pedigree is an ordered list of members. Member position determines the
// VertexID each member's germline vertex is assigned during Build — this
// is relied on by the somatic-tree attacher, which addresses germline
// vertices by member index.
type Pedigree struct {
	Members []Member
}

// Build constructs the initial graph: one Germline vertex per member (Step
// 1), then parentage edges dispatched by each member's declared ploidy
// (Step 2). Member i is always assigned graph.VertexID(i).
func Build(p Pedigree) (*graph.Graph, error) {
	g := graph.New()

	byName := make(map[string]int, len(p.Members))
	for i, m := range p.Members {
		byName[m.Name] = i
		g.AddVertex(graph.Vertex{
			Label:  m.Name,
			Sex:    m.Sex,
			Ploidy: ploidyFromTags(m.Tags),
			Type:   graph.Germline,
		})
	}

	for i, m := range p.Members {
		if hasTag(m.Tags, "founder") || (m.Dad == "" && m.Mom == "") {
			continue
		}
		v := graph.VertexID(i)
		vertex, _ := g.Vertex(v)

		switch vertex.Ploidy {
		case 0:
			if err := addCloneEdge(g, byName, m, v); err != nil {
				return nil, err
			}
		case 1:
			if err := addGameteEdge(g, byName, m, v); err != nil {
				return nil, err
			}
		default:
			if err := addDiploidEdges(g, byName, m, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func addCloneEdge(g *graph.Graph, byName map[string]int, m Member, v graph.VertexID) error {
	if m.Dad != "" && m.Mom != "" {
		return Invalidf("clone %q has two parents instead of one", m.Name)
	}
	parentName, length := m.Mom, m.MomLength
	if m.Dad != "" {
		parentName, length = m.Dad, m.DadLength
	}
	pi, ok := byName[parentName]
	if !ok {
		return Invalidf("the clone parent of %q is unknown", m.Name)
	}
	parent := graph.VertexID(pi)
	g.AddEdge(graph.Edge{From: parent, To: v, Length: withDefault(length), Kind: graph.GermEdge})

	parentVertex, _ := g.Vertex(parent)
	vertex, _ := g.Vertex(v)
	vertex.Ploidy = parentVertex.Ploidy
	vertex.Sex = parentVertex.Sex
	g.SetVertex(v, vertex)
	return nil
}

func addGameteEdge(g *graph.Graph, byName map[string]int, m Member, v graph.VertexID) error {
	if m.Dad != "" && m.Mom != "" {
		return Invalidf("gamete %q has two parents instead of one", m.Name)
	}
	isDad := m.Dad != ""
	parentName, length := m.Mom, m.MomLength
	if isDad {
		parentName, length = m.Dad, m.DadLength
	}
	pi, ok := byName[parentName]
	if !ok {
		return Invalidf("the parent of %q is unknown", m.Name)
	}
	parent := graph.VertexID(pi)
	parentVertex, _ := g.Vertex(parent)
	if isDad && parentVertex.Sex == graph.SexFemale {
		return Invalidf("the father of %q is female", m.Name)
	}
	if !isDad && parentVertex.Sex == graph.SexMale {
		return Invalidf("the mother of %q is male", m.Name)
	}
	g.AddEdge(graph.Edge{From: parent, To: v, Length: withDefault(length), Kind: graph.GermEdge})
	return nil
}

func addDiploidEdges(g *graph.Graph, byName map[string]int, m Member, v graph.VertexID) error {
	if m.Dad == "" {
		return Invalidf("the father of %q is unspecified", m.Name)
	}
	if m.Mom == "" {
		return Invalidf("the mother of %q is unspecified", m.Name)
	}
	di, ok := byName[m.Dad]
	if !ok {
		return Invalidf("the father of %q is unknown", m.Name)
	}
	mi, ok := byName[m.Mom]
	if !ok {
		return Invalidf("the mother of %q is unknown", m.Name)
	}
	dad, mom := graph.VertexID(di), graph.VertexID(mi)
	dadVertex, _ := g.Vertex(dad)
	momVertex, _ := g.Vertex(mom)
	if dadVertex.Sex == graph.SexFemale {
		return Invalidf("the father of %q is female", m.Name)
	}
	if momVertex.Sex == graph.SexMale {
		return Invalidf("the mother of %q is male", m.Name)
	}
	g.AddEdge(graph.Edge{From: dad, To: v, Length: withDefault(m.DadLength), Kind: graph.GermEdge})
	g.AddEdge(graph.Edge{From: mom, To: v, Length: withDefault(m.MomLength), Kind: graph.GermEdge})
	return nil
}

func withDefault(length float64) float64 {
	if length <= 0 {
		return 1.0
	}
	return length
}

var (
	haploidTags = map[string]bool{"haploid": true, "gamete": true, "p=1": true, "ploidy=1": true}
	diploidTags = map[string]bool{"diploid": true, "p=2": true, "ploidy=2": true}
	cloneTags   = map[string]bool{"clone": true}
)

// ploidyFromTags applies the fixed precedence: any haploid/gamete tag wins
// outright, then any diploid tag, then a bare "clone" tag, then a default
// of 2. Matching is case-insensitive; the precedence between categories is
// what "order-dependent" refers to, not the position of tags within Tags.
func ploidyFromTags(tags []string) int {
	if hasAny(tags, haploidTags) {
		return 1
	}
	if hasAny(tags, diploidTags) {
		return 2
	}
	if hasAny(tags, cloneTags) {
		return 0
	}
	return 2
}

func hasAny(tags []string, set map[string]bool) bool {
	for _, t := range tags {
		if set[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
