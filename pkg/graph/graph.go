// Package graph implements the labeled directed graph shared by every stage
// of the relationship-graph compiler.
//
// Vertices are identified by a stable, insertion-order integer ID (VertexID)
// rather than a string label, so that "clearing" a vertex during pruning or
// simplification can drop all of its edges and zero its ploidy without
// disturbing the indices any other stage holds onto. Labels live on the
// Vertex value itself and are only unique by construction (the pedigree
// builder enforces it), not by the graph.
//
// Parallel edges between the same ordered pair of vertices are permitted:
// a diploid individual has exactly two in-edges from two distinct parents,
// which the graph represents as two separate Edge values rather than
// coalescing them.
package graph

import (
	"errors"
	"slices"
)

// Sex classifies a vertex for inheritance-model pruning (C5).
type Sex int

const (
	SexAutosomal Sex = iota
	SexMale
	SexFemale
	SexUnknown
)

// String renders the sex the way PrintGraph's YAML fields expect it.
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	case SexUnknown:
		return "unknown"
	default:
		return "autosomal"
	}
}

// VertexType classifies a vertex's stratum in the pedigree.
type VertexType int

const (
	// Germline is the default stratum assigned in C2; C7 reclassifies
	// in-degree-0 germline vertices as Founder on output.
	Germline VertexType = iota
	Founder
	Somatic
	Sample
)

// EdgeKind is a bitset over edge provenance. Only GermEdge vs. everything
// else is semantically load-bearing in this core; SomaEdge and LibraryEdge
// exist so C6's chain-collapse OR-of-kinds has more than one bit to combine
// in practice.
type EdgeKind uint8

const (
	GermEdge EdgeKind = 1 << iota
	SomaEdge
	LibraryEdge
)

// Has reports whether k contains all bits of other.
func (k EdgeKind) Has(other EdgeKind) bool { return k&other == other }

// VertexID is a stable, insertion-order identifier. IDs are never reused
// within a single Graph value, including after ClearVertex.
type VertexID int

// Vertex holds the attributes attached to one VertexID.
type Vertex struct {
	Label  string
	Sex    Sex
	Ploidy int
	Type   VertexType
}

// Cleared reports whether the vertex has been zeroed out by a pruning or
// simplification pass (ploidy 0 signals "cleared / effectively removed").
func (v Vertex) Cleared() bool { return v.Ploidy == 0 }

// Edge is a directed connection between two vertices, carrying the
// generational distance (Length) and provenance bitset (Kind) described in
// the data model.
type Edge struct {
	From, To VertexID
	Length   float64
	Kind     EdgeKind
}

var (
	// ErrUnknownVertex is returned when an operation references a VertexID
	// that was never added to the graph.
	ErrUnknownVertex = errors.New("graph: unknown vertex")

	// ErrCyclic is returned by TopologicalOrder when the graph is not
	// acyclic. Every stage documented in the data model requires the graph
	// to remain a DAG; this is a defensive check, not an expected path.
	ErrCyclic = errors.New("graph: cycle detected")
)

// edgeRef pairs an Edge with a liveness flag so RemoveEdgesFunc and
// ClearVertex don't need to compact adjacency slices on every call.
type edgeRef struct {
	edge  Edge
	alive bool
}

// Graph is a labeled directed graph with per-vertex and per-edge attribute
// maps, supporting the operations the pipeline needs: add vertex/edge,
// insertion-order vertex iteration, in/out-edge iteration, bulk edge
// removal by predicate, whole-vertex clearing, and topological sort.
//
// The zero value is not usable; use New. Graph is not safe for concurrent
// use — per the concurrency model, one Graph is owned by exactly one
// Construct call at a time.
type Graph struct {
	vertices []Vertex
	edges    []edgeRef
	outgoing map[VertexID][]int // vertex -> indices into edges
	incoming map[VertexID][]int // vertex -> indices into edges
	order    []VertexID // insertion order
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		outgoing: make(map[VertexID][]int),
		incoming: make(map[VertexID][]int),
	}
}

// AddVertex appends a new vertex and returns its VertexID. IDs are assigned
// sequentially starting at 0 in insertion order.
func (g *Graph) AddVertex(v Vertex) VertexID {
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, v)
	g.order = append(g.order, id)
	return id
}

// Vertex returns the attributes of id.
func (g *Graph) Vertex(id VertexID) (Vertex, bool) {
	if int(id) < 0 || int(id) >= len(g.vertices) {
		return Vertex{}, false
	}
	return g.vertices[id], true
}

// SetVertex overwrites the attributes of id.
func (g *Graph) SetVertex(id VertexID, v Vertex) {
	g.vertices[id] = v
}

// Vertices returns every VertexID in insertion order, including cleared
// vertices (callers that care check Vertex(id).Cleared()).
func (g *Graph) Vertices() []VertexID {
	return slices.Clone(g.order)
}

// AddEdge appends a new edge and indexes it for OutEdges/InEdges lookups.
func (g *Graph) AddEdge(e Edge) {
	idx := len(g.edges)
	g.edges = append(g.edges, edgeRef{edge: e, alive: true})
	g.outgoing[e.From] = append(g.outgoing[e.From], idx)
	g.incoming[e.To] = append(g.incoming[e.To], idx)
}

// OutEdges returns the live edges leaving v, in insertion order.
func (g *Graph) OutEdges(v VertexID) []Edge {
	return g.liveEdges(g.outgoing[v])
}

// InEdges returns the live edges entering v, in insertion order.
func (g *Graph) InEdges(v VertexID) []Edge {
	return g.liveEdges(g.incoming[v])
}

func (g *Graph) liveEdges(idxs []int) []Edge {
	var out []Edge
	for _, i := range idxs {
		if g.edges[i].alive {
			out = append(out, g.edges[i].edge)
		}
	}
	return out
}

// OutDegree returns the number of live out-edges of v.
func (g *Graph) OutDegree(v VertexID) int { return countAlive(g.edges, g.outgoing[v]) }

// InDegree returns the number of live in-edges of v.
func (g *Graph) InDegree(v VertexID) int { return countAlive(g.edges, g.incoming[v]) }

// Degree returns InDegree(v) + OutDegree(v).
func (g *Graph) Degree(v VertexID) int { return g.InDegree(v) + g.OutDegree(v) }

func countAlive(edges []edgeRef, idxs []int) int {
	n := 0
	for _, i := range idxs {
		if edges[i].alive {
			n++
		}
	}
	return n
}

// Edges returns every live edge in the graph, in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if e.alive {
			out = append(out, e.edge)
		}
	}
	return out
}

// MapEdges rewrites every live edge in place by applying fn to it. It is
// used by the edge-length scaler (C4) to update lengths without disturbing
// adjacency.
func (g *Graph) MapEdges(fn func(Edge) Edge) {
	for i := range g.edges {
		if g.edges[i].alive {
			g.edges[i].edge = fn(g.edges[i].edge)
		}
	}
}

// RemoveEdgesFunc marks every live edge matching pred as removed and
// returns how many were removed. It runs in O(E).
func (g *Graph) RemoveEdgesFunc(pred func(Edge) bool) int {
	n := 0
	for i := range g.edges {
		if g.edges[i].alive && pred(g.edges[i].edge) {
			g.edges[i].alive = false
			n++
		}
	}
	return n
}

// ClearVertex removes every edge incident to v (both directions) and sets
// its ploidy to 0, per the lifecycle rule that clearing preserves the
// vertex's index while marking it "effectively removed". The vertex's Type
// and Label are left untouched; only Ploidy changes.
func (g *Graph) ClearVertex(v VertexID) {
	for _, i := range g.outgoing[v] {
		g.edges[i].alive = false
	}
	for _, i := range g.incoming[v] {
		g.edges[i].alive = false
	}
	vertex := g.vertices[v]
	vertex.Ploidy = 0
	g.vertices[v] = vertex
}

// TopologicalOrder returns vertices in an order such that every edge points
// from an earlier vertex to a later one, using Kahn's algorithm. It returns
// ErrCyclic if the live edge set is not acyclic.
func (g *Graph) TopologicalOrder() ([]VertexID, error) {
	indeg := make(map[VertexID]int, len(g.vertices))
	for _, v := range g.order {
		indeg[v] = g.InDegree(v)
	}

	queue := make([]VertexID, 0, len(g.order))
	for _, v := range g.order {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]VertexID, 0, len(g.order))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, e := range g.OutEdges(v) {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) != len(g.order) {
		return nil, ErrCyclic
	}
	return order, nil
}

// ReverseTopologicalOrder returns TopologicalOrder in reverse; several
// pipeline stages (tip pruning, the finalizer's four passes) are specified
// in terms of a reverse-topological scan.
func (g *Graph) ReverseTopologicalOrder() ([]VertexID, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	slices.Reverse(order)
	return order, nil
}

// NumVertices returns the total number of vertices ever added, including
// cleared ones.
func (g *Graph) NumVertices() int { return len(g.vertices) }
