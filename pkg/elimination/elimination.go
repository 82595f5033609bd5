// Package elimination implements C8: given a finalized relationship graph,
// it produces a min-fill-in elimination order and the junction tree of
// cliques that order induces, per Almond & Kong (1991).
package elimination

import (
	"container/heap"
	"slices"

	"github.com/mutk-project/relgraph/pkg/graph"
)

// Node is one node of the junction tree assembled in step 5: a clique of
// vertices, plus whether it is an intersection (separator) node introduced
// between two cliques rather than one emitted directly by elimination.
type Node struct {
	Clique         []graph.VertexID
	IsIntersection bool
	Neighbors      []int
}

// Plan is C8's output.
type Plan struct {
	Order []graph.VertexID
	Tree  []Node
}

// Dependencies returns depends(v) for every vertex: the sorted set of its
// in-neighbors (step 1).
func Dependencies(g *graph.Graph) map[graph.VertexID][]graph.VertexID {
	deps := make(map[graph.VertexID][]graph.VertexID, g.NumVertices())
	for _, v := range g.Vertices() {
		var d []graph.VertexID
		for _, e := range g.InEdges(v) {
			d = append(d, e.From)
		}
		slices.Sort(d)
		deps[v] = d
	}
	return deps
}

// potentials returns one scope per rule of step 2: a scope {v} for every
// sink, a scope {v} for every source, and a scope {v} ∪ depends(v) for
// every non-source. A sink-and-source vertex contributes twice; the
// duplicate singleton is redundant but harmless in moralization.
func potentials(g *graph.Graph, deps map[graph.VertexID][]graph.VertexID) [][]graph.VertexID {
	var scopes [][]graph.VertexID
	for _, v := range g.Vertices() {
		if g.OutDegree(v) == 0 {
			scopes = append(scopes, []graph.VertexID{v})
		}
		if g.InDegree(v) == 0 {
			scopes = append(scopes, []graph.VertexID{v})
		} else {
			scope := append([]graph.VertexID{v}, deps[v]...)
			scopes = append(scopes, scope)
		}
	}
	return scopes
}

// moralize builds the undirected neighbor map (step 3): every pair of
// distinct vertices co-occurring in any potential scope is connected.
func moralize(scopes [][]graph.VertexID) map[graph.VertexID]map[graph.VertexID]bool {
	neighbors := make(map[graph.VertexID]map[graph.VertexID]bool)
	ensure := func(v graph.VertexID) map[graph.VertexID]bool {
		if neighbors[v] == nil {
			neighbors[v] = make(map[graph.VertexID]bool)
		}
		return neighbors[v]
	}
	for _, scope := range scopes {
		for _, v := range scope {
			ensure(v)
		}
		for i := range scope {
			for j := range scope {
				if i == j {
					continue
				}
				ensure(scope[i])[scope[j]] = true
			}
		}
	}
	return neighbors
}

// Build runs the full C8 pipeline: dependencies, potentials, moralization,
// min-fill-in elimination, and junction-tree assembly.
func Build(g *graph.Graph) Plan {
	deps := Dependencies(g)
	scopes := potentials(g, deps)
	neighbors := moralize(scopes)
	order, separators := eliminate(neighbors)
	tree := assemble(order, separators)
	return Plan{Order: order, Tree: tree}
}

func fillIn(v graph.VertexID, neighbors map[graph.VertexID]map[graph.VertexID]bool) int {
	ns := sortedKeys(neighbors[v])
	missing := 0
	for i := range ns {
		for j := i + 1; j < len(ns); j++ {
			if !neighbors[ns[i]][ns[j]] {
				missing++
			}
		}
	}
	return missing
}

func sortedKeys(m map[graph.VertexID]bool) []graph.VertexID {
	out := make([]graph.VertexID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// eliminate runs step 4: repeatedly pop the vertex with minimum
// (fill_in, vertex_index), complete its neighborhood into a clique, remove
// it, and re-key its former neighbors' fill-in scores. The queue supports
// decrease-key via heap.Fix on each item's stored index, since fill_in
// scores of surviving vertices change every round. Alongside the order it
// records each vertex's separator — its neighbor set at the moment of
// elimination — which step 5 needs after this function has destroyed the
// live adjacency.
func eliminate(neighbors map[graph.VertexID]map[graph.VertexID]bool) ([]graph.VertexID, map[graph.VertexID][]graph.VertexID) {
	items := make(map[graph.VertexID]*queueItem, len(neighbors))
	pq := make(priorityQueue, 0, len(neighbors))
	for v := range neighbors {
		it := &queueItem{vertex: v, fill: fillIn(v, neighbors)}
		items[v] = it
		pq = append(pq, it)
	}
	heap.Init(&pq)

	order := make([]graph.VertexID, 0, len(neighbors))
	separators := make(map[graph.VertexID][]graph.VertexID, len(neighbors))
	removed := make(map[graph.VertexID]bool, len(neighbors))

	for pq.Len() > 0 {
		v := heap.Pop(&pq).(*queueItem).vertex
		removed[v] = true
		order = append(order, v)

		k := sortedKeys(neighbors[v])
		separators[v] = k

		if len(k) > 0 && fillIn(v, neighbors) > 0 {
			for _, a := range k {
				for _, b := range k {
					if a != b {
						neighbors[a][b] = true
					}
				}
			}
		}
		for _, n := range k {
			delete(neighbors[n], v)
		}
		delete(neighbors, v)

		for _, a := range k {
			if removed[a] {
				continue
			}
			it := items[a]
			it.fill = fillIn(a, neighbors)
			heap.Fix(&pq, it.index)
		}
	}
	return order, separators
}

type queueItem struct {
	vertex graph.VertexID
	fill   int
	index  int
}

type priorityQueue []*queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].fill != pq[j].fill {
		return pq[i].fill < pq[j].fill
	}
	return pq[i].vertex < pq[j].vertex
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	it := x.(*queueItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]
	return it
}

// assemble runs step 5: traverse elim_order in reverse, emitting one clique
// N∪{v} per eliminated vertex v, N its separator. Per the safe
// reimplementation from the design notes: the new clique is always emitted
// last, and connects to an exact-match separator node if one already
// exists, to an intermediate intersection node introduced under the
// smallest existing superset clique otherwise, or is left disconnected.
func assemble(order []graph.VertexID, separators map[graph.VertexID][]graph.VertexID) []Node {
	var tree []Node
	cliqueIndex := make(map[string]int)

	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		sep := separators[v]
		newClique := append(slices.Clone(sep), v)
		slices.Sort(newClique)
		newIdx := len(tree)

		switch {
		case len(sep) == 0:
			tree = append(tree, Node{Clique: newClique})
		default:
			if existing, ok := cliqueIndex[cliqueKey(sep)]; ok {
				tree[existing].IsIntersection = true
				tree = append(tree, Node{Clique: newClique})
				connect(tree, existing, newIdx)
			} else if parent, ok := smallestSuperset(tree, sep); ok {
				sepIdx := len(tree)
				tree = append(tree, Node{Clique: slices.Clone(sep), IsIntersection: true})
				tree = append(tree, Node{Clique: newClique})
				connect(tree, parent, sepIdx)
				connect(tree, sepIdx, sepIdx+1)
			} else {
				tree = append(tree, Node{Clique: newClique})
			}
		}
		cliqueIndex[cliqueKey(newClique)] = len(tree) - 1
	}
	return tree
}

func connect(tree []Node, a, b int) {
	tree[a].Neighbors = append(tree[a].Neighbors, b)
	tree[b].Neighbors = append(tree[b].Neighbors, a)
}

// smallestSuperset returns the index of the smallest clique in tree that
// contains every vertex of sep, if any does.
func smallestSuperset(tree []Node, sep []graph.VertexID) (int, bool) {
	best := -1
	for i, n := range tree {
		if !containsAll(n.Clique, sep) {
			continue
		}
		if best == -1 || len(n.Clique) < len(tree[best].Clique) {
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

func containsAll(set, want []graph.VertexID) bool {
	for _, w := range want {
		if !slices.Contains(set, w) {
			return false
		}
	}
	return true
}

func cliqueKey(vs []graph.VertexID) string {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	b := make([]byte, 0, len(sorted)*5)
	for _, v := range sorted {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}
