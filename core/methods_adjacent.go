// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Every returned ID slice is unique and sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Successors returns the targets of all outgoing edges of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Successors(id string) ([]string, error) {
	return g.adjacent(id, func() map[string]struct{} { return g.out[id] })
}

// Predecessors returns the sources of all incoming edges of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.adjacent(id, func() map[string]struct{} { return g.in[id] })
}

// NeighborIDs returns the union of successors and predecessors of id,
// i.e. its neighborhood in the underlying undirected graph.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacent(id, func() map[string]struct{} {
		both := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
		var nbr string
		for nbr = range g.out[id] {
			both[nbr] = struct{}{}
		}
		for nbr = range g.in[id] {
			both[nbr] = struct{}{}
		}
		return both
	})
}

// adjacent validates id and snapshots the bucket returned by pick into a sorted slice.
// pick runs under the muEdgeAdj read lock.
func (g *Graph) adjacent(id string, pick func() map[string]struct{}) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := pick()
	ids := make([]string, 0, len(bucket))
	var nbr string
	for nbr = range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency bootstraps the out/in buckets for id.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = make(map[string]struct{})
	}
	if _, ok := g.in[id]; !ok {
		g.in[id] = make(map[string]struct{})
	}
}
