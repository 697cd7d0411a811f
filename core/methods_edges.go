// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus filtered removals.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import "sort"

// AddEdge creates the directed edge from→to, adding missing endpoints.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj; if the edge already exists this is a no-op.
//  4. Link out[from][to] and in[to][from].
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.out[from][to]; exists {
		return nil
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.out[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edges returns every edge sorted by From, then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var from, to string
	var targets map[string]struct{}
	for from, targets = range g.out {
		for to = range targets {
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// FilterEdges removes every edge for which keep returns false.
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	var from, to string
	var targets map[string]struct{}
	for from, targets = range g.out {
		for to = range targets {
			if keep(Edge{From: from, To: to}) {
				continue
			}
			// deleting the current key during range is permitted
			delete(targets, to)
			delete(g.in[to], from)
			g.edgeCount--
		}
	}
}
