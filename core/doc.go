// Package core provides a thread-safe in-memory directed Graph used as the
// storage layer for taxonomies.
//
// The Graph G = (V,E) is simple: vertices are string IDs and at most one edge
// exists per ordered pair (From, To). Self-loops are rejected unless the graph
// is created WithLoops().
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Edges(), Successors() and
//     Predecessors() all return sorted results.
//   - Two-way adjacency: out[from][to] and in[to][from] are kept in lockstep,
//     so parent and child lookups cost O(d).
//   - Clone support: CloneEmpty (vertices and flags) and Clone (deep copy).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Lock order is always muVert -> muEdgeAdj.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("Animal", "Dog")
//	_ = g.AddEdge("Animal", "Cat")
//	kids, _ := g.Successors("Animal") // [Cat Dog]
package core
