// Package bfs provides breadth-first search over the undirected view of a
// core.Graph, and the connectivity checks built on it.
//
// A taxonomy stores superclass→subclass edges, but connectivity and tree
// shape are properties of the underlying undirected graph, so BFS follows
// edges in both directions.
//
//   - BFS(g, start): visit order, distances and parent links.
//   - Components(g): connected components, each in BFS order.
//   - IsConnected(g), IsTree(g).
//
// Determinism
//
//	core.Graph returns neighbor IDs sorted, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
package bfs
