// Package dfs implements depth‑first search traversal, reachability,
// strongly connected components and topological sort on a directed core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Post‑order hook (OnExit), called after all descendants finish
//   - Full traversal over every vertex (a DFS forest)
//   - Reverse direction (walk predecessors)
//   - Reachable: descendants (or, reversed, ancestors) of a vertex.
//   - StronglyConnected: Tarjan's SCC decomposition, used to collapse
//     equivalent classes that form subsumption cycles.
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning ErrCycleDetected if cycles exist.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds OnExit, FullTraversal, Reverse
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:               Time O(V+E), Memory O(V)
//   - Reachable:         Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V)
//   - TopologicalSort:   Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered in DAG operations
//   - ErrNeighborFetch        neighbor lookup failed
//   - hook errors             propagated from OnExit
package dfs
