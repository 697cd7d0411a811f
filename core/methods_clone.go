// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
//
// Complexity: O(V) to copy vertices and initialize adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	var id string
	for id = range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.out[id] = make(map[string]struct{})
		clone.in[id] = make(map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of vertices, edges and both adjacency indexes.
// The clone shares no maps with the receiver.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var from, to string
	var targets map[string]struct{}
	for from, targets = range g.out {
		for to = range targets {
			clone.out[from][to] = struct{}{}
			clone.in[to][from] = struct{}{}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
