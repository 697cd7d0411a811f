package bfs

import (
	"github.com/katalvlaran/closeworld/core"
)

// Components returns the connected components of the underlying undirected
// graph. Each component lists its vertices in BFS order from its
// lexicographically smallest member; components are ordered by that member.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// IsConnected reports whether the underlying undirected graph has at most one
// component. The empty graph is connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}

// IsTree reports whether the underlying undirected graph is connected and
// acyclic, i.e. |E| = |V| - 1 on a connected graph. The empty graph is a tree.
//
// Antiparallel edges u→v, v→u form an undirected cycle and fail the test.
func IsTree(g *core.Graph) (bool, error) {
	ok, err := IsConnected(g)
	if err != nil || !ok {
		return false, err
	}
	n := g.VertexCount()
	if n == 0 {
		return true, nil
	}

	return g.EdgeCount() == n-1, nil
}
