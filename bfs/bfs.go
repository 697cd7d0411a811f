package bfs

import (
	"fmt"

	"github.com/katalvlaran/closeworld/core"
)

// walker holds the queue and result of one search.
type walker struct {
	graph *core.Graph
	queue []string
	res   *BFSResult
}

// BFS runs breadth-first search on the underlying undirected graph of g,
// starting from startID. Neighbors are expanded in lexicographic order.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ErrNeighbors if a neighbor lookup fails.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		queue: make([]string, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.res.Depth[startID] = 0
	w.queue = append(w.queue, startID)

	return w.res, w.loop()
}

// loop dequeues vertices until the component is exhausted.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)

		nbs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nb := range nbs {
			if _, seen := w.res.Depth[nb]; seen {
				continue
			}
			w.res.Depth[nb] = w.res.Depth[id] + 1
			w.res.Parent[nb] = id
			w.queue = append(w.queue, nb)
		}
	}

	return nil
}
