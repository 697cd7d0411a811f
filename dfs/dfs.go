package dfs

import (
	"fmt"

	"github.com/katalvlaran/closeworld/core"
)

// walker holds the state of one DFS run.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID, or over the whole graph
// with WithFullTraversal. Neighbors are expanded in lexicographic order and
// self-loops are ignored.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound (single-source mode only),
// ErrNeighborFetch, or the error returned by an OnExit hook.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(startID, 0)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// next returns the sorted neighbor IDs of id in the configured direction.
func (w *walker) next(id string) ([]string, error) {
	if w.opts.Reverse {
		return w.graph.Predecessors(id)
	}

	return w.graph.Successors(id)
}

func (w *walker) traverse(id string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	nbs, err := w.next(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
	}
	for _, nid := range nbs {
		if nid == id || w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
