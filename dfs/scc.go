package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/closeworld/core"
)

// StronglyConnected partitions the vertices of g into strongly connected
// components using Tarjan's algorithm.
//
// Each component is sorted lexicographically and the component list is sorted
// by its first member, so the output is deterministic. A DAG yields one
// singleton component per vertex.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
func StronglyConnected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int, len(verts)),
		low:     make(map[string]int, len(verts)),
		onStack: make(map[string]bool, len(verts)),
	}
	for _, v := range verts {
		if _, seen := t.index[v]; !seen {
			if err := t.strongConnect(v); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range t.comps {
		sort.Strings(c)
	}
	sort.Slice(t.comps, func(i, j int) bool { return t.comps[i][0] < t.comps[j][0] })

	return t.comps, nil
}

// tarjan holds the bookkeeping of one StronglyConnected run.
type tarjan struct {
	graph   *core.Graph
	next    int
	index   map[string]int
	low     map[string]int
	stack   []string
	onStack map[string]bool
	comps   [][]string
}

func (t *tarjan) strongConnect(id string) error {
	t.index[id] = t.next
	t.low[id] = t.next
	t.next++
	t.stack = append(t.stack, id)
	t.onStack[id] = true

	successors, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, to := range successors {
		if _, seen := t.index[to]; !seen {
			if err = t.strongConnect(to); err != nil {
				return err
			}
			t.low[id] = min(t.low[id], t.low[to])
		} else if t.onStack[to] {
			t.low[id] = min(t.low[id], t.index[to])
		}
	}

	// id is the root of a component: pop it off.
	if t.low[id] == t.index[id] {
		var comp []string
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			comp = append(comp, top)
			if top == id {
				break
			}
		}
		t.comps = append(t.comps, comp)
	}

	return nil
}
