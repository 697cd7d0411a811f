package dfs

import (
	"sort"

	"github.com/katalvlaran/closeworld/core"
)

// Reachable returns every vertex reachable from startID by one or more
// edges, sorted lexicographically. startID itself is never part of the result.
//
// Pass WithReverse() to walk predecessors instead (ancestors rather than
// descendants).
//
// Complexity: O(V + E).
func Reachable(g *core.Graph, startID string, opts ...Option) ([]string, error) {
	res, err := DFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(res.Visited))
	for id := range res.Visited {
		if id != startID {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out, nil
}
