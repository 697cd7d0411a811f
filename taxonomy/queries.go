package taxonomy

import (
	"strings"

	"github.com/katalvlaran/closeworld/dfs"
	"github.com/katalvlaran/closeworld/expr"
)

// Every query is total: an absent vertex has no relatives. Results are
// sorted by canonical key.

// Len returns the number of vertices.
func (t *Taxonomy) Len() int { return t.g.VertexCount() }

// EdgeCount returns the number of edges.
func (t *Taxonomy) EdgeCount() int { return t.g.EdgeCount() }

// Vertices returns all vertices.
func (t *Taxonomy) Vertices() []expr.Expression { return t.exprsOf(t.g.Vertices()) }

// Edges returns all edges ordered by (super key, sub key).
func (t *Taxonomy) Edges() []Edge {
	raw := t.g.Edges()
	out := make([]Edge, len(raw))
	for i, e := range raw {
		out[i] = Edge{Super: t.exprs[e.From], Sub: t.exprs[e.To]}
	}

	return out
}

// HasVertex reports whether v is a vertex.
func (t *Taxonomy) HasVertex(v expr.Expression) bool {
	return v != nil && t.g.HasVertex(v.Key())
}

// HasEdge reports whether super→sub is an edge.
func (t *Taxonomy) HasEdge(super, sub expr.Expression) bool {
	return super != nil && sub != nil && t.g.HasEdge(super.Key(), sub.Key())
}

// ChildrenOf returns the targets of v's outgoing edges.
func (t *Taxonomy) ChildrenOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.childKeys(v))
}

// ParentsOf returns the sources of v's incoming edges.
func (t *Taxonomy) ParentsOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.parentKeys(v))
}

// DescendantsOf returns every vertex reachable from v.
func (t *Taxonomy) DescendantsOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.reach(v, false))
}

// AncestorsOf returns every vertex from which v is reachable.
func (t *Taxonomy) AncestorsOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.reach(v, true))
}

// DirectChildrenOf returns the children of v that are not reachable through
// another child of v.
func (t *Taxonomy) DirectChildrenOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.nearest(t.childKeys(v), false))
}

// DirectParentsOf returns the parents of v that are not reachable backwards
// through another parent of v.
func (t *Taxonomy) DirectParentsOf(v expr.Expression) []expr.Expression {
	return t.exprsOf(t.nearest(t.parentKeys(v), true))
}

// Roots returns the vertices without parents.
func (t *Taxonomy) Roots() []expr.Expression {
	var roots []string
	for _, k := range t.g.Vertices() {
		if in, _, err := t.g.Degree(k); err == nil && in == 0 {
			roots = append(roots, k)
		}
	}

	return t.exprsOf(roots)
}

// MultiParentChild returns the first vertex, in deterministic topological
// order, with more than one direct parent. Ancestor sets are built along the
// order and the scan stops at the first hit.
func (t *Taxonomy) MultiParentChild() (expr.Expression, bool) {
	order, err := dfs.TopologicalSort(t.g)
	if err != nil {
		// unreachable: construction removes cycles and no transformation adds one
		panic(err)
	}
	anc := make(map[string]keySet, len(order))
	for _, k := range order {
		parents, _ := t.g.Predecessors(k)
		up := make(keySet)
		for _, p := range parents {
			up[p] = struct{}{}
			for a := range anc[p] {
				up[a] = struct{}{}
			}
		}
		anc[k] = up
		if len(parents) > 1 && len(nearestIn(parents, anc)) > 1 {
			return t.exprs[k], true
		}
	}

	return nil, false
}

// Equal reports whether t and o have the same vertices and edges.
func (t *Taxonomy) Equal(o *Taxonomy) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Len() != o.Len() || t.EdgeCount() != o.EdgeCount() {
		return false
	}
	for _, k := range t.g.Vertices() {
		if !o.g.HasVertex(k) {
			return false
		}
	}
	for _, e := range t.g.Edges() {
		if !o.g.HasEdge(e.From, e.To) {
			return false
		}
	}

	return true
}

// String lists the edges as "super→sub" separated by commas, followed by any
// isolated vertices.
func (t *Taxonomy) String() string {
	parts := make([]string, 0, t.EdgeCount())
	for _, e := range t.Edges() {
		parts = append(parts, e.String())
	}
	for _, v := range t.Vertices() {
		if len(t.childKeys(v)) == 0 && len(t.parentKeys(v)) == 0 {
			parts = append(parts, v.String())
		}
	}

	return strings.Join(parts, ", ")
}

func (t *Taxonomy) childKeys(v expr.Expression) []string {
	if v == nil {
		return nil
	}
	ks, _ := t.g.Successors(v.Key())

	return ks
}

func (t *Taxonomy) parentKeys(v expr.Expression) []string {
	if v == nil {
		return nil
	}
	ks, _ := t.g.Predecessors(v.Key())

	return ks
}

func (t *Taxonomy) reach(v expr.Expression, up bool) []string {
	if v == nil {
		return nil
	}

	return t.reachKey(v.Key(), up)
}

func (t *Taxonomy) reachKey(k string, up bool) []string {
	var opts []dfs.Option
	if up {
		opts = append(opts, dfs.WithReverse())
	}
	ks, _ := dfs.Reachable(t.g, k, opts...)

	return ks
}

// nearest drops every key in ks reachable from another key in ks
// (walking backwards when up is set).
func (t *Taxonomy) nearest(ks []string, up bool) []string {
	if len(ks) < 2 {
		return ks
	}
	covered := make(map[string]struct{})
	for _, k := range ks {
		for _, r := range t.reachKey(k, up) {
			covered[r] = struct{}{}
		}
	}
	out := make([]string, 0, len(ks))
	for _, k := range ks {
		if _, ok := covered[k]; !ok {
			out = append(out, k)
		}
	}

	return out
}

// keySet is a set of vertex keys.
type keySet map[string]struct{}

// closure maps every vertex to the keys reachable from it (walking backwards
// when up is set). One post-order pass fills it: a vertex exits after all of
// its neighbors, so their sets are complete by then.
func (t *Taxonomy) closure(up bool) map[string]keySet {
	sets := make(map[string]keySet, t.Len())
	next := t.g.Successors
	opts := []dfs.Option{dfs.WithFullTraversal()}
	if up {
		next = t.g.Predecessors
		opts = append(opts, dfs.WithReverse())
	}
	opts = append(opts, dfs.WithOnExit(func(k string) error {
		nbs, err := next(k)
		if err != nil {
			return err
		}
		set := make(keySet, len(nbs))
		for _, nb := range nbs {
			set[nb] = struct{}{}
			for r := range sets[nb] {
				set[r] = struct{}{}
			}
		}
		sets[k] = set
		return nil
	}))
	_, _ = dfs.DFS(t.g, "", opts...)

	return sets
}

// nearestIn is nearest over precomputed reachability sets.
func nearestIn(ks []string, sets map[string]keySet) []string {
	out := make([]string, 0, len(ks))
	for _, k := range ks {
		covered := false
		for _, o := range ks {
			if _, ok := sets[o][k]; ok && o != k {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, k)
		}
	}

	return out
}
