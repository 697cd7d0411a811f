package taxonomy

import (
	"github.com/katalvlaran/closeworld/core"
	"github.com/katalvlaran/closeworld/expr"
)

// ExciseVertex removes v and connects each parent of v to each child of v.
// If v is absent the receiver is returned.
func (t *Taxonomy) ExciseVertex(v expr.Expression) *Taxonomy {
	if !t.HasVertex(v) {
		return t
	}
	parents, children := t.parentKeys(v), t.childKeys(v)

	g := t.g.Clone()
	_ = g.RemoveVertex(v.Key())
	for _, p := range parents {
		for _, c := range children {
			_ = g.AddEdge(p, c)
		}
	}

	return t.derive(g)
}

// ExciseVertices excises every vertex in vs, one after another.
func (t *Taxonomy) ExciseVertices(vs ...expr.Expression) *Taxonomy {
	out := t
	for _, v := range vs {
		out = out.ExciseVertex(v)
	}

	return out
}

// ExciseVerticesIf excises every vertex for which pred returns true.
func (t *Taxonomy) ExciseVerticesIf(pred func(expr.Expression) bool) *Taxonomy {
	var doomed []expr.Expression
	for _, v := range t.Vertices() {
		if pred(v) {
			doomed = append(doomed, v)
		}
	}

	return t.ExciseVertices(doomed...)
}

// TransitiveReduction removes every edge p→c for which a longer path from p
// to c exists.
func (t *Taxonomy) TransitiveReduction() *Taxonomy {
	desc := t.closure(false)
	g := t.g.Clone()
	g.FilterEdges(func(e core.Edge) bool {
		kids, _ := t.g.Successors(e.From)
		for _, k := range kids {
			if _, ok := desc[k][e.To]; ok && k != e.To {
				return false
			}
		}
		return true
	})

	return t.derive(g)
}

// RootAt adds root and an edge from it to every current root. A current root
// that is already an ancestor of root is left alone so no cycle is created.
func (t *Taxonomy) RootAt(root expr.Expression) *Taxonomy {
	if root == nil {
		panic(expr.ErrNilOperand)
	}
	roots := t.Roots()
	ancestors := make(map[string]struct{})
	for _, k := range t.reach(root, true) {
		ancestors[k] = struct{}{}
	}

	g := t.g.Clone()
	_ = g.AddVertex(root.Key())
	for _, r := range roots {
		if _, up := ancestors[r.Key()]; up || r.Key() == root.Key() {
			continue
		}
		_ = g.AddEdge(root.Key(), r.Key())
	}

	return &Taxonomy{g: g, exprs: t.withExprs(root)}
}

// BypassParent removes parent→child and links every direct parent of parent
// to child instead. If parent→child is not an edge the receiver is returned.
func (t *Taxonomy) BypassParent(child, parent expr.Expression) *Taxonomy {
	if !t.HasEdge(parent, child) {
		return t
	}
	grand := t.nearest(t.parentKeys(parent), true)

	g := t.g.Clone()
	_ = g.RemoveEdge(parent.Key(), child.Key())
	for _, gp := range grand {
		_ = g.AddEdge(gp, child.Key())
	}

	return t.derive(g)
}

// BypassParents applies BypassParent for each parent in turn.
func (t *Taxonomy) BypassParents(child expr.Expression, parents []expr.Expression) *Taxonomy {
	out := t
	for _, p := range parents {
		out = out.BypassParent(child, p)
	}

	return out
}

// ReduceChild keeps only the edges into child that come from its direct
// parents.
func (t *Taxonomy) ReduceChild(child expr.Expression) *Taxonomy {
	parents := t.parentKeys(child)
	direct := t.nearest(parents, true)
	if len(direct) == len(parents) {
		return t
	}
	keep := make(keySet, len(direct))
	for _, k := range direct {
		keep[k] = struct{}{}
	}
	ck := child.Key()

	g := t.g.Clone()
	g.FilterEdges(func(e core.Edge) bool {
		if e.To != ck {
			return true
		}
		_, ok := keep[e.From]
		return ok
	})

	return t.derive(g)
}

// IsolateChildFromOne replaces parent with parent\child everywhere,
// dropping any parent→child edge. A parent without parents of its own is not
// split and the receiver is returned.
func (t *Taxonomy) IsolateChildFromOne(child, parent expr.Expression) *Taxonomy {
	if !t.HasVertex(parent) || len(t.parentKeys(parent)) == 0 {
		return t
	}
	diff := expr.Difference(parent, child)
	pk, ck, dk := parent.Key(), child.Key(), diff.Key()

	return t.rename(
		func(k string) string {
			if k == pk {
				return dk
			}
			return k
		},
		func(from, to string) bool { return from == pk && to == ck },
		diff,
	)
}

// IsolateChild applies IsolateChildFromOne for each parent in turn.
func (t *Taxonomy) IsolateChild(child expr.Expression, parents []expr.Expression) *Taxonomy {
	out := t
	for _, p := range parents {
		out = out.IsolateChildFromOne(child, p)
	}

	return out
}
