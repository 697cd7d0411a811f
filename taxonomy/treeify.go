package taxonomy

import (
	"fmt"

	"github.com/katalvlaran/closeworld/bfs"
	"github.com/katalvlaran/closeworld/expr"
)

// Treeify rewrites t into an equivalent tree.
//
// After one transitive reduction, each round picks the first multi-parent
// vertex child with parents P and applies
//
//	BypassParents(child, P) → ReduceChild(child) → IsolateChild(child, P)
//
// until no multi-parent vertex remains. A round keeps the graph reduced:
// bypassing only shortens paths that already existed, ReduceChild drops the
// redundant edges into child, and isolation renames vertices. Only a rename
// onto an existing vertex can add paths, so the reduction is repeated when
// a round shrinks the vertex count.
//
// A taxonomy with several roots is first rooted at Universal so that
// bypassing a root parent never detaches child.
//
// On a connected input the result passes EnsureTree. Treeify is idempotent.
func (t *Taxonomy) Treeify() *Taxonomy {
	cur := t
	if len(cur.Roots()) > 1 {
		cur = cur.RootAt(expr.U())
	}
	cur = cur.TransitiveReduction()

	// Each round resolves one sharing; the bound only guards against defects,
	// which EnsureTree then reports.
	n := cur.Len() + cur.EdgeCount() + 1
	for round := 0; round < n*n; round++ {
		child, ok := cur.MultiParentChild()
		if !ok {
			return cur
		}
		size := cur.Len()
		cur = cur.BypassIsolate(child)
		if cur.Len() < size {
			cur = cur.TransitiveReduction()
		}
	}

	return cur
}

// BypassIsolate runs one treeify round for child: bypass all of its parents,
// reduce its incoming edges, then isolate it from the former parents.
func (t *Taxonomy) BypassIsolate(child expr.Expression) *Taxonomy {
	parents := t.ParentsOf(child)

	return t.BypassParents(child, parents).
		ReduceChild(child).
		IsolateChild(child, parents)
}

// SiblingGroup is a vertex with two or more children.
type SiblingGroup struct {
	Parent   expr.Expression
	Children []expr.Expression
}

// SiblingMap returns, for every vertex with at least two outgoing edges, its
// children. Groups are ordered by parent key and children by key.
func (t *Taxonomy) SiblingMap() []SiblingGroup {
	var groups []SiblingGroup
	for _, p := range t.Vertices() {
		kids := t.ChildrenOf(p)
		if len(kids) < 2 {
			continue
		}
		groups = append(groups, SiblingGroup{Parent: p, Children: kids})
	}

	return groups
}

// IsConnected reports whether the underlying undirected graph is connected.
// The empty taxonomy is connected.
func (t *Taxonomy) IsConnected() bool {
	ok, _ := bfs.IsConnected(t.g)
	return ok
}

// EnsureConnected returns an error wrapping ErrUnconnectedTaxonomy if t is
// not connected.
func (t *Taxonomy) EnsureConnected() error {
	comps, err := bfs.Components(t.g)
	if err != nil {
		return err
	}
	if len(comps) > 1 {
		return fmt.Errorf("%w: %d components", ErrUnconnectedTaxonomy, len(comps))
	}

	return nil
}

// IsTree reports whether the underlying undirected graph is connected and
// acyclic. The empty taxonomy is a tree.
func (t *Taxonomy) IsTree() bool {
	ok, _ := bfs.IsTree(t.g)
	return ok
}

// EnsureTree returns an error wrapping ErrInvalidTree if t is not a tree.
func (t *Taxonomy) EnsureTree() error {
	if !t.IsTree() {
		return fmt.Errorf("%w: %d vertices, %d edges", ErrInvalidTree, t.Len(), t.EdgeCount())
	}

	return nil
}
