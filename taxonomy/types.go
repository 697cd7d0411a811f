package taxonomy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/closeworld/core"
	"github.com/katalvlaran/closeworld/dfs"
	"github.com/katalvlaran/closeworld/expr"
)

// Sentinel errors.
var (
	// ErrUnconnectedTaxonomy indicates the underlying undirected graph has
	// more than one component. Closure requires a single hierarchy.
	ErrUnconnectedTaxonomy = errors.New("taxonomy: taxonomy is not connected")

	// ErrInvalidTree indicates a taxonomy expected to be a tree is not one.
	// After Treeify this signals a defect rather than bad input.
	ErrInvalidTree = errors.New("taxonomy: taxonomy is not a tree")

	// ErrNilVertex indicates a nil expression was passed to New.
	ErrNilVertex = errors.New("taxonomy: nil vertex")
)

// Edge is a subsumption Super ⊒ Sub, stored as the directed edge Super→Sub.
type Edge struct {
	Super expr.Expression
	Sub   expr.Expression
}

// String renders the edge as "super→sub".
func (e Edge) String() string {
	return e.Super.String() + "→" + e.Sub.String()
}

// Taxonomy is an immutable DAG of class expressions.
//
// Vertices are identified by canonical expression key. Every method that
// "changes" the taxonomy returns a new value; the receiver is never mutated,
// so a Taxonomy may be shared freely between goroutines.
type Taxonomy struct {
	g     *core.Graph                // keys only; never mutated after build
	exprs map[string]expr.Expression // key → expression; copy-on-extend
}

// New builds a taxonomy from vertices and subsumption edges. Edge endpoints
// are added as vertices automatically and reflexive edges are ignored.
//
// Subsumption cycles are legal input: all classes on a cycle are equivalent,
// so each strongly connected component is collapsed into one representative,
// the member with the smallest rendering (ties broken by key).
func New(vertices []expr.Expression, edges []Edge) (*Taxonomy, error) {
	exprs := make(map[string]expr.Expression, len(vertices)+2*len(edges))
	g := core.NewGraph()

	add := func(e expr.Expression) error {
		if e == nil {
			return ErrNilVertex
		}
		exprs[e.Key()] = e

		return g.AddVertex(e.Key())
	}
	for _, v := range vertices {
		if err := add(v); err != nil {
			return nil, err
		}
	}
	for i, e := range edges {
		if err := add(e.Super); err != nil {
			return nil, fmt.Errorf("taxonomy: edge %d: %w", i, err)
		}
		if err := add(e.Sub); err != nil {
			return nil, fmt.Errorf("taxonomy: edge %d: %w", i, err)
		}
		if e.Super.Key() == e.Sub.Key() {
			continue
		}
		if err := g.AddEdge(e.Super.Key(), e.Sub.Key()); err != nil {
			return nil, fmt.Errorf("taxonomy: edge %d: %w", i, err)
		}
	}

	return condense(&Taxonomy{g: g, exprs: exprs})
}

// FromEdges builds a taxonomy over atoms from (super, sub) name pairs.
func FromEdges(pairs [][2]string) (*Taxonomy, error) {
	edges := make([]Edge, 0, len(pairs))
	for i, p := range pairs {
		sup, err := expr.ParseAtom(p[0])
		if err != nil {
			return nil, fmt.Errorf("taxonomy: pair %d: %w", i, err)
		}
		sub, err := expr.ParseAtom(p[1])
		if err != nil {
			return nil, fmt.Errorf("taxonomy: pair %d: %w", i, err)
		}
		edges = append(edges, Edge{Super: sup, Sub: sub})
	}

	return New(nil, edges)
}

// condense collapses strongly connected components of t.
func condense(t *Taxonomy) (*Taxonomy, error) {
	comps, err := dfs.StronglyConnected(t.g)
	if err != nil {
		return nil, err
	}

	rep := make(map[string]string)
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		members := t.exprsOf(comp)
		sort.SliceStable(members, func(i, j int) bool {
			si, sj := members[i].String(), members[j].String()
			if si != sj {
				return si < sj
			}
			return members[i].Key() < members[j].Key()
		})
		for _, m := range members {
			rep[m.Key()] = members[0].Key()
		}
	}
	if len(rep) == 0 {
		return t, nil
	}

	return t.rename(func(k string) string {
		if r, ok := rep[k]; ok {
			return r
		}
		return k
	}, nil), nil
}

// derive returns a taxonomy over graph g sharing t's expression arena.
func (t *Taxonomy) derive(g *core.Graph) *Taxonomy {
	return &Taxonomy{g: g, exprs: t.exprs}
}

// withExprs returns a copy of the arena extended by es.
func (t *Taxonomy) withExprs(es ...expr.Expression) map[string]expr.Expression {
	out := make(map[string]expr.Expression, len(t.exprs)+len(es))
	for k, e := range t.exprs {
		out[k] = e
	}
	for _, e := range es {
		out[e.Key()] = e
	}

	return out
}

// rename rebuilds t with every vertex key mapped through f. Edges whose
// endpoints collapse onto one vertex are dropped, as are edges for which
// drop returns true (checked on the original keys). extra joins the arena.
func (t *Taxonomy) rename(f func(string) string, drop func(from, to string) bool, extra ...expr.Expression) *Taxonomy {
	g := core.NewGraph()
	for _, v := range t.g.Vertices() {
		_ = g.AddVertex(f(v))
	}
	for _, e := range t.g.Edges() {
		if drop != nil && drop(e.From, e.To) {
			continue
		}
		from, to := f(e.From), f(e.To)
		if from == to {
			continue
		}
		_ = g.AddEdge(from, to)
	}
	if len(extra) == 0 {
		return t.derive(g)
	}

	return &Taxonomy{g: g, exprs: t.withExprs(extra...)}
}

// exprsOf maps keys to expressions, preserving order.
func (t *Taxonomy) exprsOf(keys []string) []expr.Expression {
	out := make([]expr.Expression, len(keys))
	for i, k := range keys {
		out[i] = t.exprs[k]
	}

	return out
}
