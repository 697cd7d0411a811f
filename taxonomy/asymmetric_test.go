package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/taxonomy"
)

// asymmetric is the ten-vertex DAG in which i is shared by c and e, and k is
// shared by f and j.
type asymmetric struct {
	v       vertexMap
	initial *taxonomy.Taxonomy
}

var asymmetricEdges = []string{
	"a", "b",
	"a", "c",
	"b", "d",
	"b", "e",
	"c", "f",
	"c", "g",
	"c", "i",
	"e", "h",
	"e", "i",
	"f", "k",
	"i", "j",
	"j", "k",
}

func newAsymmetric(t *testing.T) asymmetric {
	t.Helper()
	v := atoms("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k")
	v[`c\i`] = expr.Difference(v["c"], v["i"])
	v[`e\i`] = expr.Difference(v["e"], v["i"])
	v[`c\(i∪k)`] = expr.Difference(v["c"], expr.Union(v["i"], v["k"]))
	v[`f\k`] = expr.Difference(v["f"], v["k"])
	v[`i\k`] = expr.Difference(v["i"], v["k"])
	v[`j\k`] = expr.Difference(v["j"], v["k"])

	return asymmetric{v: v, initial: v.build(t, asymmetricEdges...)}
}

func (s asymmetric) afterReduce(t *testing.T) *taxonomy.Taxonomy {
	return s.v.build(t,
		"a", "b",
		"a", "c",
		"b", "d",
		"b", "e",
		"b", "i",
		"c", "f",
		"c", "g",
		"e", "h",
		"f", "k",
		"i", "j",
		"j", "k",
	)
}

func (s asymmetric) treeified(t *testing.T) *taxonomy.Taxonomy {
	return s.v.build(t,
		"a", "b",
		"a", `c\(i∪k)`,
		"b", "d",
		"b", `e\i`,
		"b", `i\k`,
		"b", "k",
		`c\(i∪k)`, `f\k`,
		`c\(i∪k)`, "g",
		`e\i`, "h",
		`i\k`, `j\k`,
	)
}

func TestAsymmetric_Queries(t *testing.T) {
	s := newAsymmetric(t)
	v, tx := s.v, s.initial

	assert.Equal(t, 11, tx.Len())
	assert.Equal(t, 12, tx.EdgeCount())
	assert.Equal(t, v.set("b", "c"), tx.ChildrenOf(v["a"]))
	assert.Equal(t, v.set("b", "c", "d", "e", "f", "g", "h", "i", "j", "k"), tx.DescendantsOf(v["a"]))
	assert.Equal(t, v.set("b", "c"), tx.DirectChildrenOf(v["a"]))
	assert.Equal(t, v.set("c", "e"), tx.ParentsOf(v["i"]))
	assert.Equal(t, v.set("a", "b", "c", "e"), tx.AncestorsOf(v["i"]))
	assert.Equal(t, v.set("c", "e"), tx.DirectParentsOf(v["i"]))
	assert.Equal(t, v.set("a"), tx.Roots())

	child, ok := tx.MultiParentChild()
	require.True(t, ok)
	assert.True(t, expr.Equal(v["i"], child))
}

func TestAsymmetric_Excise(t *testing.T) {
	s := newAsymmetric(t)
	v := s.v

	want := v.build(t,
		"a", "b",
		"a", "c",
		"b", "d",
		"b", "e",
		"c", "f",
		"c", "g",
		"c", "j",
		"e", "h",
		"e", "j",
		"f", "k",
		"j", "k",
	)
	requireEqual(t, want, s.initial.ExciseVertex(v["i"]))

	remaining := v.build(t,
		"c", "f",
		"c", "i",
		"f", "k",
		"i", "j",
		"j", "k",
	)
	doomed := v.set("a", "b", "d", "e", "g", "h")
	requireEqual(t, remaining, s.initial.ExciseVertices(doomed...))

	inDoomed := func(e expr.Expression) bool {
		for _, d := range doomed {
			if expr.Equal(d, e) {
				return true
			}
		}
		return false
	}
	requireEqual(t, remaining, s.initial.ExciseVerticesIf(inDoomed))

	// the receiver is untouched
	assert.Equal(t, 11, s.initial.Len())
	assert.True(t, s.initial.HasVertex(v["i"]))
}

func TestAsymmetric_RootAtAndReduction(t *testing.T) {
	s := newAsymmetric(t)
	v := s.v

	unrooted := v.build(t, asymmetricEdges[4:]...)
	requireEqual(t, s.initial, unrooted.RootAt(v["a"]))

	redundant := v.build(t, append([]string{
		"a", "d",
		"a", "e",
		"a", "f",
		"a", "g",
		"a", "h",
		"a", "i",
		"a", "j",
		"a", "k",
		"b", "h",
		"b", "i",
		"b", "j",
		"c", "j",
		"b", "k",
		"c", "k",
		"e", "j",
		"e", "k",
		"i", "k",
	}, asymmetricEdges...)...)
	requireEqual(t, s.initial, redundant.TransitiveReduction())
}

func TestAsymmetric_BypassReduceIsolate(t *testing.T) {
	s := newAsymmetric(t)
	v := s.v
	i := v["i"]

	afterBypassOne := v.build(t,
		"a", "b",
		"a", "c",
		"b", "d",
		"b", "e",
		"c", "f",
		"c", "g",
		"a", "i",
		"e", "h",
		"e", "i",
		"f", "k",
		"i", "j",
		"j", "k",
	)
	requireEqual(t, afterBypassOne, s.initial.BypassParent(i, v["c"]))

	afterBypassAll := v.build(t,
		"a", "b",
		"a", "c",
		"a", "i",
		"b", "d",
		"b", "e",
		"b", "i",
		"c", "f",
		"c", "g",
		"e", "h",
		"f", "k",
		"i", "j",
		"j", "k",
	)
	bypassed := s.initial.BypassParents(i, s.initial.ParentsOf(i))
	requireEqual(t, afterBypassAll, bypassed)

	reduced := bypassed.ReduceChild(i)
	requireEqual(t, s.afterReduce(t), reduced)

	afterIsolateOne := v.build(t,
		"a", "b",
		"a", `c\i`,
		"b", "d",
		"b", "e",
		"b", "i",
		`c\i`, "f",
		`c\i`, "g",
		"e", "h",
		"f", "k",
		"i", "j",
		"j", "k",
	)
	requireEqual(t, afterIsolateOne, reduced.IsolateChildFromOne(i, v["c"]))

	afterIsolateAll := v.build(t,
		"a", "b",
		"a", `c\i`,
		"b", "d",
		"b", `e\i`,
		"b", "i",
		`c\i`, "f",
		`c\i`, "g",
		`e\i`, "h",
		"f", "k",
		"i", "j",
		"j", "k",
	)
	requireEqual(t, afterIsolateAll, reduced.IsolateChild(i, s.initial.ParentsOf(i)))
	requireEqual(t, afterIsolateAll, s.initial.BypassIsolate(i))

	// a root parent is never split
	requireEqual(t, reduced, reduced.IsolateChildFromOne(v["b"], v["a"]))
}

func TestAsymmetric_Treeify(t *testing.T) {
	s := newAsymmetric(t)
	tree := s.initial.Treeify()

	requireEqual(t, s.treeified(t), tree)
	require.NoError(t, tree.EnsureTree())
	requireEqual(t, tree, tree.Treeify())

	_, multi := tree.MultiParentChild()
	assert.False(t, multi)
}

func TestAsymmetric_SiblingMap(t *testing.T) {
	s := newAsymmetric(t)
	v := s.v

	groups := s.treeified(t).SiblingMap()
	require.Len(t, groups, 3)

	got := make(map[string][]expr.Expression, len(groups))
	for _, g := range groups {
		got[g.Parent.String()] = g.Children
	}
	assert.Equal(t, v.set("b", `c\(i∪k)`), got["a"])
	assert.Equal(t, v.set("d", `e\i`, `i\k`, "k"), got["b"])
	assert.Equal(t, v.set(`f\k`, "g"), got[`c\(i∪k)`])
}
