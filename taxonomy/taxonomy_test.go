package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/taxonomy"
)

func TestNew_Errors(t *testing.T) {
	a := expr.NewAtom("a")

	_, err := taxonomy.New([]expr.Expression{a, nil}, nil)
	assert.ErrorIs(t, err, taxonomy.ErrNilVertex)

	_, err = taxonomy.New(nil, []taxonomy.Edge{{Super: a, Sub: nil}})
	assert.ErrorIs(t, err, taxonomy.ErrNilVertex)

	_, err = taxonomy.FromEdges([][2]string{{"a", "b"}, {"  ", "c"}})
	assert.ErrorIs(t, err, expr.ErrEmptyAtomID)
}

func TestNew_ReflexiveAndIsolated(t *testing.T) {
	v := atoms("a", "b", "z")
	tx, err := taxonomy.New(
		[]expr.Expression{v["z"]},
		[]taxonomy.Edge{{Super: v["a"], Sub: v["a"]}, {Super: v["a"], Sub: v["b"]}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, tx.Len())
	assert.Equal(t, 1, tx.EdgeCount())
	assert.False(t, tx.HasEdge(v["a"], v["a"]))
	assert.Equal(t, v.set("a", "z"), tx.Roots())
	assert.Equal(t, "a→b, z", tx.String())
	assert.False(t, tx.IsConnected())
	assert.ErrorIs(t, tx.EnsureConnected(), taxonomy.ErrUnconnectedTaxonomy)
}

func TestNew_CondensesCycles(t *testing.T) {
	v := atoms("root", "x", "y", "leaf")
	tx := v.build(t,
		"root", "x",
		"x", "y",
		"y", "x",
		"y", "leaf",
	)

	// x and y are equivalent; x renders first and represents both.
	assert.Equal(t, 3, tx.Len())
	assert.True(t, tx.HasVertex(v["x"]))
	assert.False(t, tx.HasVertex(v["y"]))
	assert.True(t, tx.HasEdge(v["root"], v["x"]))
	assert.True(t, tx.HasEdge(v["x"], v["leaf"]))
	assert.True(t, tx.IsTree())
}

func TestFromEdges(t *testing.T) {
	tx, err := taxonomy.FromEdges([][2]string{{"Vehicle", "Car"}, {"Vehicle", "Truck"}})
	require.NoError(t, err)

	v := atoms("Vehicle", "Car", "Truck")
	requireEqual(t, v.build(t, "Vehicle", "Car", "Vehicle", "Truck"), tx)
	assert.Equal(t, "Vehicle→Car, Vehicle→Truck", tx.String())
}

func TestQueries_AbsentVertex(t *testing.T) {
	v := atoms("a", "b", "ghost")
	tx := v.build(t, "a", "b")

	assert.False(t, tx.HasVertex(v["ghost"]))
	assert.False(t, tx.HasVertex(nil))
	assert.Empty(t, tx.ChildrenOf(v["ghost"]))
	assert.Empty(t, tx.ParentsOf(v["ghost"]))
	assert.Empty(t, tx.DescendantsOf(v["ghost"]))
	assert.Empty(t, tx.AncestorsOf(v["ghost"]))
	assert.Same(t, tx, tx.ExciseVertex(v["ghost"]))
	assert.Same(t, tx, tx.BypassParent(v["b"], v["ghost"]))
}

func TestEmptyTaxonomy(t *testing.T) {
	empty, err := taxonomy.New(nil, nil)
	require.NoError(t, err)

	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Roots())
	_, ok := empty.MultiParentChild()
	assert.False(t, ok)
	requireEqual(t, empty, empty.ExciseVerticesIf(func(expr.Expression) bool { return true }))
	requireEqual(t, empty, empty.TransitiveReduction())
	requireEqual(t, empty, empty.Treeify())
	assert.True(t, empty.IsConnected())
	assert.NoError(t, empty.EnsureTree())
	assert.Empty(t, empty.SiblingMap())
	assert.Empty(t, empty.SubClassAxioms())

	a := expr.NewAtom("a")
	rooted := empty.RootAt(a)
	assert.Equal(t, 1, rooted.Len())
	assert.Zero(t, rooted.EdgeCount())
	assert.True(t, rooted.HasVertex(a))
}

func TestSingleEdgeTaxonomy(t *testing.T) {
	v := atoms("a", "b")
	tx := v.build(t, "a", "b")

	assert.Equal(t, v.set("b"), tx.ChildrenOf(v["a"]))
	assert.Empty(t, tx.ChildrenOf(v["b"]))
	assert.Equal(t, v.set("a"), tx.AncestorsOf(v["b"]))
	assert.Equal(t, v.set("a"), tx.DirectParentsOf(v["b"]))
	_, ok := tx.MultiParentChild()
	assert.False(t, ok)
	requireEqual(t, tx, tx.Treeify())

	lone, err := taxonomy.New([]expr.Expression{v["b"]}, nil)
	require.NoError(t, err)
	requireEqual(t, tx, lone.RootAt(v["a"]))

	// a sub-root already above the new root is not linked again
	requireEqual(t, tx.RootAt(v["b"]), tx)
}

func TestDoubleEdgeChain(t *testing.T) {
	v := atoms("a", "b", "c")
	abc := v.build(t, "a", "b", "b", "c")

	assert.Equal(t, v.set("b", "c"), abc.DescendantsOf(v["a"]))
	assert.Equal(t, v.set("a", "b"), abc.AncestorsOf(v["c"]))
	requireEqual(t, v.build(t, "b", "c"), abc.ExciseVertex(v["a"]))
	requireEqual(t, v.build(t, "a", "c"), abc.ExciseVertex(v["b"]))
	requireEqual(t, v.build(t, "a", "b"), abc.ExciseVertex(v["c"]))

	onlyA, err := taxonomy.New(v.set("a"), nil)
	require.NoError(t, err)
	requireEqual(t, onlyA, abc.ExciseVertices(v.set("b", "c")...))
}

func TestBundleClosure(t *testing.T) {
	v := atoms("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	tu := v.build(t,
		"a", "b", "a", "c", "a", "i", "b", "c", "b", "d",
		"b", "e", "b", "f", "c", "g", "c", "h", "e", "j",
		"f", "i", "g", "i", "g", "j", "h", "j", "i", "j",
	)
	require.Equal(t, 15, tu.EdgeCount())
	assert.Equal(t, v.set("b", "c", "i"), tu.ChildrenOf(v["a"]))
	assert.Equal(t, v.set("g", "h", "i", "j"), tu.DescendantsOf(v["c"]))
	assert.Equal(t, v.set("b"), tu.DirectChildrenOf(v["a"]))

	tr := tu.TransitiveReduction()
	assert.Equal(t, 12, tr.EdgeCount())
	assert.False(t, tr.HasEdge(v["a"], v["c"]))
	assert.False(t, tr.HasEdge(v["a"], v["i"]))
	assert.False(t, tr.HasEdge(v["g"], v["j"]))
	_, ok := tr.MultiParentChild()
	assert.True(t, ok)

	tree := tu.Treeify()
	require.NoError(t, tree.EnsureTree())
	assert.Equal(t, 10, tree.Len())
	assert.Equal(t, 9, tree.EdgeCount())
	assert.Equal(t, v.set("a"), tree.Roots())
	assert.True(t, tree.HasEdge(v["b"], expr.Difference(v["e"], v["j"])))
	assert.True(t, tree.HasEdge(v["c"], expr.Difference(v["h"], v["j"])))
	assert.True(t, tree.HasEdge(v["c"], expr.Difference(v["i"], v["j"])))
	_, ok = tree.MultiParentChild()
	assert.False(t, ok)
	requireEqual(t, tree, tree.Treeify())
}

func TestTreeify_MultipleRoots(t *testing.T) {
	v := atoms("a", "b", "c")
	v["U"] = expr.U()
	v[`a\c`] = expr.Difference(v["a"], v["c"])
	v[`b\c`] = expr.Difference(v["b"], v["c"])
	tx := v.build(t, "a", "c", "b", "c")

	want := v.build(t,
		"U", `a\c`,
		"U", `b\c`,
		"U", "c",
	)
	tree := tx.Treeify()
	requireEqual(t, want, tree)
	assert.True(t, tree.IsTree())
}

func TestEnsureTree(t *testing.T) {
	v := atoms("a", "b", "c")
	diamondish := v.build(t, "a", "b", "a", "c", "b", "c")
	assert.False(t, diamondish.IsTree())
	assert.ErrorIs(t, diamondish.EnsureTree(), taxonomy.ErrInvalidTree)
	assert.NoError(t, diamondish.Treeify().EnsureTree())
}

func TestSubClassAxioms(t *testing.T) {
	v := atoms("a", "b", "c")
	tx := v.build(t, "a", "c", "a", "b")

	got := tx.SubClassAxioms()
	require.Len(t, got, 2)
	assert.Equal(t, "SubClassOf(b, a)", got[0].String())
	assert.Equal(t, "SubClassOf(c, a)", got[1].String())
	assert.Equal(t, axiom.KindSubClassOf, got[0].Kind())
}

func TestMultiParentChild_IgnoresShortcuts(t *testing.T) {
	v := atoms("a", "b", "c", "d")

	// a→c is implied by a→b→c, so c has a single direct parent
	shortcut := v.build(t, "a", "b", "b", "c", "a", "c")
	_, ok := shortcut.MultiParentChild()
	assert.False(t, ok)

	diamond := v.build(t, "a", "b", "a", "c", "b", "d", "c", "d", "a", "d")
	got, ok := diamond.MultiParentChild()
	require.True(t, ok)
	assert.Equal(t, v["d"], got)
	assert.Equal(t, v.set("b", "c"), diamond.DirectParentsOf(v["d"]))
}

func TestTreeify_RandomConnectedDAGs(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		n := 2 + int(seed%7)*8
		tx := buildRandomDAG(t, n, 0.15, seed)
		require.True(t, tx.IsConnected(), "seed %d", seed)

		tree := tx.Treeify()
		require.NoError(t, tree.EnsureTree(), "seed %d: %s", seed, tx)
		_, ok := tree.MultiParentChild()
		assert.False(t, ok, "seed %d", seed)
		requireEqual(t, tree, tree.Treeify())
		requireEqual(t, tree, tx.TransitiveReduction().Treeify())
	}
}
