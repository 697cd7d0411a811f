package taxonomy_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/taxonomy"
)

// vertexMap resolves display names used by the fixtures to expressions.
type vertexMap map[string]expr.Expression

// atoms returns a vertexMap holding an atom per name.
func atoms(names ...string) vertexMap {
	m := make(vertexMap, len(names))
	for _, n := range names {
		m[n] = expr.NewAtom(n)
	}

	return m
}

// set resolves names.
func (m vertexMap) set(names ...string) []expr.Expression {
	out := make([]expr.Expression, len(names))
	for i, n := range names {
		e, ok := m[n]
		if !ok {
			panic("unknown vertex " + n)
		}
		out[i] = e
	}
	expr.Sort(out)

	return out
}

// build creates a taxonomy from flattened (super, sub) name pairs.
func (m vertexMap) build(t *testing.T, pairs ...string) *taxonomy.Taxonomy {
	t.Helper()
	require.Zero(t, len(pairs)%2, "pairs must come in twos")
	edges := make([]taxonomy.Edge, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		sup, sub := m.set(pairs[i])[0], m.set(pairs[i+1])[0]
		edges = append(edges, taxonomy.Edge{Super: sup, Sub: sub})
	}
	tx, err := taxonomy.New(nil, edges)
	require.NoError(t, err)

	return tx
}

// requireEqual fails with both renderings when the taxonomies differ.
func requireEqual(t *testing.T, want, got *taxonomy.Taxonomy) {
	t.Helper()
	require.True(t, want.Equal(got), "want: %s\ngot:  %s", want, got)
}

// buildRandomDAG constructs a connected taxonomy of n classes. Every class
// after the first gets one earlier class as parent, plus a second with
// probability shared.
func buildRandomDAG(tb testing.TB, n int, shared float64, seed int64) *taxonomy.Taxonomy {
	tb.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	name := func(i int) string { return "C" + strconv.Itoa(i) }
	edges := make([][2]string, 0, n+n/4)
	for i := 1; i < n; i++ {
		p := r.Intn(i)
		edges = append(edges, [2]string{name(p), name(i)})
		if q := r.Intn(i); q != p && r.Float64() < shared {
			edges = append(edges, [2]string{name(q), name(i)})
		}
	}
	tx, err := taxonomy.FromEdges(edges)
	require.NoError(tb, err)

	return tx
}
