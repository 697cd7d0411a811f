package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/closeworld/bfs"
	"github.com/katalvlaran/closeworld/core"
)

// chain builds n0→n1→…→n(k-1).
func chain(t *testing.T, k int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < k-1; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1)))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// TestBFS_IgnoresDirection walks a chain from its tail.
func TestBFS_IgnoresDirection(t *testing.T) {
	g := chain(t, 4)

	res, err := bfs.BFS(g, "n3")
	require.NoError(t, err)
	assert.Equal(t, []string{"n3", "n2", "n1", "n0"}, res.Order)
	assert.Equal(t, 3, res.Depth["n0"])
	assert.Equal(t, "n1", res.Parent["n0"])
	assert.NotContains(t, res.Parent, "n3")
}

// A vertex reachable two ways keeps the depth and parent of the first visit.
func TestBFS_SharedSubclass(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"Animal", "Dog"}, {"Animal", "Pet"}, {"Dog", "Puppy"}, {"Pet", "Puppy"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := bfs.BFS(g, "Animal")
	require.NoError(t, err)
	assert.Equal(t, []string{"Animal", "Dog", "Pet", "Puppy"}, res.Order)
	assert.Equal(t, 2, res.Depth["Puppy"])
	assert.Equal(t, "Dog", res.Parent["Puppy"])
}

func TestComponents(t *testing.T) {
	g := chain(t, 3)
	require.NoError(t, g.AddEdge("x", "y"))
	require.NoError(t, g.AddVertex("z"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"n0", "n1", "n2"}, {"x", "y"}, {"z"}}, comps)

	ok, err := bfs.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestIsTree(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		alone []string
		want  bool
	}{
		{name: "empty", want: true},
		{name: "single", alone: []string{"a"}, want: true},
		{name: "star", edges: [][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}}, want: true},
		{name: "diamond", edges: [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}}, want: false},
		{name: "shortcut", edges: [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}}, want: false},
		{name: "forest", edges: [][2]string{{"a", "b"}, {"c", "d"}}, want: false},
		{name: "two roots one child", edges: [][2]string{{"a", "c"}, {"b", "c"}}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			for _, v := range tc.alone {
				require.NoError(t, g.AddVertex(v))
			}
			for _, e := range tc.edges {
				require.NoError(t, g.AddEdge(e[0], e[1]))
			}
			got, err := bfs.IsTree(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
