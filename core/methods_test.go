// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/closeworld/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA)) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_IdempotentAndLoops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA), "edges are directed")

	assert.ErrorIs(t, g.AddEdge(VertexA, VertexA), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("", VertexA), core.ErrEmptyVertexID)

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge(VertexA, VertexA))
	assert.True(t, looped.Looped())
	in, out, err := looped.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)
	require.NoError(t, looped.RemoveVertex(VertexA))
	assert.Equal(t, 0, looped.EdgeCount())
}

func TestSuccessorsPredecessors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexD, VertexB))

	succ, err := g.Successors(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexB, VertexC}, succ)

	pred, err := g.Predecessors(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexD}, pred)

	nbrs, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexD}, nbrs)

	_, err = g.Successors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Predecessors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexC))

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, []string{VertexA, VertexC}, g.Vertices())
	assert.Equal(t, []core.Edge{{From: VertexA, To: VertexC}}, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.RemoveEdge(VertexA, VertexB))
	assert.ErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
	assert.True(t, g.HasVertex(VertexA), "endpoints survive edge removal")

	pred, err := g.Predecessors(VertexB)
	require.NoError(t, err)
	assert.Empty(t, pred)
}

func TestEdges_SortedAndFiltered(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexD))
	require.NoError(t, g.AddEdge(VertexA, VertexB))

	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB},
		{From: VertexA, To: VertexD},
		{From: VertexB, To: VertexC},
	}, g.Edges())

	g.FilterEdges(func(e core.Edge) bool { return e.From != VertexA })
	assert.Equal(t, []core.Edge{{From: VertexB, To: VertexC}}, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())
	pred, err := g.Predecessors(VertexD)
	require.NoError(t, err)
	assert.Empty(t, pred)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))

	c := g.Clone()
	require.NoError(t, c.AddEdge(VertexB, VertexC))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasVertex(VertexC))

	empty := g.CloneEmpty()
	assert.Equal(t, g.Vertices(), empty.Vertices())
	assert.Equal(t, 0, empty.EdgeCount())
}
