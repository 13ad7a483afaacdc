package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkarin/sccrank/builder"
)

func TestPath_Shape(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.Neighbors(0).Contains(1))
	assert.True(t, g.Neighbors(2).Contains(3))
	// The tail is a registered sink key.
	nbrs, ok := g[3]
	assert.True(t, ok)
	assert.Equal(t, 0, nbrs.Len())
}

func TestPath_SingleNode(t *testing.T) {
	g, err := builder.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Nodes().Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestPath_TooFew(t *testing.T) {
	g, err := builder.Path(0)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle_Shape(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Nodes().Len())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.Neighbors(4).Contains(0), "ring must close")
}

func TestCycle_TooFew(t *testing.T) {
	g, err := builder.Cycle(2)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestDisjointCycles_Shape(t *testing.T) {
	g, err := builder.DisjointCycles(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 6, g.Nodes().Len())
	assert.Equal(t, 6, g.EdgeCount())
	// Ring-major layout: 0→1→2→0 and 3→4→5→3, no cross edges.
	assert.True(t, g.Neighbors(2).Contains(0))
	assert.True(t, g.Neighbors(5).Contains(3))
	assert.False(t, g.Neighbors(2).Contains(3))
}

func TestDisjointCycles_Validation(t *testing.T) {
	_, err := builder.DisjointCycles(0, 3)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.DisjointCycles(2, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete_Shape(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 12, g.EdgeCount()) // n·(n−1) ordered pairs
	assert.False(t, g.Neighbors(1).Contains(1), "no self-loops")
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.RandomSparse(40, 0.1, 99)
	require.NoError(t, err)
	b, err := builder.RandomSparse(40, 0.1, 99)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same (n,p,seed) must yield the same graph")
}

func TestRandomSparse_ExtremeProbabilities(t *testing.T) {
	empty, err := builder.RandomSparse(10, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
	assert.Equal(t, 10, empty.Nodes().Len(), "all vertices stay registered")

	full, err := builder.RandomSparse(10, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 90, full.EdgeCount())
}

func TestRandomSparse_NoSelfLoops(t *testing.T) {
	g, err := builder.RandomSparse(30, 0.5, 3)
	require.NoError(t, err)
	for node, nbrs := range g {
		assert.False(t, nbrs.Contains(node), "self-loop at %d", node)
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.RandomSparse(0, 0.5, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.RandomSparse(10, -0.1, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomSparse(10, 1.1, 1)
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
}
