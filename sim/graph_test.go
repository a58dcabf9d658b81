package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphFromPaths_ChainsEdges(t *testing.T) {
	g := GraphFromPaths([][]Pin{{0, 1, 2}, {0, 3}})

	assert.Equal(t, []Edge{{0, 1}, {0, 3}, {1, 2}}, g.Edges())
	assert.Equal(t, 3, g.Len())
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "edges are directed")
	assert.Equal(t, []Pin{1, 3}, g.Successors(0))
	assert.Empty(t, g.Successors(2))
}

func TestConnectivityGraph_Union_Idempotent(t *testing.T) {
	a := GraphFromPaths([][]Pin{{0, 1}})
	b := GraphFromPaths([][]Pin{{0, 1}, {5, 6}})

	a.Union(b)
	a.Union(b)

	assert.Equal(t, []Edge{{0, 1}, {5, 6}}, a.Edges())
}

func TestConnectivityGraph_SinglePinPath_NoEdges(t *testing.T) {
	g := GraphFromPaths([][]Pin{{4}})
	assert.Zero(t, g.Len())
	assert.Equal(t, "ConnectivityGraph{}", g.String())
}

func TestConnectivityGraph_String(t *testing.T) {
	g := GraphFromPaths([][]Pin{{2, 1, 0}})
	assert.Equal(t, "ConnectivityGraph{1->0 2->1}", g.String())
}
