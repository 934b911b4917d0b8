package dynamicgraph_test

import (
	"testing"

	"github.com/katalvlaran/chway/dynamicgraph"
	"github.com/stretchr/testify/require"
)

type weight struct{ w int32 }

func TestInsertEdgeRightDummyFastPath(t *testing.T) {
	g := dynamicgraph.New[weight](3)
	e0 := g.InsertEdge(0, 1, weight{1})
	e1 := g.InsertEdge(0, 2, weight{2})
	require.NotEqual(t, e0, e1)
	require.EqualValues(t, 2, g.OutDegree(0))
	require.True(t, g.Invariant())
}

func TestDeleteEdgeThenReinsertReusesDummy(t *testing.T) {
	g := dynamicgraph.New[weight](2)
	e0 := g.InsertEdge(0, 1, weight{1})
	_ = e0
	g.InsertEdge(0, 1, weight{2})
	require.True(t, g.Invariant())

	e := g.FindEdge(0, 1)
	require.NotEqual(t, g.EndEdges(0), e)
	g.DeleteEdge(0, e)
	require.True(t, g.Invariant())
	require.EqualValues(t, 1, g.OutDegree(0))

	g.InsertEdge(0, 2, weight{3})
	require.True(t, g.Invariant())
	require.EqualValues(t, 2, g.OutDegree(0))
}

func TestInsertEdgeLeftDummyFallback(t *testing.T) {
	// Node 0's run occupies slots [0,2) (one live edge plus slack); node 1
	// is relocated to [2,4) and its second edge fills that run to the end
	// of the edge array, so no dummy slot lies to its right. Slot 1 to its
	// left is dummy, so the next insert on node 1 should claim it instead
	// of relocating.
	g := dynamicgraph.New[weight](2)
	g.InsertEdge(0, 1, weight{1})
	g.InsertEdge(1, 0, weight{2})
	g.InsertEdge(1, 3, weight{4})
	require.True(t, g.Invariant())

	e := g.FindEdge(0, 1)
	g.DeleteEdge(0, e)
	require.True(t, g.Invariant())

	before := g.NumEdges()
	g.InsertEdge(1, 2, weight{3})
	require.True(t, g.Invariant())
	require.EqualValues(t, before+1, g.NumEdges())
	require.EqualValues(t, 3, g.OutDegree(1))
	require.EqualValues(t, 1, g.BeginEdges(1))
}

func TestInsertEdgeRelocatesWhenNoNeighborFree(t *testing.T) {
	g := dynamicgraph.New[weight](1)
	for i := 0; i < 20; i++ {
		g.InsertEdge(0, uint32(i+1), weight{int32(i)})
		require.True(t, g.Invariant())
	}
	require.EqualValues(t, 20, g.OutDegree(0))
}

func TestDeleteEdgesTo(t *testing.T) {
	g := dynamicgraph.New[weight](1)
	g.InsertEdge(0, 1, weight{1})
	g.InsertEdge(0, 2, weight{2})
	g.InsertEdge(0, 1, weight{3})
	g.InsertEdge(0, 3, weight{4})

	n := g.DeleteEdgesTo(0, 1)
	require.Equal(t, 2, n)
	require.True(t, g.Invariant())
	require.EqualValues(t, 2, g.OutDegree(0))
	require.Equal(t, g.EndEdges(0), g.FindEdge(0, 1))
}

func TestForEachEdgeMutatesInPlace(t *testing.T) {
	g := dynamicgraph.New[weight](1)
	g.InsertEdge(0, 1, weight{1})
	g.InsertEdge(0, 2, weight{2})

	g.ForEachEdge(0, func(_ dynamicgraph.EdgeIndex, _ dynamicgraph.NodeIndex, data *weight) {
		data.w *= 10
	})

	e := g.FindEdge(0, 1)
	require.EqualValues(t, 10, g.Data(e).w)
}
