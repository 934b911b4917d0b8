package staticgraph_test

import (
	"testing"

	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/staticgraph"
	"github.com/stretchr/testify/require"
)

func buildSquare() *staticgraph.StaticGraph {
	// A(0) -> B(1) -> C(2) -> D(3) -> A(0), unit weight, directed.
	edges := []staticgraph.BuildEdge{
		{Source: 0, Data: model.QueryEdge{Target: 1, Weight: 1, Forward: true}},
		{Source: 1, Data: model.QueryEdge{Target: 2, Weight: 1, Forward: true}},
		{Source: 2, Data: model.QueryEdge{Target: 3, Weight: 1, Forward: true}},
		{Source: 3, Data: model.QueryEdge{Target: 0, Weight: 1, Forward: true}},
	}
	return staticgraph.Build(4, edges)
}

func TestBuildAndTraverse(t *testing.T) {
	g := buildSquare()
	require.EqualValues(t, 4, g.NumNodes())
	require.EqualValues(t, 4, g.NumEdges())
	require.EqualValues(t, 1, g.OutDegree(0))

	e := g.FindEdge(0, 1)
	require.NotEqual(t, g.EndEdges(0), e)
	require.EqualValues(t, 1, g.Target(e))
	require.EqualValues(t, 1, g.Data(e).Weight)
}

func TestFindEdgeMissing(t *testing.T) {
	g := buildSquare()
	e := g.FindEdge(0, 2)
	require.Equal(t, g.EndEdges(0), e)
}

func TestFindEdgeInEitherDirection(t *testing.T) {
	g := buildSquare()
	e, reversed := g.FindEdgeInEitherDirection(1, 0)
	require.True(t, reversed)
	require.EqualValues(t, 1, g.Target(e))
}
