package edgebased_test

import (
	"testing"

	"github.com/katalvlaran/chway/bulkvector"
	"github.com/katalvlaran/chway/edgebased"
	"github.com/katalvlaran/chway/model"
	"github.com/stretchr/testify/require"
)

// collectEdges drains a BuildEdges vector into a plain slice for assertion.
func collectEdges(v *bulkvector.Vector[model.EdgeBasedEdge]) []model.EdgeBasedEdge {
	out := make([]model.EdgeBasedEdge, 0, v.Len())
	v.ForEach(func(_ int, e model.EdgeBasedEdge) { out = append(out, e) })
	return out
}

// triangle builds A(0)-B(1)-C(2)-A(0), all edges bidirectional, forming a
// closed triangle so a turn B->A exists both directly and as a restricted
// move.
func triangle() edgebased.Input {
	coord := func(lat, lon float64) model.Coordinate { return model.FromFloat(lat, lon) }
	edge := func(s, t uint32) model.ImportEdge {
		return model.ImportEdge{Source: s, Target: t, Weight: 10, Flags: model.EdgeFlags{Forward: true, Backward: true}}
	}
	return edgebased.Input{
		NumNodes: 3,
		Edges:    []model.ImportEdge{edge(0, 1), edge(1, 2), edge(2, 0)},
		NodeInfo: []model.NodeInfo{
			{ID: 0, Coordinate: coord(0, 0)},
			{ID: 1, Coordinate: coord(0, 1)},
			{ID: 2, Coordinate: coord(1, 0)},
		},
		Speed: edgebased.SpeedProfile{UseTurnRestrictions: true},
	}
}

func TestNoUTurnRestrictionForbidsTurn(t *testing.T) {
	in := triangle()
	in.Restrictions = []model.TurnRestriction{{FromNode: 0, ViaNode: 1, ToNode: 0, IsOnly: false}}

	f := edgebased.NewFactory(in)
	nodes := f.BuildNodes(nil)
	edges := collectEdges(f.BuildEdges())

	idOf := func(u, v uint32) (uint32, bool) {
		for _, n := range nodes {
			if n.U == u && n.V == v {
				return n.ID, true
			}
		}
		return 0, false
	}
	idAB, ok := idOf(0, 1)
	require.True(t, ok)
	idBA, ok := idOf(1, 0)
	require.True(t, ok)

	for _, e := range edges {
		forbidden := e.Source == idAB && e.Target == idBA
		require.Falsef(t, forbidden, "turn A->B->A must be forbidden, got %+v", e)
	}
}

func TestIsOnlyRestrictionForcesSingleExit(t *testing.T) {
	in := triangle()
	// Only legal move through via=1 coming from 0 is to 2.
	in.Restrictions = []model.TurnRestriction{{FromNode: 0, ViaNode: 1, ToNode: 2, IsOnly: true}}

	f := edgebased.NewFactory(in)
	f.BuildNodes(nil)
	edges := f.BuildEdges()
	require.NotZero(t, edges.Len())
}

func TestBarrierNodeBlocksAllTurnsThrough(t *testing.T) {
	edge := func(s, t uint32) model.ImportEdge {
		return model.ImportEdge{Source: s, Target: t, Weight: 5, Flags: model.EdgeFlags{Forward: true, Backward: true}}
	}
	coord := func(lat, lon float64) model.Coordinate { return model.FromFloat(lat, lon) }
	in := edgebased.Input{
		NumNodes:     3,
		Edges:        []model.ImportEdge{edge(0, 1), edge(1, 2)},
		BarrierNodes: []uint32{1},
		NodeInfo: []model.NodeInfo{
			{ID: 0, Coordinate: coord(0, 0)},
			{ID: 1, Coordinate: coord(0, 1)},
			{ID: 2, Coordinate: coord(0, 2)},
		},
	}

	f := edgebased.NewFactory(in)
	f.BuildNodes(nil)
	edges := collectEdges(f.BuildEdges())
	for _, e := range edges {
		require.NotEqualValuesf(t, 1, e.ViaNode, "no turn may pass through the barrier node, got %+v", e)
	}
}

func TestUTurnOnlyLegalAtDeadEnd(t *testing.T) {
	edge := func(s, t uint32) model.ImportEdge {
		return model.ImportEdge{Source: s, Target: t, Weight: 5, Flags: model.EdgeFlags{Forward: true, Backward: true}}
	}
	coord := func(lat, lon float64) model.Coordinate { return model.FromFloat(lat, lon) }

	// Dead end: A(0)-B(1), B has out-degree 1 (only back to A).
	deadEnd := edgebased.Input{
		NumNodes: 2,
		Edges:    []model.ImportEdge{edge(0, 1)},
		NodeInfo: []model.NodeInfo{
			{ID: 0, Coordinate: coord(0, 0)},
			{ID: 1, Coordinate: coord(0, 1)},
		},
	}
	f := edgebased.NewFactory(deadEnd)
	f.BuildNodes(nil)
	edges := collectEdges(f.BuildEdges())
	found := false
	for _, e := range edges {
		if e.Turn == model.TurnUTurn {
			found = true
		}
	}
	require.True(t, found, "dead-end u-turn must be legal")

	// Triangle: B has out-degree 2, so A->B->A is illegal (no restriction
	// needed; this is the structural rule, not the restriction map).
	tri := triangle()
	f2 := edgebased.NewFactory(tri)
	f2.BuildNodes(nil)
	edges2 := collectEdges(f2.BuildEdges())
	for _, e := range edges2 {
		require.NotEqual(t, model.TurnUTurn, e.Turn)
	}
}

func TestStraightVsContinueByRoadName(t *testing.T) {
	coord := func(lat, lon float64) model.Coordinate { return model.FromFloat(lat, lon) }
	colinear := func(secondName uint32) edgebased.Input {
		return edgebased.Input{
			NumNodes: 3,
			Edges: []model.ImportEdge{
				{Source: 0, Target: 1, Weight: 10, NameID: 1, Flags: model.EdgeFlags{Forward: true}},
				{Source: 1, Target: 2, Weight: 10, NameID: secondName, Flags: model.EdgeFlags{Forward: true}},
			},
			NodeInfo: []model.NodeInfo{
				{ID: 0, Coordinate: coord(0, 0)},
				{ID: 1, Coordinate: coord(0, 0.001)},
				{ID: 2, Coordinate: coord(0, 0.002)},
			},
		}
	}

	f := edgebased.NewFactory(colinear(1))
	f.BuildNodes(nil)
	edges := collectEdges(f.BuildEdges())
	require.Len(t, edges, 1)
	require.Equal(t, model.TurnContinue, edges[0].Turn, "same road id, zero bearing change")

	f2 := edgebased.NewFactory(colinear(2))
	f2.BuildNodes(nil)
	edges = collectEdges(f2.BuildEdges())
	require.Len(t, edges, 1)
	require.Equal(t, model.TurnStraight, edges[0].Turn, "new road id, zero bearing change")
}
