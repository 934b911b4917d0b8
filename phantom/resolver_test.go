package phantom_test

import (
	"testing"

	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/phantom"
	"github.com/stretchr/testify/require"
)

func bidirectionalSegment(id uint32, u, v uint32) []model.RTreeLeaf {
	c1 := model.FromFloat(0, 0)
	c2 := model.FromFloat(0, 1)
	mbr := model.MBROf(c1, c2)
	return []model.RTreeLeaf{
		{EdgeBasedNodeID: id, U: u, V: v, Coord1: c1, Coord2: c2, NameID: 7, Weight: 100, Forward: true, MBR: mbr},
		{EdgeBasedNodeID: id + 1, U: v, V: u, Coord1: c2, Coord2: c1, NameID: 7, Weight: 100, Forward: true, MBR: mbr},
	}
}

func TestResolveBidirectionalSegmentFillsBothDirections(t *testing.T) {
	leaves := bidirectionalSegment(10, 0, 1)
	r := phantom.NewResolver(leaves, 16)

	node, ok := r.Resolve(model.FromFloat(0, 0.25), false)
	require.True(t, ok)
	require.EqualValues(t, 10, node.ForwardNodeID)
	require.EqualValues(t, 11, node.ReverseNodeID)
	require.EqualValues(t, 7, node.NameID)
	require.InDelta(t, 25, node.ForwardWeightOffset, 2)
	require.InDelta(t, 75, node.ReverseWeightOffset, 2)
}

func TestResolveOneWaySegmentLeavesReverseUnset(t *testing.T) {
	c1 := model.FromFloat(0, 0)
	c2 := model.FromFloat(0, 1)
	leaves := []model.RTreeLeaf{
		{EdgeBasedNodeID: 5, U: 0, V: 1, Coord1: c1, Coord2: c2, Weight: 50, Forward: true, MBR: model.MBROf(c1, c2)},
	}
	r := phantom.NewResolver(leaves, 16)

	node, ok := r.Resolve(model.FromFloat(0, 0.5), false)
	require.True(t, ok)
	require.EqualValues(t, 5, node.ForwardNodeID)
	require.EqualValues(t, model.NoPhantomNode, node.ReverseNodeID)
}

func TestResolveEmptyTreeReturnsNotOK(t *testing.T) {
	r := phantom.NewResolver(nil, 16)
	_, ok := r.Resolve(model.FromFloat(0, 0), false)
	require.False(t, ok)
}
