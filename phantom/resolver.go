package phantom

import (
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/rtree"
)

type segmentKey struct{ u, v uint32 }

// Resolver snaps query coordinates onto the indexed graph. It wraps a
// packed rtree.Tree and a (u,v)->leaf index built once at load time so the
// reverse direction of whichever leaf the search finds can be looked up in
// O(1) to fill in a PhantomNode's other direction.
type Resolver struct {
	tree  *rtree.Tree
	byEnd map[segmentKey]model.RTreeLeaf
}

// NewResolver indexes leaves by (u,v) and bulk-loads the spatial tree.
func NewResolver(leaves []model.RTreeLeaf, branchingFactor int) *Resolver {
	byEnd := make(map[segmentKey]model.RTreeLeaf, len(leaves))
	for _, l := range leaves {
		byEnd[segmentKey{l.U, l.V}] = l
	}
	return &Resolver{
		tree:  rtree.BulkLoad(leaves, branchingFactor),
		byEnd: byEnd,
	}
}

// Resolve snaps point onto the nearest segment and synthesizes its
// PhantomNode. skipTiny suppresses tiny-component segments, the zoom-biased
// island filter. ok is false when no segment qualifies: the tree is empty,
// or skipTiny is set and every segment is tiny.
func (r *Resolver) Resolve(point model.Coordinate, skipTiny bool) (node model.PhantomNode, ok bool) {
	nearest := r.tree.Nearest(point, skipTiny)
	if !nearest.Found {
		return model.PhantomNode{}, false
	}

	leaf := nearest.Leaf
	node.NameID = leaf.NameID
	node.Location = nearest.Foot

	if leaf.Forward {
		node.ForwardNodeID = leaf.EdgeBasedNodeID
		node.ForwardWeightOffset = weightOffset(leaf.Weight, nearest.T)
	} else {
		node.ForwardNodeID = model.NoPhantomNode
	}

	if reverse, found := r.byEnd[segmentKey{leaf.V, leaf.U}]; found && reverse.Forward {
		node.ReverseNodeID = reverse.EdgeBasedNodeID
		node.ReverseWeightOffset = weightOffset(reverse.Weight, 1-nearest.T)
	} else {
		node.ReverseNodeID = model.NoPhantomNode
	}

	return node, true
}

// weightOffset computes
// `segment_weight * (distance_to_foot / segment_length)` in float64,
// rounded half up to an int32, with t already the fractional position
// along the segment (clamped to [0,1]).
func weightOffset(segmentWeight int32, t float64) int32 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return int32(float64(segmentWeight)*t + 0.5)
}
