package model

// NoPhantomNode marks a missing forward or reverse direction on a
// PhantomNode: the segment is one-way and the queried direction doesn't
// exist.
const NoPhantomNode = ^uint32(0)

// PhantomNode is the result of snapping a query coordinate onto the graph
// : the edge-based-node ids of the segment in both directions (either
// may be NoPhantomNode if that direction isn't legal), the name id, the
// weight offset from each endpoint to the snapped point, and the projected
// coordinate itself.
type PhantomNode struct {
	ForwardNodeID uint32
	ReverseNodeID uint32
	NameID        uint32

	// ForwardWeightOffset is the partial weight of the forward segment from
	// its source node to the snapped point. ReverseWeightOffset is the
	// symmetric quantity from the reverse segment's source.
	ForwardWeightOffset int32
	ReverseWeightOffset int32

	Location Coordinate
}
