package model

// EdgeBasedNode represents one directed segment (u, v) of the original
// node-based graph, renumbered as a node of the edge-based graph.
// Coordinates are never the sentinel: a fully built
// EdgeBasedNode always carries real endpoint coordinates.
type EdgeBasedNode struct {
	ID     uint32 // edge-based-node id (dense)
	U, V   uint32 // original node-based endpoints
	Coord1 Coordinate
	Coord2 Coordinate
	NameID uint32
	Weight int32

	// TinyComponent flags that (u, v) belongs to a weakly-connected
	// component smaller than components.Options.TinyComponentMaxSize.
	TinyComponent bool
	// IgnoreInGrid mirrors the ImportEdge flag: excluded from the R-tree.
	IgnoreInGrid bool
}

// Valid reports the invariant that a built EdgeBasedNode never carries a
// sentinel coordinate.
func (n EdgeBasedNode) Valid() bool {
	return !n.Coord1.IsSentinel() && !n.Coord2.IsSentinel()
}

// EdgeBasedEdge is a legal turn from one edge-based node to another.
// Weight already includes the destination edge's own weight plus any turn
// penalty (traffic-signal, u-turn at a dead end, etc).
type EdgeBasedEdge struct {
	Source uint32 // edge-based-node id
	Target uint32 // edge-based-node id
	Weight int32

	// ViaNode is the node-based-graph node the turn passes through;
	// carried into the .edges OriginalEdgeData on persistence.
	ViaNode uint32

	Turn TurnInstruction
	// ExitNumber counts roundabout exits for TurnRoundaboutLeave; zero
	// otherwise.
	ExitNumber uint16
	// SignalPenaltyApplied is true when the traffic-light penalty from the
	// speed profile was added to Weight at this turn.
	SignalPenaltyApplied bool
}

// QueryEdge is the packed record a StaticGraph stores for each directed edge
// of the contracted graph, packed to 16 bytes on disk. Exactly one
// of (Shortcut && Middle valid) or (!Shortcut && OriginalEdge valid) holds.
type QueryEdge struct {
	Target   uint32
	Weight   int32
	Forward  bool
	Backward bool
	Shortcut bool

	// Middle is the contracted via-node of a shortcut edge; meaningful only
	// when Shortcut is true.
	Middle uint32
	// OriginalEdge indexes into the persisted original-edge-data table;
	// meaningful only when Shortcut is false.
	OriginalEdge uint32
}
