package model

// NodeInfo is a dense-indexed node: its external id (as seen in the raw
// extract) plus its coordinate.
type NodeInfo struct {
	// ID is the dense 32-bit node id used as an index everywhere else in
	// the pipeline.
	ID uint32
	// ExternalID is the id the node carried in the original import source
	// (e.g. an OSM node id), kept only for diagnostics.
	ExternalID uint64
	Coordinate Coordinate
}

// EdgeFlags packs the per-edge boolean attributes of a raw import edge.
// Kept as a struct of bools rather than a bitmask; the wire form packs
// them only at serialization time.
type EdgeFlags struct {
	Forward          bool
	Backward         bool
	Roundabout       bool
	IgnoreInGrid     bool
	AccessRestricted bool
	ContraFlow       bool
}

// ImportEdge is a directed-or-bidirectional raw edge as read from the
// ingester. Source/Target are dense NodeInfo ids.
type ImportEdge struct {
	Source    uint32
	Target    uint32
	Weight    int32
	NameID    uint32
	RoadClass uint8
	Flags     EdgeFlags
}

// IsForward reports whether the edge may be traversed source→target.
func (e ImportEdge) IsForward() bool { return e.Flags.Forward }

// IsBackward reports whether the edge may be traversed target→source.
func (e ImportEdge) IsBackward() bool { return e.Flags.Backward }

// TurnRestriction is a (from, via, to) tuple read from the ingester. IsOnly
// means "this is the only legal move through via"; otherwise it forbids
// exactly this move.
type TurnRestriction struct {
	FromNode uint32
	ViaNode  uint32
	ToNode   uint32
	IsOnly   bool
}
