package edgebased

import "github.com/katalvlaran/chway/model"

// SpeedProfile carries the penalties and feature flags that influence turn
// weight and legality.
type SpeedProfile struct {
	TrafficSignalPenalty int32
	UTurnPenalty         int32
	UseTurnRestrictions  bool
}

// Input bundles everything the factory needs to build the edge-based
// graph.
type Input struct {
	NumNodes          uint32
	Edges             []model.ImportEdge
	BarrierNodes      []uint32
	TrafficLightNodes []uint32
	Restrictions      []model.TurnRestriction
	NodeInfo          []model.NodeInfo
	Speed             SpeedProfile
}

// nodeBasedEdgeData is the per-edge payload of the intermediate node-based
// DynamicGraph built by NewFactory (buildNodeBasedGraph).
type nodeBasedEdgeData struct {
	edgeBasedNodeID  uint32
	nameID           uint32
	weight           int32
	roundabout       bool
	ignoreInGrid     bool
	accessRestricted bool
}
