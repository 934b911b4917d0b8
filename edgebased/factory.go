package edgebased

import (
	"sort"

	"github.com/katalvlaran/chway/bulkvector"
	"github.com/katalvlaran/chway/dynamicgraph"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/restriction"
)

// Factory builds the edge-based node and edge lists from an Input.
type Factory struct {
	in            Input
	restrictions  *restriction.Map
	barriers      map[uint32]bool
	trafficLights map[uint32]bool
	nodeCoord     []model.Coordinate
	nodeBased     *dynamicgraph.Graph[nodeBasedEdgeData]
	nodeCount     uint32

	edgeBasedNodes []model.EdgeBasedNode
}

// NewFactory indexes restrictions and barrier/traffic-light sets and builds
// the canonicalized node-based DynamicGraph.
func NewFactory(in Input) *Factory {
	f := &Factory{
		in:            in,
		restrictions:  restriction.New(in.Restrictions),
		barriers:      toSet(in.BarrierNodes),
		trafficLights: toSet(in.TrafficLightNodes),
		nodeCount:     in.NumNodes,
	}

	f.nodeCoord = make([]model.Coordinate, in.NumNodes)
	for _, ni := range in.NodeInfo {
		if ni.ID < in.NumNodes {
			f.nodeCoord[ni.ID] = ni.Coordinate
		}
	}

	f.nodeBased = dynamicgraph.New[nodeBasedEdgeData](in.NumNodes)
	f.buildNodeBasedGraph()
	return f
}

func toSet(ids []uint32) map[uint32]bool {
	m := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// buildNodeBasedGraph canonicalizes orientation, drops self-loops, clamps
// weight, and assigns sequential edge-based-node ids, emitting a second
// record (with a fresh id) for bidirectional edges.
func (f *Factory) buildNodeBasedGraph() {
	var nextID uint32
	type orientedEdge struct {
		source, target uint32
		data           nodeBasedEdgeData
	}
	var oriented []orientedEdge

	for _, e := range f.in.Edges {
		source, target := e.Source, e.Target
		if !e.IsForward() && e.IsBackward() {
			source, target = target, source
		}
		if source == target {
			continue
		}
		weight := e.Weight
		if weight < 1 {
			weight = 1
		}
		data := nodeBasedEdgeData{
			edgeBasedNodeID:  nextID,
			nameID:           e.NameID,
			weight:           weight,
			roundabout:       e.Flags.Roundabout,
			ignoreInGrid:     e.Flags.IgnoreInGrid,
			accessRestricted: e.Flags.AccessRestricted,
		}
		nextID++
		oriented = append(oriented, orientedEdge{source: source, target: target, data: data})

		if e.IsForward() && e.IsBackward() {
			data2 := data
			data2.edgeBasedNodeID = nextID
			nextID++
			oriented = append(oriented, orientedEdge{source: target, target: source, data: data2})
		}
	}

	sort.Slice(oriented, func(i, j int) bool {
		if oriented[i].source != oriented[j].source {
			return oriented[i].source < oriented[j].source
		}
		return oriented[i].target < oriented[j].target
	})

	for _, oe := range oriented {
		f.nodeBased.InsertEdge(oe.source, oe.target, oe.data)
	}
}

// BuildNodes emits one EdgeBasedNode per node-based edge.
func (f *Factory) BuildNodes(tinyComponent func(u, v uint32) bool) []model.EdgeBasedNode {
	f.edgeBasedNodes = f.edgeBasedNodes[:0]
	for u := uint32(0); u < f.nodeCount; u++ {
		f.nodeBased.ForEachEdge(u, func(_ dynamicgraph.EdgeIndex, v uint32, data *nodeBasedEdgeData) {
			isTiny := tinyComponent != nil && tinyComponent(u, v)
			f.edgeBasedNodes = append(f.edgeBasedNodes, model.EdgeBasedNode{
				ID:            data.edgeBasedNodeID,
				U:             u,
				V:             v,
				Coord1:        f.nodeCoord[u],
				Coord2:        f.nodeCoord[v],
				NameID:        data.nameID,
				Weight:        data.weight,
				TinyComponent: isTiny,
				IgnoreInGrid:  data.ignoreInGrid,
			})
		})
	}
	return f.edgeBasedNodes
}

// BuildEdges emits one EdgeBasedEdge per legal turn. The
// result is a segmented vector rather than a flat slice: on continent-scale
// inputs the turn list dwarfs everything else held in memory, and the
// contractor consumes it block-by-block (ContractConsuming), freeing each
// block as it goes.
func (f *Factory) BuildEdges() *bulkvector.Vector[model.EdgeBasedEdge] {
	edges := bulkvector.New[model.EdgeBasedEdge](bulkvector.DefaultBlockElems)

	for u := uint32(0); u < f.nodeCount; u++ {
		f.nodeBased.ForEachEdge(u, func(_ dynamicgraph.EdgeIndex, v uint32, uvData *nodeBasedEdgeData) {
			if f.barriers[v] {
				return
			}
			onlyTarget := f.restrictions.EmanatingIsOnly(u, v)

			f.nodeBased.ForEachEdge(v, func(_ dynamicgraph.EdgeIndex, w uint32, vwData *nodeBasedEdgeData) {
				if !f.turnIsLegal(u, v, w, onlyTarget) {
					return
				}

				turn, exitNumber := f.classifyTurn(u, v, w, uvData, vwData)
				weight := vwData.weight
				signalApplied := false
				if f.trafficLights[v] {
					weight += f.in.Speed.TrafficSignalPenalty
					signalApplied = true
				}
				if turn == model.TurnUTurn {
					weight += f.in.Speed.UTurnPenalty
				}

				edges.PushBack(model.EdgeBasedEdge{
					Source:               uvData.edgeBasedNodeID,
					Target:               vwData.edgeBasedNodeID,
					Weight:               weight,
					ViaNode:              v,
					Turn:                 turn,
					ExitNumber:           exitNumber,
					SignalPenaltyApplied: signalApplied,
				})
			})
		})
	}
	return edges
}

// turnIsLegal applies the U-turn rule and, when UseTurnRestrictions is
// set, the is-only and restriction-map rules. The barrier rule is checked
// by BuildEdges before this is called.
func (f *Factory) turnIsLegal(u, v, w uint32, onlyTarget uint32) bool {
	if w == u && f.nodeBased.OutDegree(v) != 1 {
		return false
	}
	if !f.in.Speed.UseTurnRestrictions {
		return true
	}
	if onlyTarget != restriction.NoNode {
		return w == onlyTarget
	}
	if f.restrictions.IsRestricted(u, v, w) {
		return false
	}
	return true
}

// classifyTurn computes the turn instruction and, for a roundabout-leave
// turn, an exit number. Exit numbering is a local approximation (counted
// among v's other roundabout-leaving turns in target-id order) since
// tracing the full ring is out of scope for a single-turn classification.
func (f *Factory) classifyTurn(u, v, w uint32, uvData, vwData *nodeBasedEdgeData) (model.TurnInstruction, uint16) {
	if w == u {
		return model.TurnUTurn, 0
	}

	enteringRing := vwData.roundabout && !uvData.roundabout
	stayingInRing := vwData.roundabout && uvData.roundabout
	leavingRing := !vwData.roundabout && uvData.roundabout

	switch {
	case enteringRing:
		return model.TurnRoundaboutEnter, 0
	case stayingInRing:
		return model.TurnRoundaboutStay, 0
	case leavingRing:
		return model.TurnRoundaboutLeave, f.exitNumber(v, w)
	}

	angle := turnAngle(f.nodeCoord[u], f.nodeCoord[v], f.nodeCoord[w])
	if angle >= -23 && angle <= 23 {
		if uvData.nameID == vwData.nameID {
			return model.TurnContinue, 0
		}
		return model.TurnStraight, 0
	}
	return classifyByAngle(angle), 0
}

func (f *Factory) exitNumber(v, w uint32) uint16 {
	var targets []uint32
	f.nodeBased.ForEachEdge(v, func(_ dynamicgraph.EdgeIndex, t uint32, data *nodeBasedEdgeData) {
		if !data.roundabout {
			targets = append(targets, t)
		}
	})
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	for i, t := range targets {
		if t == w {
			return uint16(i + 1)
		}
	}
	return 1
}
