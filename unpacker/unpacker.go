package unpacker

import (
	"errors"

	"github.com/katalvlaran/chway/chquery"
	"github.com/katalvlaran/chway/staticgraph"
)

// ErrBrokenPath is returned when an edge recorded by the query path cannot
// be found in the overlay graph during unpacking — a data-consistency bug,
// not a normal query outcome.
var ErrBrokenPath = errors.New("unpacker: overlay edge missing during unpack")

const noMiddle = ^uint32(0)

// overlayStep is one directed step of the overlay (possibly-shortcut) path.
type overlayStep struct {
	from, to uint32
}

// Unpack expands a BidirQuery Result into the full sequence of
// original-edge node ids, from the forward seed through the meeting node
// to the backward seed, and the summed original weight, which equals the
// query's reported weight exactly.
func Unpack(forward, backward *staticgraph.StaticGraph, res chquery.Result) ([]uint32, int32, error) {
	overlay := reconstructOverlayPath(res)
	return unpackSteps(forward, backward, overlay)
}

// reconstructOverlayPath walks predFwd from the meeting node back to its
// forward seed (then reverses), and predBwd from the meeting node forward
// to its backward seed, producing the ordered list of overlay-graph steps.
func reconstructOverlayPath(res chquery.Result) []overlayStep {
	const noNode = ^uint32(0)

	var fwdNodes []uint32
	for n := res.MeetingNode; ; {
		fwdNodes = append(fwdNodes, n)
		p := res.PredFwd[n]
		if p == noNode {
			break
		}
		n = p
	}
	for i, j := 0, len(fwdNodes)-1; i < j; i, j = i+1, j-1 {
		fwdNodes[i], fwdNodes[j] = fwdNodes[j], fwdNodes[i]
	}

	var bwdNodes []uint32
	for n := res.MeetingNode; ; {
		p := res.PredBwd[n]
		if p == noNode {
			break
		}
		bwdNodes = append(bwdNodes, p)
		n = p
	}

	nodes := append(fwdNodes, bwdNodes...)
	steps := make([]overlayStep, 0, len(nodes))
	for i := 0; i+1 < len(nodes); i++ {
		steps = append(steps, overlayStep{from: nodes[i], to: nodes[i+1]})
	}
	return steps
}

// unpackSteps expands every overlay step into its original edges using an
// explicit stack of pending steps, so shortcut depth never grows the Go
// call stack.
func unpackSteps(forward, backward *staticgraph.StaticGraph, overlay []overlayStep) ([]uint32, int32, error) {
	var nodes []uint32
	var totalWeight int32

	// Process overlay steps back-to-front via a stack so expansion order
	// comes out front-to-back without a second reverse pass.
	stack := make([]overlayStep, len(overlay))
	copy(stack, overlay)
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}

	appendNode := func(n uint32) {
		if len(nodes) == 0 || nodes[len(nodes)-1] != n {
			nodes = append(nodes, n)
		}
	}

	for len(stack) > 0 {
		step := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edge, found := findDirectedEdge(forward, backward, step.from, step.to)
		if !found {
			return nil, 0, ErrBrokenPath
		}

		if edge.Shortcut && edge.Middle != noMiddle {
			// Push middle->target, then source->middle, so the next
			// pops process source->middle then middle->target in that
			// order.
			stack = append(stack, overlayStep{from: edge.Middle, to: step.to})
			stack = append(stack, overlayStep{from: step.from, to: edge.Middle})
			continue
		}

		appendNode(step.from)
		appendNode(step.to)
		totalWeight += edge.Weight
	}

	return nodes, totalWeight, nil
}

// findDirectedEdge looks up step.from -> step.to in whichever overlay graph
// carries it (a shortcut discovered while unpacking the forward side may
// have a middle-node segment that only exists in the backward overlay, and
// vice versa).
func findDirectedEdge(forward, backward *staticgraph.StaticGraph, from, to uint32) (edge staticEdgeData, found bool) {
	if e := forward.FindEdge(from, to); e != forward.EndEdges(from) {
		d := forward.Data(e)
		return staticEdgeData{Weight: d.Weight, Shortcut: d.Shortcut, Middle: d.Middle}, true
	}
	// The backward overlay stores an original edge from->to as the entry
	// to->from (it is only ever populated for rank[to] < rank[from]).
	if e := backward.FindEdge(to, from); e != backward.EndEdges(to) {
		d := backward.Data(e)
		return staticEdgeData{Weight: d.Weight, Shortcut: d.Shortcut, Middle: d.Middle}, true
	}
	return staticEdgeData{}, false
}

type staticEdgeData struct {
	Weight   int32
	Shortcut bool
	Middle   uint32
}
