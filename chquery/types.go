package chquery

import (
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/chway/staticgraph"
)

// ErrNoRoute is returned when the bidirectional search terminates without a
// meeting node.
var ErrNoRoute = errors.New("chquery: no route found")

const noNode = ^uint32(0)
const infWeight = int32(math.MaxInt32)

// Seed is a starting point for one search direction: a node reachable at
// the given weight from the query's true endpoint (typically the two
// endpoints of the edge a phantom node snapped onto).
type Seed struct {
	Node   uint32
	Weight int32
}

// Result is the outcome of a successful bidirectional search.
type Result struct {
	Weight      int32
	MeetingNode uint32
	PredFwd     []uint32
	PredBwd     []uint32
}

// BidirQuery runs bidirectional CH Dijkstra over a fixed set of overlay
// graphs. A single BidirQuery is safe for concurrent use by multiple
// goroutines: each call to Run borrows a reusable scratch bundle from an
// internal pool sized to the node count.
type BidirQuery struct {
	forward  *staticgraph.StaticGraph
	backward *staticgraph.StaticGraph
	downInto *staticgraph.StaticGraph
	downFrom *staticgraph.StaticGraph
	numNodes uint32
	scratch  sync.Pool
}

// New builds a BidirQuery over the given forward/backward upward overlays
// and their downward stall indexes (contractor.BuildGraphs's four return
// values).
func New(forward, backward, downInto, downFrom *staticgraph.StaticGraph) *BidirQuery {
	q := &BidirQuery{
		forward:  forward,
		backward: backward,
		downInto: downInto,
		downFrom: downFrom,
		numNodes: forward.NumNodes(),
	}
	q.scratch.New = func() any { return newScratch(q.numNodes) }
	return q
}
