package contractor

import "errors"

var (
	// ErrNoNodes is returned by Contract when the input graph has zero nodes.
	ErrNoNodes = errors.New("contractor: graph has no nodes")
)

const noMiddle = ^uint32(0)

// noOriginal marks an adjEntry/staticEdge with no original-edge-table
// index, i.e. a shortcut (whose Middle is meaningful instead).
const noOriginal = ^uint32(0)

// Options tunes the contraction process. The zero value is not usable;
// construct via NewOptions for sensible defaults.
type Options struct {
	// WitnessHopLimit bounds the witness Dijkstra's hop count.
	WitnessHopLimit int
	// Workers is the number of goroutines used to contract each
	// independent-set round in parallel. 0 means GOMAXPROCS.
	Workers int
}

// NewOptions returns the default Options: a 5-hop witness search bound
// and GOMAXPROCS-sized worker rounds.
func NewOptions() Options {
	return Options{WitnessHopLimit: 5, Workers: 0}
}

// adjEntry is one edge of the mutable contraction-time adjacency list.
type adjEntry struct {
	to       uint32
	weight   int32
	middle   uint32 // noMiddle for original edges, else the contracted via-node
	original uint32 // index into the edge-based-edge list; noOriginal for shortcuts
	forward  bool
	backward bool
}

// Shortcut is a shortcut edge produced by contracting a node.
type Shortcut struct {
	From, To uint32
	Weight   int32
	Middle   uint32
}

// Result is the contraction output: per-node rank plus the forward/backward
// upward overlay edge lists, ready for staticgraph.Build. DownIntoCSR and
// DownFromCSR index the same final edge set by "downward" direction
// (source rank > target rank) and feed chquery's stall-on-demand check:
// DownIntoCSR[n] lists neighbors p with an edge p->n where rank(p) >
// rank(n) (consulted by the forward search), DownFromCSR[n] lists
// neighbors q with an edge n->q where rank(n) > rank(q) (consulted by the
// backward search).
type Result struct {
	Rank        []uint32
	ForwardCSR  []staticEdge
	BackwardCSR []staticEdge
	DownIntoCSR []staticEdge
	DownFromCSR []staticEdge
}

type staticEdge struct {
	Source   uint32
	Target   uint32
	Weight   int32
	Middle   uint32
	Original uint32
	Forward  bool
	Backward bool
}
