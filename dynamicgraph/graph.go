package dynamicgraph

import "math"

// dummyTarget marks a free (non-live) edge slot.
const dummyTarget = math.MaxUint32

// EdgeIndex indexes into a Graph's flat edge array.
type EdgeIndex = uint32

// NodeIndex is a dense node id.
type NodeIndex = uint32

type nodeEntry struct {
	firstEdge EdgeIndex
	edgeCount uint32
}

type edgeEntry[T any] struct {
	target NodeIndex
	data   T
}

// Graph is the mutable adjacency-list graph used during construction and
// contraction, generic over the per-edge payload T (e.g.
// model.ImportEdge-derived weights during node-based construction).
type Graph[T any] struct {
	nodes    []nodeEntry
	edges    []edgeEntry[T]
	numEdges uint32
}

// New creates an empty Graph with numNodes isolated nodes.
func New[T any](numNodes uint32) *Graph[T] {
	return &Graph[T]{
		nodes: make([]nodeEntry, numNodes),
	}
}

// NumNodes returns the node count.
func (g *Graph[T]) NumNodes() uint32 { return uint32(len(g.nodes)) }

// NumEdges returns the live edge count.
func (g *Graph[T]) NumEdges() uint32 { return g.numEdges }

// OutDegree returns node n's current out-degree.
func (g *Graph[T]) OutDegree(n NodeIndex) uint32 { return g.nodes[n].edgeCount }

// BeginEdges returns node n's first live edge index.
func (g *Graph[T]) BeginEdges(n NodeIndex) EdgeIndex { return g.nodes[n].firstEdge }

// EndEdges returns node n's one-past-last live edge index.
func (g *Graph[T]) EndEdges(n NodeIndex) EdgeIndex {
	return g.nodes[n].firstEdge + g.nodes[n].edgeCount
}

// Target returns the target of edge e.
func (g *Graph[T]) Target(e EdgeIndex) NodeIndex { return g.edges[e].target }

// Data returns a pointer to edge e's payload, so callers can mutate it
// in place.
func (g *Graph[T]) Data(e EdgeIndex) *T { return &g.edges[e].data }

func (g *Graph[T]) isDummy(e EdgeIndex) bool { return g.edges[e].target == dummyTarget }

func (g *Graph[T]) makeDummy(e EdgeIndex) {
	var zero T
	g.edges[e] = edgeEntry[T]{target: dummyTarget, data: zero}
}

// InsertEdge adds edge from→to with the given payload and returns its
// index. Invalidates previously returned edge indices for node `from`
// ; indices for other nodes remain stable.
func (g *Graph[T]) InsertEdge(from, to NodeIndex, data T) EdgeIndex {
	node := &g.nodes[from]
	rightSlot := node.firstEdge + node.edgeCount

	rightFree := rightSlot < EdgeIndex(len(g.edges)) && g.isDummy(rightSlot)
	if !rightFree {
		if node.firstEdge != 0 && g.isDummy(node.firstEdge-1) {
			// Claim the dummy immediately to the left: shift the run left
			// by one, relocating its current last live edge into the
			// freed leftmost slot so the (now vacated) former-last slot
			// becomes the append target below.
			oldLast := node.firstEdge + node.edgeCount - 1
			node.firstEdge--
			g.edges[node.firstEdge] = g.edges[oldLast]
		} else {
			g.relocateToTail(node)
		}
	}

	writeAt := node.firstEdge + node.edgeCount
	g.edges[writeAt] = edgeEntry[T]{target: to, data: data}
	node.edgeCount++
	g.numEdges++
	return writeAt
}

// relocateToTail moves node's entire run to the end of the edge array,
// reserving 10% slack (minimum 2 extra slots) so subsequent inserts can
// extend in place for a while.
func (g *Graph[T]) relocateToTail(node *nodeEntry) {
	extra := node.edgeCount/10 + 2
	newSize := node.edgeCount + extra
	newFirst := EdgeIndex(len(g.edges))

	g.edges = append(g.edges, make([]edgeEntry[T], newSize)...)
	for i := uint32(0); i < node.edgeCount; i++ {
		g.edges[newFirst+i] = g.edges[node.firstEdge+i]
		g.makeDummy(node.firstEdge + i)
	}
	for i := node.edgeCount; i < newSize; i++ {
		g.makeDummy(newFirst + i)
	}
	node.firstEdge = newFirst
}

// DeleteEdge removes edge e, which must belong to node source. Swaps e with
// the run's last live edge and marks the vacated slot dummy.
func (g *Graph[T]) DeleteEdge(source NodeIndex, e EdgeIndex) {
	node := &g.nodes[source]
	node.edgeCount--
	g.numEdges--
	last := node.firstEdge + node.edgeCount
	g.edges[e] = g.edges[last]
	g.makeDummy(last)
}

// DeleteEdgesTo removes every edge source→target and returns how many were
// removed.
func (g *Graph[T]) DeleteEdgesTo(source, target NodeIndex) int {
	deleted := 0
	node := &g.nodes[source]
	i := node.firstEdge
	end := node.firstEdge + node.edgeCount
	for i < end-EdgeIndex(deleted) {
		if g.edges[i].target == target {
			deleted++
			last := end - EdgeIndex(deleted)
			g.edges[i] = g.edges[last]
			g.makeDummy(last)
			continue
		}
		i++
	}
	node.edgeCount -= uint32(deleted)
	g.numEdges -= uint32(deleted)
	return deleted
}

// FindEdge returns the index of edge from→to, or EndEdges(from) if absent.
func (g *Graph[T]) FindEdge(from, to NodeIndex) EdgeIndex {
	for e := g.BeginEdges(from); e < g.EndEdges(from); e++ {
		if g.Target(e) == to {
			return e
		}
	}
	return g.EndEdges(from)
}

// ForEachEdge calls fn for every live edge of node n.
func (g *Graph[T]) ForEachEdge(n NodeIndex, fn func(e EdgeIndex, target NodeIndex, data *T)) {
	for e := g.BeginEdges(n); e < g.EndEdges(n); e++ {
		fn(e, g.Target(e), &g.edges[e].data)
	}
}

// Invariant reports whether the adjacency invariant holds: every slot
// inside a node's run is live, every other slot is dummy. Intended for
// tests, not the hot path.
func (g *Graph[T]) Invariant() bool {
	live := make([]bool, len(g.edges))
	for n := range g.nodes {
		node := g.nodes[n]
		for i := uint32(0); i < node.edgeCount; i++ {
			idx := node.firstEdge + i
			if g.isDummy(idx) {
				return false
			}
			live[idx] = true
		}
	}
	for i, l := range live {
		if !l && !g.isDummy(EdgeIndex(i)) {
			return false
		}
	}
	return true
}
