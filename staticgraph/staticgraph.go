package staticgraph

import "github.com/katalvlaran/chway/model"

// EdgeIndex indexes into a StaticGraph's flat edge array. EndEdges(n)
// returned as a sentinel means "no such edge".
type EdgeIndex = uint32

// NodeIndex is a dense node id.
type NodeIndex = uint32

// BuildEdge is one (source, data) pair handed to Build. The caller is
// responsible for sorting the slice by Source before calling Build (and, for
// deterministic output, by Data.Target within a source).
type BuildEdge struct {
	Source uint32
	Data   model.QueryEdge
}

// StaticGraph is the immutable CSR graph the query path traverses.
type StaticGraph struct {
	firstOut []uint32          // len = numNodes+1
	edges    []model.QueryEdge // len = numEdges
}

// Build constructs a StaticGraph from numNodes nodes and a list of edges
// already sorted by Source. Edges within the same source retain their
// relative order (a stable grouping pass, not a second sort).
func Build(numNodes uint32, sortedEdges []BuildEdge) *StaticGraph {
	g := &StaticGraph{
		firstOut: make([]uint32, numNodes+1),
		edges:    make([]model.QueryEdge, len(sortedEdges)),
	}

	// Count edges per source node.
	for _, e := range sortedEdges {
		g.firstOut[e.Source+1]++
	}
	// Prefix-sum into CSR offsets.
	for i := uint32(1); i <= numNodes; i++ {
		g.firstOut[i] += g.firstOut[i-1]
	}

	// Place edges using a cursor copy of firstOut so the original offsets
	// survive for later traversal.
	cursor := make([]uint32, numNodes)
	copy(cursor, g.firstOut[:numNodes])
	for _, e := range sortedEdges {
		pos := cursor[e.Source]
		g.edges[pos] = e.Data
		cursor[e.Source]++
	}

	return g
}

// FromCSR rebuilds a StaticGraph directly from already-computed CSR arrays:
// firstOut (length numNodes+1) and the flat edge array it indexes into.
// Unlike Build, it performs no grouping or sorting — the caller (package
// persist, reading a `.hsgr` file back) is handing over exactly the
// persisted layout, and re-deriving it through Build's grouping pass would
// only risk reordering edges within a source's run.
func FromCSR(firstOut []uint32, edges []model.QueryEdge) *StaticGraph {
	g := &StaticGraph{
		firstOut: make([]uint32, len(firstOut)),
		edges:    make([]model.QueryEdge, len(edges)),
	}
	copy(g.firstOut, firstOut)
	copy(g.edges, edges)
	return g
}

// FirstOut returns the CSR offset array (length NumNodes()+1), the raw
// layout package persist writes verbatim to `.hsgr`.
func (g *StaticGraph) FirstOut() []uint32 { return g.firstOut }

// NumNodes returns the node count.
func (g *StaticGraph) NumNodes() uint32 { return uint32(len(g.firstOut) - 1) }

// NumEdges returns the edge count.
func (g *StaticGraph) NumEdges() uint32 { return uint32(len(g.edges)) }

// OutDegree returns the number of out-edges of node n.
func (g *StaticGraph) OutDegree(n NodeIndex) uint32 {
	return g.firstOut[n+1] - g.firstOut[n]
}

// BeginEdges returns the first out-edge index of node n.
func (g *StaticGraph) BeginEdges(n NodeIndex) EdgeIndex { return g.firstOut[n] }

// EndEdges returns the one-past-last out-edge index of node n. It also
// serves as the "not found" sentinel for FindEdge.
func (g *StaticGraph) EndEdges(n NodeIndex) EdgeIndex { return g.firstOut[n+1] }

// Target returns the target node of edge e.
func (g *StaticGraph) Target(e EdgeIndex) NodeIndex { return g.edges[e].Target }

// Data returns the packed QueryEdge payload of edge e.
func (g *StaticGraph) Data(e EdgeIndex) model.QueryEdge { return g.edges[e] }

// FindEdge returns the index of edge u→v, or EndEdges(u) if none exists
// — the only failure mode.
func (g *StaticGraph) FindEdge(u, v NodeIndex) EdgeIndex {
	for e := g.BeginEdges(u); e < g.EndEdges(u); e++ {
		if g.Target(e) == v {
			return e
		}
	}
	return g.EndEdges(u)
}

// FindEdgeInEitherDirection returns the edge u→v if present, else v→u, else
// EndEdges(u). The returned reversed flag is true when the match was found
// in the v→u direction.
func (g *StaticGraph) FindEdgeInEitherDirection(u, v NodeIndex) (e EdgeIndex, reversed bool) {
	if e = g.FindEdge(u, v); e != g.EndEdges(u) {
		return e, false
	}
	if e = g.FindEdge(v, u); e != g.EndEdges(v) {
		return e, true
	}
	return g.EndEdges(u), false
}
