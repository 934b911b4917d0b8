package components

import "github.com/katalvlaran/chway/model"

// DefaultTinyComponentMaxSize is the threshold below which a component is
// flagged tiny: strictly fewer nodes than this.
const DefaultTinyComponentMaxSize = 1000

// Options configures Analyze.
type Options struct {
	// TinyComponentMaxSize is the exclusive upper bound on a tiny
	// component's node count. Zero means DefaultTinyComponentMaxSize.
	TinyComponentMaxSize int
}

// Result is the per-node component assignment plus the size of each
// component id.
type Result struct {
	// ComponentOf maps a node id to its component id.
	ComponentOf []uint32
	// Size maps a component id to its node count.
	Size []uint32
}

// IsTiny reports whether node is a member of a component smaller than the
// configured threshold.
func (r Result) IsTiny(node uint32, maxSize int) bool {
	return int(r.Size[r.ComponentOf[node]]) < maxSize
}

// Analyze computes connected components of the node-based import graph,
// treating every edge as undirected: an edge with only Forward or only
// Backward set still links its two endpoints for this pass, since
// component membership is about physical reachability, not direction of
// travel.
func Analyze(numNodes uint32, edges []model.ImportEdge) Result {
	adjacency := buildUndirectedAdjacency(numNodes, edges)

	componentOf := make([]uint32, numNodes)
	for i := range componentOf {
		componentOf[i] = numNodes // sentinel: unvisited
	}

	var sizes []uint32
	for start := uint32(0); start < numNodes; start++ {
		if componentOf[start] != numNodes {
			continue
		}
		compID := uint32(len(sizes))
		size := bfsAssign(start, compID, adjacency, componentOf)
		sizes = append(sizes, size)
	}

	return Result{ComponentOf: componentOf, Size: sizes}
}

// tinyMaxSize returns o.TinyComponentMaxSize, or
// DefaultTinyComponentMaxSize when unset.
func (o Options) tinyMaxSize() int {
	if o.TinyComponentMaxSize <= 0 {
		return DefaultTinyComponentMaxSize
	}
	return o.TinyComponentMaxSize
}

// TinyNodes returns the set of node ids belonging to a component smaller
// than opts' threshold.
func TinyNodes(result Result, opts Options) map[uint32]bool {
	maxSize := opts.tinyMaxSize()
	tiny := make(map[uint32]bool)
	for node := range result.ComponentOf {
		if result.IsTiny(uint32(node), maxSize) {
			tiny[uint32(node)] = true
		}
	}
	return tiny
}

func buildUndirectedAdjacency(numNodes uint32, edges []model.ImportEdge) [][]uint32 {
	adjacency := make([][]uint32, numNodes)
	for _, e := range edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}
	return adjacency
}

// bfsAssign floods componentOf from start with compID and returns the
// number of nodes visited.
func bfsAssign(start, compID uint32, adjacency [][]uint32, componentOf []uint32) uint32 {
	queue := []uint32{start}
	componentOf[start] = compID
	var size uint32

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		size++
		for _, neighbor := range adjacency[node] {
			if componentOf[neighbor] != uint32(len(componentOf)) {
				continue
			}
			componentOf[neighbor] = compID
			queue = append(queue, neighbor)
		}
	}
	return size
}
