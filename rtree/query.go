package rtree

import (
	"container/heap"

	"github.com/katalvlaran/chway/model"
)

// NearestResult is the best snap found by Nearest: the segment, the
// perpendicular distance in meters, the fractional position of the foot
// along the segment (u->v direction), and the projected foot coordinate.
type NearestResult struct {
	Leaf     model.RTreeLeaf
	Distance float64
	T        float64
	Foot     model.Coordinate
	Found    bool
}

// queueItem is either an unexpanded tree node (level >= 0) or an already
// distance-scored leaf candidate (level == -1).
type queueItem struct {
	key   float64
	level int
	idx   int

	// populated only for level == -1 items
	leaf model.RTreeLeaf
	t    float64
	foot model.Coordinate
}

type itemHeap []queueItem

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return h[i].key < h[j].key }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)        { *h = append(*h, x.(queueItem)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Nearest performs a best-first nearest-segment search: a min-heap keyed
// by MBR-to-point distance, expanding nodes whose key is less than the
// current best edge-distance, terminating when the heap's top is no better
// than that best. When skipTiny is set, leaves flagged TinyComponent are
// skipped — the zoom-biased suppression of unreachable islands.
func (t *Tree) Nearest(point model.Coordinate, skipTiny bool) NearestResult {
	if len(t.levels) == 0 {
		return NearestResult{}
	}

	h := &itemHeap{}
	heap.Init(h)
	root := len(t.levels) - 1
	heap.Push(h, queueItem{key: mbrDistance(point, t.levels[root][0].mbr), level: root, idx: 0})

	var best NearestResult
	best.Distance = -1 // sentinel: no candidate yet

	for h.Len() > 0 {
		item := (*h)[0]
		if best.Distance >= 0 && item.key >= best.Distance {
			break
		}
		heap.Pop(h)

		if item.level == -1 {
			if best.Distance < 0 || item.key < best.Distance {
				best = NearestResult{Leaf: item.leaf, Distance: item.key, T: item.t, Foot: item.foot, Found: true}
			}
			continue
		}

		n := t.levels[item.level][item.idx]
		if item.level == 0 {
			for i := n.start; i < n.end; i++ {
				leaf := t.leaves[i]
				if skipTiny && leaf.TinyComponent {
					continue
				}
				dist, frac, foot := pointToSegment(point, leaf.Coord1, leaf.Coord2)
				heap.Push(h, queueItem{key: dist, level: -1, leaf: leaf, t: frac, foot: foot})
			}
			continue
		}

		for i := n.start; i < n.end; i++ {
			child := t.levels[item.level-1][i]
			heap.Push(h, queueItem{key: mbrDistance(point, child.mbr), level: item.level - 1, idx: i})
		}
	}

	return best
}
