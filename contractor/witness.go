package contractor

import "container/heap"

// witnessState is reusable scratch for bounded witness Dijkstra, one per
// contraction worker (so parallel rounds don't share mutable state).
type witnessState struct {
	dist []int32
	hops []int
	seen []uint32 // touched node ids, for O(touched) reset
	pq   witnessPQ
}

const infWeight = int32(1) << 30

func newWitnessState(n uint32) *witnessState {
	ws := &witnessState{
		dist: make([]int32, n),
		hops: make([]int, n),
	}
	for i := range ws.dist {
		ws.dist[i] = infWeight
	}
	return ws
}

func (ws *witnessState) reset() {
	for _, n := range ws.seen {
		ws.dist[n] = infWeight
		ws.hops[n] = 0
	}
	ws.seen = ws.seen[:0]
	ws.pq = ws.pq[:0]
}

func (ws *witnessState) touch(n uint32, d int32, h int) {
	if ws.dist[n] == infWeight {
		ws.seen = append(ws.seen, n)
	}
	ws.dist[n] = d
	ws.hops[n] = h
}

type witnessPQItem struct {
	node uint32
	dist int32
}
type witnessPQ []witnessPQItem

func (pq witnessPQ) Len() int           { return len(pq) }
func (pq witnessPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq witnessPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *witnessPQ) Push(x any)        { *pq = append(*pq, x.(witnessPQItem)) }
func (pq *witnessPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// runWitnessSearch runs a bounded forward Dijkstra from src over the
// non-contracted subgraph, excluding the node being contracted (via), with
// a hop budget and a weight ceiling. Populates ws.dist for every node it
// touches; callers compare ws.dist[target] against the candidate shortcut
// weight.
func runWitnessSearch(
	ws *witnessState,
	outAdj [][]adjEntry,
	src, via uint32,
	ceiling int32,
	hopLimit int,
	contracted []bool,
) {
	ws.reset()
	ws.touch(src, 0, 0)
	ws.pq = append(ws.pq[:0], witnessPQItem{node: src, dist: 0})
	heap.Init(&ws.pq)

	for ws.pq.Len() > 0 {
		item := heap.Pop(&ws.pq).(witnessPQItem)
		u, d := item.node, item.dist
		if d > ws.dist[u] {
			continue
		}
		if d > ceiling {
			continue
		}
		h := ws.hops[u]
		if h >= hopLimit {
			continue
		}
		for _, e := range outAdj[u] {
			if e.to == via || contracted[e.to] {
				continue
			}
			nd := d + e.weight
			if nd > ceiling {
				continue
			}
			if nd < ws.dist[e.to] {
				ws.touch(e.to, nd, h+1)
				heap.Push(&ws.pq, witnessPQItem{node: e.to, dist: nd})
			}
		}
	}
}
