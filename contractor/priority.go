package contractor

import "container/heap"

// pqEntry is one node's priority-queue slot. Lower priority contracts first.
type pqEntry struct {
	node     uint32
	priority int64
	index    int
}

type priorityQueue []*pqEntry

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	e := x.(*pqEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]
	return e
}

// computePriority combines edge-difference, contracted-neighbor count,
// original-edges-through and a hop-limit term into a single linear score.
// Lower is contracted earlier.
func computePriority(
	outAdj, inAdj [][]adjEntry,
	node uint32,
	contracted []bool,
	contractedNeighbors int,
	originalEdgesThrough int,
	hopLimit int,
) int64 {
	activeIn, activeOut := 0, 0
	for _, e := range inAdj[node] {
		if !contracted[e.to] {
			activeIn++
		}
	}
	for _, e := range outAdj[node] {
		if !contracted[e.to] {
			activeOut++
		}
	}
	edgeDifference := activeIn*activeOut - (activeIn + activeOut)

	return int64(edgeDifference) +
		2*int64(contractedNeighbors) +
		int64(originalEdgesThrough) +
		int64(hopLimit)
}

func heapInit(pq *priorityQueue)             { heap.Init(pq) }
func heapPush(pq *priorityQueue, e *pqEntry) { heap.Push(pq, e) }
func heapPop(pq *priorityQueue) *pqEntry     { return heap.Pop(pq).(*pqEntry) }
