package chquery

import "container/heap"

// scratch is the per-query reusable state: two distance/parent tables and
// two priority queues. Reset is lazy via dirty lists rather than a full
// clear, since the node count can be in the hundreds of millions.
type scratch struct {
	distFwd, distBwd   []int32
	predFwd, predBwd   []uint32
	dirtyFwd, dirtyBwd []uint32

	fwdPQ, bwdPQ pqueue
}

func newScratch(numNodes uint32) *scratch {
	s := &scratch{
		distFwd: make([]int32, numNodes),
		distBwd: make([]int32, numNodes),
		predFwd: make([]uint32, numNodes),
		predBwd: make([]uint32, numNodes),
	}
	for i := range s.distFwd {
		s.distFwd[i] = infWeight
		s.distBwd[i] = infWeight
		s.predFwd[i] = noNode
		s.predBwd[i] = noNode
	}
	return s
}

func (s *scratch) reset() {
	for _, n := range s.dirtyFwd {
		s.distFwd[n] = infWeight
		s.predFwd[n] = noNode
	}
	for _, n := range s.dirtyBwd {
		s.distBwd[n] = infWeight
		s.predBwd[n] = noNode
	}
	s.dirtyFwd = s.dirtyFwd[:0]
	s.dirtyBwd = s.dirtyBwd[:0]
	s.fwdPQ = s.fwdPQ[:0]
	s.bwdPQ = s.bwdPQ[:0]
}

func (s *scratch) touchFwd(n uint32, d int32, pred uint32) {
	if s.distFwd[n] == infWeight {
		s.dirtyFwd = append(s.dirtyFwd, n)
	}
	s.distFwd[n] = d
	s.predFwd[n] = pred
}

func (s *scratch) touchBwd(n uint32, d int32, pred uint32) {
	if s.distBwd[n] == infWeight {
		s.dirtyBwd = append(s.dirtyBwd, n)
	}
	s.distBwd[n] = d
	s.predBwd[n] = pred
}

type pqItem struct {
	node uint32
	dist int32
}
type pqueue []pqItem

func (pq pqueue) Len() int           { return len(pq) }
func (pq pqueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq pqueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *pqueue) Push(x any)        { *pq = append(*pq, x.(pqItem)) }
func (pq *pqueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

func (pq pqueue) peek() int32 {
	if len(pq) == 0 {
		return infWeight
	}
	return pq[0].dist
}

func heapPush(pq *pqueue, it pqItem) { heap.Push(pq, it) }
func heapPop(pq *pqueue) pqItem      { return heap.Pop(pq).(pqItem) }
func heapInit(pq *pqueue)            { heap.Init(pq) }
