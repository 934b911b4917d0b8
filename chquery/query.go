package chquery

import (
	"context"
	"time"

	"github.com/katalvlaran/chway/chmetrics"
	"github.com/katalvlaran/chway/staticgraph"
)

// Run seeds the forward search from sources and the backward search from
// targets, then runs bidirectional CH Dijkstra with stall-on-demand until
// termination. Returns ErrNoRoute if the two searches never meet.
func (q *BidirQuery) Run(ctx context.Context, sources, targets []Seed) (result Result, err error) {
	start := time.Now()
	defer func() {
		outcome := "found"
		if err != nil {
			outcome = "no_route"
			if err != ErrNoRoute {
				outcome = "error"
			}
		}
		chmetrics.Get().RecordQuery(outcome, time.Since(start))
	}()

	s := q.scratch.Get().(*scratch)
	defer func() {
		s.reset()
		q.scratch.Put(s)
	}()

	return q.runOn(ctx, s, sources, targets)
}

func (q *BidirQuery) stepForward(s *scratch, item pqItem, best *int32, meet *uint32) {
	u, d := item.node, item.dist
	if d > s.distFwd[u] {
		return
	}
	if q.isStalled(q.downInto, s.distFwd, u, d) {
		return
	}
	if s.distBwd[u] < infWeight {
		if cand := d + s.distBwd[u]; cand < *best {
			*best = cand
			*meet = u
		}
	}
	for e := q.forward.BeginEdges(u); e < q.forward.EndEdges(u); e++ {
		edge := q.forward.Data(e)
		v := edge.Target
		nd := d + edge.Weight
		if nd < s.distFwd[v] {
			s.touchFwd(v, nd, u)
			heapPush(&s.fwdPQ, pqItem{node: v, dist: nd})
		}
	}
}

func (q *BidirQuery) stepBackward(s *scratch, item pqItem, best *int32, meet *uint32) {
	u, d := item.node, item.dist
	if d > s.distBwd[u] {
		return
	}
	if q.isStalled(q.downFrom, s.distBwd, u, d) {
		return
	}
	if s.distFwd[u] < infWeight {
		if cand := s.distFwd[u] + d; cand < *best {
			*best = cand
			*meet = u
		}
	}
	for e := q.backward.BeginEdges(u); e < q.backward.EndEdges(u); e++ {
		edge := q.backward.Data(e)
		v := edge.Target
		nd := d + edge.Weight
		if nd < s.distBwd[v] {
			s.touchBwd(v, nd, u)
			heapPush(&s.bwdPQ, pqItem{node: v, dist: nd})
		}
	}
}

// isStalled implements stall-on-demand: n at distance d is stallable if a
// downward neighbor p with a known distance d_p satisfies d_p + w(p,n) < d,
// since any shortest path through n would have been found via p already.
func (q *BidirQuery) isStalled(down *staticgraph.StaticGraph, dist []int32, n uint32, d int32) bool {
	for e := down.BeginEdges(n); e < down.EndEdges(n); e++ {
		edge := down.Data(e)
		p := edge.Target
		if dist[p] < infWeight && dist[p]+edge.Weight < d {
			chmetrics.Get().RecordStallPrune()
			return true
		}
	}
	return false
}
