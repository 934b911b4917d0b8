package chquery

import "context"

// AltOptions tunes alternative-route acceptance.
type AltOptions struct {
	// Epsilon bounds how much worse a via-path may be than the optimum
	// (total via-weight <= (1+Epsilon)*optimum). Default ~0.25.
	Epsilon float64
	// Gamma bounds how much of the optimum path an alternative may share.
	// Default ~0.75.
	Gamma float64
	// Tau sizes the local-optimality window as a fraction of the optimum
	// weight: the subpath of weight Tau*optimum centered on the candidate
	// via node must itself be a shortest path. Tau <= 0 disables the
	// check (a zero-length subpath is trivially shortest). Default ~0.25.
	Tau float64
}

// DefaultAltOptions returns the stock acceptance thresholds.
func DefaultAltOptions() AltOptions { return AltOptions{Epsilon: 0.25, Gamma: 0.75, Tau: 0.25} }

// Alternative is a single accepted alternative route.
type Alternative struct {
	Weight      int32
	MeetingNode uint32
	PredFwd     []uint32
	PredBwd     []uint32
}

// RunWithAlternative runs the standard bidirectional search and, if a via
// node distinct from the optimal meeting node satisfies the stretch,
// local-optimality and sharing criteria, returns it as a single
// alternative. At most one alternative is ever returned.
func (q *BidirQuery) RunWithAlternative(ctx context.Context, sources, targets []Seed, opts AltOptions) (Result, *Alternative, error) {
	s := q.scratch.Get().(*scratch)
	defer func() {
		s.reset()
		q.scratch.Put(s)
	}()

	primary, err := q.runOn(ctx, s, sources, targets)
	if err != nil {
		return Result{}, nil, err
	}

	alt := q.findAlternative(ctx, s, primary, opts)
	return primary, alt, nil
}

// runOn is Run's body parameterized over a caller-owned scratch, so
// RunWithAlternative can inspect the fully-settled distance tables before
// they are reset.
func (q *BidirQuery) runOn(ctx context.Context, s *scratch, sources, targets []Seed) (Result, error) {
	for _, seed := range sources {
		if seed.Weight < s.distFwd[seed.Node] {
			s.touchFwd(seed.Node, seed.Weight, noNode)
			heapPush(&s.fwdPQ, pqItem{node: seed.Node, dist: seed.Weight})
		}
	}
	for _, seed := range targets {
		if seed.Weight < s.distBwd[seed.Node] {
			s.touchBwd(seed.Node, seed.Weight, noNode)
			heapPush(&s.bwdPQ, pqItem{node: seed.Node, dist: seed.Weight})
		}
	}
	heapInit(&s.fwdPQ)
	heapInit(&s.bwdPQ)

	best := infWeight
	meet := noNode
	iterations := 0

	for s.fwdPQ.Len() > 0 || s.bwdPQ.Len() > 0 {
		if s.fwdPQ.peek() >= best && s.bwdPQ.peek() >= best {
			break
		}
		iterations++
		if iterations&255 == 0 && ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		if s.fwdPQ.peek() < best {
			item := heapPop(&s.fwdPQ)
			q.stepForward(s, item, &best, &meet)
		}
		if s.bwdPQ.peek() < best {
			item := heapPop(&s.bwdPQ)
			q.stepBackward(s, item, &best, &meet)
		}
	}

	if meet == noNode || best >= infWeight {
		return Result{}, ErrNoRoute
	}

	predFwd := make([]uint32, len(s.predFwd))
	predBwd := make([]uint32, len(s.predBwd))
	copy(predFwd, s.predFwd)
	copy(predBwd, s.predBwd)
	return Result{Weight: best, MeetingNode: meet, PredFwd: predFwd, PredBwd: predBwd}, nil
}

// pathEdge identifies one directed step of a reconstructed via-path.
type pathEdge struct{ u, v uint32 }

// pathEdgeSet walks predFwd from meet back to its source seed and predBwd
// from meet forward to its target seed, recording each traversed edge
// together with the incremental distance it contributes — used below as an
// approximation of that edge's weight for the sharing computation, which
// is defined over path weight, not edge count.
func pathEdgeSet(dist []int32, pred []uint32, meet uint32, forward bool) map[pathEdge]int32 {
	edges := make(map[pathEdge]int32)
	n := meet
	for pred[n] != noNode {
		p := pred[n]
		w := dist[n] - dist[p]
		if forward {
			edges[pathEdge{p, n}] = w
		} else {
			edges[pathEdge{n, p}] = w
		}
		n = p
	}
	return edges
}

func (q *BidirQuery) findAlternative(ctx context.Context, s *scratch, primary Result, opts AltOptions) *Alternative {
	primaryFwd := pathEdgeSet(s.distFwd, primary.PredFwd, primary.MeetingNode, true)
	primaryBwd := pathEdgeSet(s.distBwd, primary.PredBwd, primary.MeetingNode, false)
	limit := int32(float64(primary.Weight) * (1 + opts.Epsilon))
	shareLimit := float64(primary.Weight) * opts.Gamma
	window := int32(opts.Tau * float64(primary.Weight))

	var best *Alternative
	bestShare := shareLimit + 1

	// probe is a second scratch for the local-optimality sub-queries, so
	// they don't clobber the settled tables in s. Borrowed lazily: most
	// candidates die on the cheaper stretch/sharing bounds first.
	var probe *scratch
	defer func() {
		if probe != nil {
			q.scratch.Put(probe)
		}
	}()

	for _, v := range s.dirtyFwd {
		if v == primary.MeetingNode || s.distBwd[v] >= infWeight {
			continue
		}
		viaWeight := s.distFwd[v] + s.distBwd[v]
		if viaWeight > limit {
			continue
		}

		candFwd := pathEdgeSet(s.distFwd, s.predFwd, v, true)
		candBwd := pathEdgeSet(s.distBwd, s.predBwd, v, false)
		shared := sharedWeight(primaryFwd, candFwd) + sharedWeight(primaryBwd, candBwd)
		if float64(shared) > shareLimit {
			continue
		}
		if float64(shared) < bestShare {
			if window > 0 {
				if probe == nil {
					probe = q.scratch.Get().(*scratch)
				}
				if !q.locallyOptimal(ctx, s, probe, v, window) {
					continue
				}
			}
			bestShare = float64(shared)
			best = &Alternative{
				Weight:      viaWeight,
				MeetingNode: v,
				PredFwd:     append([]uint32(nil), s.predFwd...),
				PredBwd:     append([]uint32(nil), s.predBwd...),
			}
		}
	}
	return best
}

// locallyOptimal checks the candidate via-path's subpath of the given
// weight window, centered on v: it climbs half the window up each search
// tree to find the subpath's endpoints a and b, then runs a fresh
// bidirectional query a->b on probe. The subpath is locally optimal iff
// that query cannot beat the subpath's own weight.
func (q *BidirQuery) locallyOptimal(ctx context.Context, s, probe *scratch, v uint32, window int32) bool {
	half := window / 2
	a := climb(s.distFwd, s.predFwd, v, half)
	b := climb(s.distBwd, s.predBwd, v, half)
	subWeight := (s.distFwd[v] - s.distFwd[a]) + (s.distBwd[v] - s.distBwd[b])
	if subWeight == 0 {
		return true
	}

	res, err := q.runOn(ctx, probe, []Seed{{Node: a}}, []Seed{{Node: b}})
	probe.reset()
	if err != nil {
		return false
	}
	return res.Weight >= subWeight
}

// climb walks pred links away from node until the accumulated tree weight
// reaches budget or the tree's seed, returning the node it stops at.
func climb(dist []int32, pred []uint32, node uint32, budget int32) uint32 {
	n := node
	for dist[node]-dist[n] < budget && pred[n] != noNode {
		n = pred[n]
	}
	return n
}

func sharedWeight(a, b map[pathEdge]int32) int32 {
	var total int32
	for e, w := range a {
		if _, ok := b[e]; ok {
			total += w
		}
	}
	return total
}
