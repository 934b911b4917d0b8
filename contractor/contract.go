package contractor

import (
	"container/heap"
	"runtime"
	"sync/atomic"

	"github.com/katalvlaran/chway/bulkvector"
	"github.com/katalvlaran/chway/chlog"
	"github.com/katalvlaran/chway/chmetrics"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/staticgraph"
	"golang.org/x/sync/errgroup"
)

// Contract runs contraction-hierarchy preprocessing over the edge-based
// graph described by edges and returns per-node rank plus the two upward
// CSR overlays consumed by chquery.
func Contract(numNodes uint32, edges []model.EdgeBasedEdge, opts Options) (*Result, error) {
	if numNodes == 0 {
		return nil, ErrNoNodes
	}

	outAdj := make([][]adjEntry, numNodes)
	inAdj := make([][]adjEntry, numNodes)
	for i, e := range edges {
		outAdj[e.Source] = append(outAdj[e.Source], adjEntry{to: e.Target, weight: e.Weight, middle: noMiddle, original: uint32(i)})
		inAdj[e.Target] = append(inAdj[e.Target], adjEntry{to: e.Source, weight: e.Weight, middle: noMiddle, original: uint32(i)})
	}
	return contractAdjacency(numNodes, outAdj, inAdj, opts)
}

// ContractConsuming is Contract over a segmented edge vector: each block is
// folded into the adjacency lists and released before the next one is
// touched, so the edge list and the adjacency structure never coexist in
// full. This is the intended hand-off from edgebased.Factory.BuildEdges —
// the edge-based edge list exists only long enough to be consumed here.
func ContractConsuming(numNodes uint32, edges *bulkvector.Vector[model.EdgeBasedEdge], opts Options) (*Result, error) {
	if numNodes == 0 {
		return nil, ErrNoNodes
	}

	outAdj := make([][]adjEntry, numNodes)
	inAdj := make([][]adjEntry, numNodes)
	var idx uint32
	edges.ConsumeTo(func(block []model.EdgeBasedEdge) {
		for _, e := range block {
			outAdj[e.Source] = append(outAdj[e.Source], adjEntry{to: e.Target, weight: e.Weight, middle: noMiddle, original: idx})
			inAdj[e.Target] = append(inAdj[e.Target], adjEntry{to: e.Source, weight: e.Weight, middle: noMiddle, original: idx})
			idx++
		}
	})
	return contractAdjacency(numNodes, outAdj, inAdj, opts)
}

func contractAdjacency(numNodes uint32, outAdj, inAdj [][]adjEntry, opts Options) (*Result, error) {
	if opts.WitnessHopLimit <= 0 {
		opts = NewOptions()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	contracted := make([]bool, numNodes)
	rank := make([]uint32, numNodes)
	contractedNeighbors := make([]int, numNodes)
	originalEdgesThrough := make([]int, numNodes)
	for n := uint32(0); n < numNodes; n++ {
		originalEdgesThrough[n] = len(outAdj[n]) + len(inAdj[n])
	}

	pq := make(priorityQueue, numNodes)
	for i := uint32(0); i < numNodes; i++ {
		pq[i] = &pqEntry{
			node:     i,
			priority: computePriority(outAdj, inAdj, i, contracted, 0, originalEdgesThrough[i], 0),
			index:    int(i),
		}
	}
	heapInit(&pq)

	var order uint32
	for pq.Len() > 0 {
		batch := selectIndependentSet(&pq, outAdj, inAdj, contracted, contractedNeighbors, originalEdgesThrough, opts)
		if len(batch) == 0 {
			continue
		}

		// Each worker owns one reusable witness scratch for the whole
		// round; batch members are claimed off a shared cursor. Adjacency
		// mutation waits until after the barrier, so workers only read.
		shortcutsByNode := make([][]Shortcut, len(batch))
		var cursor atomic.Int64
		var g errgroup.Group
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				ws := newWitnessState(numNodes)
				for {
					i := int(cursor.Add(1)) - 1
					if i >= len(batch) {
						return nil
					}
					shortcutsByNode[i] = findShortcuts(ws, outAdj, inAdj, batch[i], contracted, opts)
				}
			})
		}
		_ = g.Wait()

		roundShortcuts := 0
		for i, node := range batch {
			contracted[node] = true
			rank[node] = order
			order++
			for _, sc := range shortcutsByNode[i] {
				outAdj[sc.From] = append(outAdj[sc.From], adjEntry{to: sc.To, weight: sc.Weight, middle: sc.Middle, original: noOriginal})
				inAdj[sc.To] = append(inAdj[sc.To], adjEntry{to: sc.From, weight: sc.Weight, middle: sc.Middle, original: noOriginal})
				roundShortcuts++
			}
		}
		chmetrics.Get().RecordContractionRound(roundShortcuts)
		for _, node := range batch {
			for _, e := range outAdj[node] {
				if !contracted[e.to] {
					contractedNeighbors[e.to]++
				}
			}
			for _, e := range inAdj[node] {
				if !contracted[e.to] {
					contractedNeighbors[e.to]++
				}
			}
		}

		chlog.Default().Debug("contraction round complete", "batch", len(batch), "contracted", order, "total", numNodes)
	}

	return buildOverlay(numNodes, outAdj, inAdj, rank), nil
}

// selectIndependentSet pops nodes off pq in priority order, rechecking
// each node's priority lazily, and accepts nodes into the round's batch
// only while they are pairwise non-adjacent in the 2-hop neighborhood of
// every node already accepted.
// A node whose recomputed priority exceeds the queue head is pushed back
// with that priority; a node rejected for adjacency is pushed back with its
// stored priority once the batch is chosen.
func selectIndependentSet(
	pq *priorityQueue,
	outAdj, inAdj [][]adjEntry,
	contracted []bool,
	contractedNeighbors, originalEdgesThrough []int,
	opts Options,
) []uint32 {
	claimed := make(map[uint32]bool)
	forbidden := make(map[uint32]bool)
	var batch []uint32
	var deferred []*pqEntry

	for pq.Len() > 0 {
		entry := heapPop(pq)
		node := entry.node
		if contracted[node] {
			continue
		}

		newPriority := computePriority(outAdj, inAdj, node, contracted, contractedNeighbors[node], originalEdgesThrough[node], opts.WitnessHopLimit)
		if pq.Len() > 0 && newPriority > (*pq)[0].priority {
			entry.priority = newPriority
			heap.Push(pq, entry)
			continue
		}

		if forbidden[node] {
			deferred = append(deferred, entry)
			continue
		}

		batch = append(batch, node)
		claimed[node] = true
		for _, e := range outAdj[node] {
			forbidden[e.to] = true
			for _, e2 := range outAdj[e.to] {
				forbidden[e2.to] = true
			}
		}
		for _, e := range inAdj[node] {
			forbidden[e.to] = true
			for _, e2 := range inAdj[e.to] {
				forbidden[e2.to] = true
			}
		}
	}

	for _, e := range deferred {
		heap.Push(pq, e)
	}
	return batch
}

func findShortcuts(ws *witnessState, outAdj, inAdj [][]adjEntry, node uint32, contracted []bool, opts Options) []Shortcut {
	var incoming, outgoing []adjEntry
	for _, e := range inAdj[node] {
		if !contracted[e.to] {
			incoming = append(incoming, e)
		}
	}
	for _, e := range outAdj[node] {
		if !contracted[e.to] {
			outgoing = append(outgoing, e)
		}
	}
	if len(incoming) == 0 || len(outgoing) == 0 {
		return nil
	}

	var shortcuts []Shortcut
	for _, in := range incoming {
		var maxOut int32
		for _, out := range outgoing {
			if out.to != in.to && out.weight > maxOut {
				maxOut = out.weight
			}
		}
		if maxOut == 0 {
			continue
		}
		ceiling := in.weight + maxOut
		runWitnessSearch(ws, outAdj, in.to, node, ceiling, opts.WitnessHopLimit, contracted)

		for _, out := range outgoing {
			if out.to == in.to {
				continue
			}
			scWeight := in.weight + out.weight
			if ws.dist[out.to] > scWeight {
				shortcuts = append(shortcuts, Shortcut{From: in.to, To: out.to, Weight: scWeight, Middle: node})
			}
		}
	}
	return shortcuts
}

func buildOverlay(numNodes uint32, outAdj, inAdj [][]adjEntry, rank []uint32) *Result {
	var fwd, bwd, downInto, downFrom []staticEdge
	for u := uint32(0); u < numNodes; u++ {
		for _, e := range outAdj[u] {
			if rank[u] < rank[e.to] {
				fwd = append(fwd, staticEdge{Source: u, Target: e.to, Weight: e.weight, Middle: e.middle, Original: e.original, Forward: true})
			} else if rank[u] > rank[e.to] {
				downInto = append(downInto, staticEdge{Source: e.to, Target: u, Weight: e.weight, Middle: e.middle, Original: e.original})
				downFrom = append(downFrom, staticEdge{Source: u, Target: e.to, Weight: e.weight, Middle: e.middle, Original: e.original})
			}
		}
		for _, e := range inAdj[u] {
			if rank[u] < rank[e.to] {
				bwd = append(bwd, staticEdge{Source: u, Target: e.to, Weight: e.weight, Middle: e.middle, Original: e.original, Backward: true})
			}
		}
	}
	return &Result{Rank: rank, ForwardCSR: fwd, BackwardCSR: bwd, DownIntoCSR: downInto, DownFromCSR: downFrom}
}

// BuildGraphs materializes the immutable CSR overlays the query path runs
// against: forward/backward upward graphs plus the downward indexes
// stall-on-demand consults.
func BuildGraphs(r *Result, numNodes uint32) (forward, backward, downInto, downFrom *staticgraph.StaticGraph) {
	toBuildEdges := func(edges []staticEdge) []staticgraph.BuildEdge {
		out := make([]staticgraph.BuildEdge, len(edges))
		for i, e := range edges {
			shortcut := e.Middle != noMiddle
			out[i] = staticgraph.BuildEdge{
				Source: e.Source,
				Data: model.QueryEdge{
					Target:       e.Target,
					Weight:       e.Weight,
					Forward:      e.Forward,
					Backward:     e.Backward,
					Shortcut:     shortcut,
					Middle:       e.Middle,
					OriginalEdge: e.Original,
				},
			}
		}
		return out
	}
	forward = staticgraph.Build(numNodes, toBuildEdges(r.ForwardCSR))
	backward = staticgraph.Build(numNodes, toBuildEdges(r.BackwardCSR))
	downInto = staticgraph.Build(numNodes, toBuildEdges(r.DownIntoCSR))
	downFrom = staticgraph.Build(numNodes, toBuildEdges(r.DownFromCSR))
	return forward, backward, downInto, downFrom
}
