package restriction

import "github.com/katalvlaran/chway/model"

const NoNode = ^uint32(0)

type bucketEntry struct {
	to     uint32
	isOnly bool
}

type source struct {
	from uint32
	via  uint32
}

// Map is RestrictionMap: a (from, via) keyed index of turn-restriction
// buckets, built once from a flat restriction list and then queried
// read-only during edge-based edge emission.
type Map struct {
	index   map[source]int
	buckets [][]bucketEntry
	count   int
}

// New builds a Map from a flat list of restrictions, with
// is-only-supersedes-is-not and one-is-only-per-source semantics.
func New(restrictions []model.TurnRestriction) *Map {
	m := &Map{index: make(map[source]int)}
	for _, r := range restrictions {
		m.insert(r)
	}
	return m
}

func (m *Map) insert(r model.TurnRestriction) {
	src := source{from: r.FromNode, via: r.ViaNode}
	idx, ok := m.index[src]
	if !ok {
		idx = len(m.buckets)
		m.buckets = append(m.buckets, nil)
		m.index[src] = idx
	} else {
		bucket := m.buckets[idx]
		if len(bucket) > 0 && bucket[0].isOnly {
			// Bucket already holds the one is-only restriction it may
			// have; later restrictions sharing this source are ignored.
			return
		}
		if r.IsOnly {
			// An is-only restriction supersedes every is-not restriction
			// already recorded for this source.
			m.count -= len(bucket)
			m.buckets[idx] = m.buckets[idx][:0]
		}
	}
	m.count++
	m.buckets[idx] = append(m.buckets[idx], bucketEntry{to: r.ToNode, isOnly: r.IsOnly})
}

// Len returns the number of live restriction entries (post is-only
// collapsing).
func (m *Map) Len() int { return m.count }

// EmanatingIsOnly returns the mandatory continuation node for an is-only
// restriction rooted at (from, via), or NoNode if none applies.
func (m *Map) EmanatingIsOnly(from, via uint32) uint32 {
	idx, ok := m.index[source{from: from, via: via}]
	if !ok {
		return NoNode
	}
	for _, e := range m.buckets[idx] {
		if e.isOnly {
			return e.to
		}
	}
	return NoNode
}

// IsRestricted reports whether turning from edge (u,v) onto edge (v,w) is
// forbidden by an is-not restriction rooted at (u,v).
//
// Note: this only inspects is-not entries. Callers check EmanatingIsOnly
// first and only fall through here when it returned NoNode, so an is-only
// bucket (which forbids every turn except its one target) is never
// consulted here.
func (m *Map) IsRestricted(u, v, w uint32) bool {
	idx, ok := m.index[source{from: u, via: v}]
	if !ok {
		return false
	}
	for _, e := range m.buckets[idx] {
		if !e.isOnly && e.to == w {
			return true
		}
	}
	return false
}
