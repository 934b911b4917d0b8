package rtree

import (
	"sort"

	"github.com/katalvlaran/chway/model"
)

// DefaultBranchingFactor is sized so one internal node fills a file page.
const DefaultBranchingFactor = 128

// node is one packed-tree node: either a leaf-group (pointing into a
// contiguous run of the sorted leaf slice) or an internal node (pointing
// into a contiguous run of the level below it).
type node struct {
	mbr        model.MBR
	start, end int // half-open range into leaves (level 0) or childLevel
}

// Tree is a bulk-loaded, read-only packed R-tree over road-segment MBRs.
// Leaves are sorted by Hilbert value once at load time; queries never
// mutate the tree.
type Tree struct {
	leaves []model.RTreeLeaf
	levels [][]node // levels[0] groups leaves; levels[len-1] has exactly one node, the root
}

// BulkLoad sorts leaves by the Hilbert value of their segment midpoint and
// builds the tree bottom-up in pages of branchingFactor. A branchingFactor
// <= 0 uses DefaultBranchingFactor.
func BulkLoad(leaves []model.RTreeLeaf, branchingFactor int) *Tree {
	if branchingFactor <= 0 {
		branchingFactor = DefaultBranchingFactor
	}

	sorted := make([]model.RTreeLeaf, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		return midpointHilbert(sorted[i]) < midpointHilbert(sorted[j])
	})

	t := &Tree{leaves: sorted}
	if len(sorted) == 0 {
		return t
	}

	level0 := make([]node, 0, (len(sorted)+branchingFactor-1)/branchingFactor)
	for i := 0; i < len(sorted); i += branchingFactor {
		end := i + branchingFactor
		if end > len(sorted) {
			end = len(sorted)
		}
		mbr := sorted[i].MBR
		for j := i + 1; j < end; j++ {
			mbr = mbr.Union(sorted[j].MBR)
		}
		level0 = append(level0, node{mbr: mbr, start: i, end: end})
	}
	t.levels = append(t.levels, level0)

	for len(t.levels[len(t.levels)-1]) > 1 {
		prev := t.levels[len(t.levels)-1]
		next := make([]node, 0, (len(prev)+branchingFactor-1)/branchingFactor)
		for i := 0; i < len(prev); i += branchingFactor {
			end := i + branchingFactor
			if end > len(prev) {
				end = len(prev)
			}
			mbr := prev[i].mbr
			for j := i + 1; j < end; j++ {
				mbr = mbr.Union(prev[j].mbr)
			}
			next = append(next, node{mbr: mbr, start: i, end: end})
		}
		t.levels = append(t.levels, next)
	}

	return t
}

func midpointHilbert(l model.RTreeLeaf) uint64 {
	lat1, lon1 := l.Coord1.AsFloat()
	lat2, lon2 := l.Coord2.AsFloat()
	return hilbertValue((lat1+lat2)/2, (lon1+lon2)/2)
}

// NumLeaves reports how many segments the tree indexes.
func (t *Tree) NumLeaves() int { return len(t.leaves) }

// Leaves returns the tree's leaves in Hilbert-sorted order, the order
// package persist writes to .fileIndex. Since BulkLoad is a deterministic
// function of (leaves, branchingFactor), persisting this slice plus the
// branching factor is sufficient to reconstruct a byte-identical tree on
// load.
func (t *Tree) Leaves() []model.RTreeLeaf { return t.leaves }
