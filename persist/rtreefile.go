package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/chway/chstatus"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/rtree"
)

// WriteRTreeFiles writes the `.ramIndex` and `.fileIndex` artifacts.
// `.fileIndex` holds the Hilbert-sorted leaves; `.ramIndex` holds just
// enough metadata (branching factor, leaf count) to rebuild the internal
// tree deterministically via rtree.BulkLoad, since BulkLoad is a pure
// function of (leaves, branchingFactor) and therefore always reproduces
// the same internal levels from the same `.fileIndex`.
func WriteRTreeFiles(ramW, fileW io.Writer, tree *rtree.Tree, branchingFactor int) error {
	leaves := tree.Leaves()

	if err := binary.Write(fileW, binary.LittleEndian, uint32(len(leaves))); err != nil {
		return fmt.Errorf("persist: write fileIndex leaf_count: %w", err)
	}
	for _, l := range leaves {
		if err := writeLeaf(fileW, l); err != nil {
			return err
		}
	}

	if err := binary.Write(ramW, binary.LittleEndian, uint32(branchingFactor)); err != nil {
		return fmt.Errorf("persist: write ramIndex branching_factor: %w", err)
	}
	if err := binary.Write(ramW, binary.LittleEndian, uint32(len(leaves))); err != nil {
		return fmt.Errorf("persist: write ramIndex leaf_count: %w", err)
	}
	return nil
}

// ReadRTreeFiles reads back an R-tree written by WriteRTreeFiles, rebuilding
// the internal levels by re-running BulkLoad over the persisted leaves.
func ReadRTreeFiles(ramR, fileR io.Reader) (*rtree.Tree, error) {
	var branchingFactor, ramLeafCount uint32
	if err := binary.Read(ramR, binary.LittleEndian, &branchingFactor); err != nil {
		return nil, fmt.Errorf("persist: read ramIndex branching_factor: %w", err)
	}
	if err := binary.Read(ramR, binary.LittleEndian, &ramLeafCount); err != nil {
		return nil, fmt.Errorf("persist: read ramIndex leaf_count: %w", err)
	}

	var fileLeafCount uint32
	if err := binary.Read(fileR, binary.LittleEndian, &fileLeafCount); err != nil {
		return nil, fmt.Errorf("persist: read fileIndex leaf_count: %w", err)
	}
	if fileLeafCount != ramLeafCount {
		return nil, chstatus.ErrChecksumMismatch
	}

	leaves := make([]model.RTreeLeaf, fileLeafCount)
	for i := range leaves {
		leaf, err := readLeaf(fileR)
		if err != nil {
			return nil, err
		}
		leaves[i] = leaf
	}
	return rtree.BulkLoad(leaves, int(branchingFactor)), nil
}

func writeLeaf(w io.Writer, l model.RTreeLeaf) error {
	fields := []any{
		l.EdgeBasedNodeID, l.U, l.V,
		l.Coord1.Lat, l.Coord1.Lon, l.Coord2.Lat, l.Coord2.Lon,
		l.NameID, l.Weight,
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("persist: write rtree leaf field: %w", err)
		}
	}
	var flags byte
	if l.Forward {
		flags |= 1 << 0
	}
	if l.Backward {
		flags |= 1 << 1
	}
	if l.TinyComponent {
		flags |= 1 << 2
	}
	if err := binary.Write(w, binary.LittleEndian, flags); err != nil {
		return fmt.Errorf("persist: write rtree leaf flags: %w", err)
	}
	mbr := []int32{l.MBR.MinLat, l.MBR.MinLon, l.MBR.MaxLat, l.MBR.MaxLon}
	for _, v := range mbr {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("persist: write rtree leaf mbr: %w", err)
		}
	}
	return nil
}

func readLeaf(r io.Reader) (model.RTreeLeaf, error) {
	var l model.RTreeLeaf
	fields := []any{
		&l.EdgeBasedNodeID, &l.U, &l.V,
		&l.Coord1.Lat, &l.Coord1.Lon, &l.Coord2.Lat, &l.Coord2.Lon,
		&l.NameID, &l.Weight,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return model.RTreeLeaf{}, fmt.Errorf("persist: read rtree leaf field: %w", err)
		}
	}
	var flags byte
	if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
		return model.RTreeLeaf{}, fmt.Errorf("persist: read rtree leaf flags: %w", err)
	}
	l.Forward = flags&(1<<0) != 0
	l.Backward = flags&(1<<1) != 0
	l.TinyComponent = flags&(1<<2) != 0

	mbr := []*int32{&l.MBR.MinLat, &l.MBR.MinLon, &l.MBR.MaxLat, &l.MBR.MaxLon}
	for _, v := range mbr {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return model.RTreeLeaf{}, fmt.Errorf("persist: read rtree leaf mbr: %w", err)
		}
	}
	return l, nil
}
