package facade

import (
	"fmt"
	"io"

	"github.com/katalvlaran/chway/persist"
	"github.com/katalvlaran/chway/phantom"
	"github.com/katalvlaran/chway/rtree"
)

// Readers bundles the seven per-artifact readers LoadDataset consumes.
// OpenFileFacade fills one with bytes.Readers over mmap'd artifact files.
type Readers struct {
	HSGR      io.Reader
	Nodes     io.Reader
	Edges     io.Reader
	Names     io.Reader
	RAMIndex  io.Reader
	FileIndex io.Reader
	Timestamp io.Reader
	// BranchingFactor is the page size BulkLoad (and thus the resolver it
	// re-derives) groups leaves with; it is not itself persisted in
	// `.ramIndex` as part of the resolver's reconstruction, only used to
	// rebuild a Resolver-private tree. Zero uses rtree.DefaultBranchingFactor.
	BranchingFactor int
	// Strict governs ReadHSGR's UUID mismatch behavior.
	Strict bool
}

// LoadDataset decodes all seven artifacts into a *Dataset, whatever their
// underlying io.Reader implementation (a plain *os.File or an mmap'd
// bytes.Reader). This is the one place persist's per-artifact decoders are
// stitched together into the capability surface Facade exposes.
func LoadDataset(r Readers) (*Dataset, error) {
	graph, checksum, err := persist.ReadHSGRWithChecksum(r.HSGR, r.Strict)
	if err != nil {
		return nil, fmt.Errorf("facade: load hsgr: %w", err)
	}

	nodes, err := persist.ReadNodes(r.Nodes)
	if err != nil {
		return nil, fmt.Errorf("facade: load nodes: %w", err)
	}

	edgeData, err := persist.ReadEdges(r.Edges)
	if err != nil {
		return nil, fmt.Errorf("facade: load edges: %w", err)
	}

	names, err := persist.ReadNames(r.Names)
	if err != nil {
		return nil, fmt.Errorf("facade: load names: %w", err)
	}

	tree, err := persist.ReadRTreeFiles(r.RAMIndex, r.FileIndex)
	if err != nil {
		return nil, fmt.Errorf("facade: load rtree: %w", err)
	}
	branchingFactor := r.BranchingFactor
	if branchingFactor <= 0 {
		branchingFactor = rtree.DefaultBranchingFactor
	}
	resolver := phantom.NewResolver(tree.Leaves(), branchingFactor)

	timestamp, err := persist.ReadTimestamp(r.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("facade: load timestamp: %w", err)
	}

	return &Dataset{
		graph:     graph,
		nodes:     nodes,
		edgeData:  edgeData,
		names:     names,
		resolver:  resolver,
		checksum:  checksum,
		timestamp: timestamp,
	}, nil
}
