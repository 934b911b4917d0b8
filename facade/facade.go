package facade

import (
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/persist"
	"github.com/katalvlaran/chway/phantom"
	"github.com/katalvlaran/chway/staticgraph"
)

// GraphReader exposes the CSR query graph a route search traverses.
type GraphReader interface {
	Graph() *staticgraph.StaticGraph
}

// CoordinateReader exposes the node-based coordinate table, indexed by
// dense node id.
type CoordinateReader interface {
	Coordinate(node uint32) model.Coordinate
	NumNodes() uint32
}

// NameReader resolves a segment's name id to its text, and an edge-based
// edge index to its original (via-node, name, turn) triple.
type NameReader interface {
	Name(nameID uint32) string
	OriginalEdgeData(edgeIndex uint32) persist.OriginalEdgeData
}

// RTreeReader exposes the phantom-node resolver built over the dataset's
// spatial index.
type RTreeReader interface {
	Resolver() *phantom.Resolver
}

// Checksummed exposes the dataset's `.hsgr` checksum and `.timestamp`
// line, the two fields the `hello` and `timestamp` commands serve.
type Checksummed interface {
	Checksum() uint32
	Timestamp() string
}

// Facade is the full capability set a route query needs from one dataset
// generation.
type Facade interface {
	GraphReader
	CoordinateReader
	NameReader
	RTreeReader
	Checksummed
}

// Dataset is the in-memory assembly of all seven persisted artifacts.
// OpenFileFacade returns one embedded in a MappedDataset, and a
// SharedMemoryFacade hands one out per QueryHandle; it implements Facade
// directly.
type Dataset struct {
	graph     *staticgraph.StaticGraph
	nodes     []model.NodeInfo
	edgeData  []persist.OriginalEdgeData
	names     []string
	resolver  *phantom.Resolver
	checksum  uint32
	timestamp string
}

var _ Facade = (*Dataset)(nil)

func (d *Dataset) Graph() *staticgraph.StaticGraph { return d.graph }

func (d *Dataset) Coordinate(node uint32) model.Coordinate { return d.nodes[node].Coordinate }

func (d *Dataset) NumNodes() uint32 { return uint32(len(d.nodes)) }

func (d *Dataset) Name(nameID uint32) string {
	if int(nameID) >= len(d.names) {
		return ""
	}
	return d.names[nameID]
}

func (d *Dataset) OriginalEdgeData(edgeIndex uint32) persist.OriginalEdgeData {
	return d.edgeData[edgeIndex]
}

func (d *Dataset) Resolver() *phantom.Resolver { return d.resolver }

func (d *Dataset) Checksum() uint32 { return d.checksum }

func (d *Dataset) Timestamp() string { return d.timestamp }
