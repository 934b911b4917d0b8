package facade_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/facade"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/persist"
	"github.com/katalvlaran/chway/rtree"
	"github.com/katalvlaran/chway/staticgraph"
)

func buildArtifacts(t *testing.T) facade.Readers {
	t.Helper()

	graph := staticgraph.Build(2, []staticgraph.BuildEdge{
		{Source: 0, Data: model.QueryEdge{Target: 1, Weight: 5, Forward: true}},
	})
	nodes := []model.NodeInfo{
		{ID: 0, Coordinate: model.Coordinate{Lat: 10, Lon: 20}},
		{ID: 1, Coordinate: model.Coordinate{Lat: 11, Lon: 21}},
	}
	edgeData := []persist.OriginalEdgeData{{ViaNode: 0, NameID: 0, TurnInstruction: model.TurnNoTurn}}
	names := []string{"Main St"}
	leaves := []model.RTreeLeaf{
		{EdgeBasedNodeID: 0, U: 0, V: 1, Coord1: nodes[0].Coordinate, Coord2: nodes[1].Coordinate, NameID: 0, Weight: 5, Forward: true},
	}
	tree := rtree.BulkLoad(leaves, 128)

	var hsgr, nodesBuf, edgesBuf, namesBuf, ramBuf, fileBuf, tsBuf bytes.Buffer
	require.NoError(t, persist.WriteHSGR(&hsgr, graph))
	require.NoError(t, persist.WriteNodes(&nodesBuf, nodes))
	require.NoError(t, persist.WriteEdges(&edgesBuf, edgeData))
	require.NoError(t, persist.WriteNames(&namesBuf, names))
	require.NoError(t, persist.WriteRTreeFiles(&ramBuf, &fileBuf, tree, 128))
	require.NoError(t, persist.WriteTimestamp(&tsBuf, "2026-07-31T00:00:00"))

	return facade.Readers{
		HSGR:      &hsgr,
		Nodes:     &nodesBuf,
		Edges:     &edgesBuf,
		Names:     &namesBuf,
		RAMIndex:  &ramBuf,
		FileIndex: &fileBuf,
		Timestamp: &tsBuf,
		Strict:    true,
	}
}

func TestLoadDataset(t *testing.T) {
	ds, err := facade.LoadDataset(buildArtifacts(t))
	require.NoError(t, err)

	assert.EqualValues(t, 2, ds.NumNodes())
	assert.Equal(t, "Main St", ds.Name(0))
	assert.Equal(t, "", ds.Name(99))
	assert.Equal(t, "2026-07-31T00:00:00", ds.Timestamp())
	assert.NotZero(t, ds.Checksum())
	require.NotNil(t, ds.Graph())
	require.NotNil(t, ds.Resolver())

	resolved, ok := ds.Resolver().Resolve(model.Coordinate{Lat: 10, Lon: 20}, false)
	require.True(t, ok)
	assert.NotEqual(t, model.NoPhantomNode, resolved.ForwardNodeID)
}

func writeFile(t *testing.T, dir, name string, r *bytes.Buffer) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, r.Bytes(), 0o644))
	return path
}

func TestOpenFileFacade_MmapRoundTrip(t *testing.T) {
	readers := buildArtifacts(t)
	dir := t.TempDir()

	paths := facade.DatasetPaths{
		HSGR:      writeFile(t, dir, "region.hsgr", readers.HSGR.(*bytes.Buffer)),
		Nodes:     writeFile(t, dir, "region.nodes", readers.Nodes.(*bytes.Buffer)),
		Edges:     writeFile(t, dir, "region.edges", readers.Edges.(*bytes.Buffer)),
		Names:     writeFile(t, dir, "region.names", readers.Names.(*bytes.Buffer)),
		RAMIndex:  writeFile(t, dir, "region.ramIndex", readers.RAMIndex.(*bytes.Buffer)),
		FileIndex: writeFile(t, dir, "region.fileIndex", readers.FileIndex.(*bytes.Buffer)),
		Timestamp: writeFile(t, dir, "region.timestamp", readers.Timestamp.(*bytes.Buffer)),
	}

	mapped, err := facade.OpenFileFacade(paths, 128, true)
	require.NoError(t, err)
	defer mapped.Close()

	assert.EqualValues(t, 2, mapped.NumNodes())
	assert.Equal(t, "Main St", mapped.Name(0))
}

func TestSharedMemoryFacade_SwapIsVisibleToNewAcquires(t *testing.T) {
	first, err := facade.LoadDataset(buildArtifacts(t))
	require.NoError(t, err)

	shmFacade := facade.NewSharedMemoryFacade(first)
	handle := shmFacade.Acquire()
	assert.Equal(t, uint64(0), handle.Seq)
	handle.Release()

	second, err := facade.LoadDataset(buildArtifacts(t))
	require.NoError(t, err)

	require.NoError(t, shmFacade.Swap(context.Background(), second))
	assert.Equal(t, uint64(1), shmFacade.Generation())

	nextHandle := shmFacade.Acquire()
	assert.Equal(t, uint64(1), nextHandle.Seq)
	assert.Same(t, second, nextHandle.Dataset)
	nextHandle.Release()
}
