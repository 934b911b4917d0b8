package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/chlog"
	"github.com/katalvlaran/chway/facade"
	"github.com/katalvlaran/chway/model"
)

func smallImportGraph() importGraph {
	coord := func(lat, lon float64) model.Coordinate { return model.FromFloat(lat, lon) }
	return importGraph{
		NumNodes: 4,
		Nodes: []model.NodeInfo{
			{ID: 0, Coordinate: coord(47.0, 19.0)},
			{ID: 1, Coordinate: coord(47.001, 19.0)},
			{ID: 2, Coordinate: coord(47.002, 19.0)},
			{ID: 3, Coordinate: coord(47.003, 19.0)},
		},
		Edges: []model.ImportEdge{
			{Source: 0, Target: 1, Weight: 100, NameID: 0, Flags: model.EdgeFlags{Forward: true, Backward: true}},
			{Source: 1, Target: 2, Weight: 100, NameID: 0, Flags: model.EdgeFlags{Forward: true, Backward: true}},
			{Source: 2, Target: 3, Weight: 100, NameID: 0, Flags: model.EdgeFlags{Forward: true, Backward: true}},
		},
		Names: []string{"Main Street"},
	}
}

// TestRun_ProducesLoadableDataset exercises the full pipeline on a tiny
// four-node graph: import parsing, component tagging, edge-based
// construction, contraction, R-tree build, self-check query and artifact
// serialization, then confirms the written artifacts load back through
// facade.LoadDataset.
func TestRun_ProducesLoadableDataset(t *testing.T) {
	chlog.Init("error")

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "graph.import")
	outputDir := filepath.Join(dir, "dataset")

	var buf bytes.Buffer
	require.NoError(t, writeImportGraph(&buf, smallImportGraph()))
	require.NoError(t, os.WriteFile(inputPath, buf.Bytes(), 0o644))

	require.NoError(t, run(inputPath, outputDir, 4, true, chlog.Default()))

	open := func(name string) *os.File {
		f, err := os.Open(filepath.Join(outputDir, "dataset."+name))
		require.NoError(t, err)
		t.Cleanup(func() { f.Close() })
		return f
	}

	ds, err := facade.LoadDataset(facade.Readers{
		HSGR:      open("hsgr"),
		Nodes:     open("nodes"),
		Edges:     open("edges"),
		Names:     open("names"),
		RAMIndex:  open("ramIndex"),
		FileIndex: open("fileIndex"),
		Timestamp: open("timestamp"),
		Strict:    true,
	})
	require.NoError(t, err)

	// .nodes carries the node-based coordinate table (via-node lookups key
	// into it), so its count is the four import nodes, not the six
	// edge-based nodes.
	require.EqualValues(t, 4, ds.NumNodes())
	require.NotEmpty(t, ds.Timestamp())
}
