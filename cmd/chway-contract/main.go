// Command chway-contract turns an importGraph (the stand-in for an
// external OSM ingester's output) into the seven dataset artifacts:
// .hsgr, .nodes, .edges, .names, .ramIndex, .fileIndex and .timestamp,
// under a given output directory.
//
// It is deliberately CLI-adjacent rather than a real ingestion tool: it
// reads one binary importfile, runs the full pipeline (component tagging,
// edge-based graph construction, contraction, R-tree build), runs one
// self-check query through chquery against the contracted graph (unless
// -self-check=false), then writes the artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/chway/chlog"
	"github.com/katalvlaran/chway/chquery"
	"github.com/katalvlaran/chway/components"
	"github.com/katalvlaran/chway/contractor"
	"github.com/katalvlaran/chway/edgebased"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/persist"
	"github.com/katalvlaran/chway/rtree"
	"github.com/katalvlaran/chway/staticgraph"
)

func main() {
	inputPath := flag.String("input", "", "path to an importfile produced by the ingestion stand-in")
	outputDir := flag.String("output", "", "directory to write the seven dataset artifacts into")
	branchingFactor := flag.Int("branching-factor", rtree.DefaultBranchingFactor, "R-tree bulk-load branching factor")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	selfCheck := flag.Bool("self-check", true, "run one in-process query against the built graph before writing artifacts")
	flag.Parse()

	chlog.Init(*logLevel)
	log := chlog.Default()

	if *inputPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "usage: chway-contract -input <importfile> -output <dir>")
		os.Exit(1)
	}

	if err := run(*inputPath, *outputDir, *branchingFactor, *selfCheck, log); err != nil {
		log.Error("chway-contract failed", "error", err)
		os.Exit(1)
	}
}

func run(inputPath, outputDir string, branchingFactor int, selfCheck bool, log *slog.Logger) error {
	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inFile.Close()

	graph, err := readImportGraph(inFile)
	if err != nil {
		return fmt.Errorf("read importfile: %w", err)
	}
	log.Info("importfile loaded", "nodes", graph.NumNodes, "edges", len(graph.Edges), "names", len(graph.Names))

	componentResult := components.Analyze(graph.NumNodes, graph.Edges)
	tinyOf := components.TinyNodes(componentResult, components.Options{})

	factory := edgebased.NewFactory(edgebased.Input{
		NumNodes:          graph.NumNodes,
		Edges:             graph.Edges,
		BarrierNodes:      graph.BarrierNodes,
		TrafficLightNodes: graph.TrafficLightNodes,
		Restrictions:      graph.Restrictions,
		NodeInfo:          graph.Nodes,
		Speed: edgebased.SpeedProfile{
			TrafficSignalPenalty: graph.TrafficSignalPenalty,
			UTurnPenalty:         graph.UTurnPenalty,
			UseTurnRestrictions:  graph.UseTurnRestrictions,
		},
	})

	ebNodes := factory.BuildNodes(func(u, v uint32) bool { return tinyOf[u] || tinyOf[v] })
	ebEdges := factory.BuildEdges()
	log.Info("edge-based graph built", "eb_nodes", len(ebNodes), "eb_edges", ebEdges.Len())

	// The .edges table must be gathered before contraction: ContractConsuming
	// frees the edge vector block-by-block as it builds its adjacency lists.
	edgeData := make([]persist.OriginalEdgeData, ebEdges.Len())
	ebEdges.ForEach(func(i int, e model.EdgeBasedEdge) {
		departureName := uint32(0)
		if int(e.Source) < len(ebNodes) {
			departureName = ebNodes[e.Source].NameID
		}
		edgeData[i] = persist.FromEdgeBasedEdge(e, departureName)
	})

	result, err := contractor.ContractConsuming(uint32(len(ebNodes)), ebEdges, contractor.NewOptions())
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	combined := buildCombinedGraph(uint32(len(ebNodes)), result)

	leaves := buildRTreeLeaves(ebNodes)
	tree := rtree.BulkLoad(leaves, branchingFactor)

	if selfCheck {
		if err := runSelfCheck(result, uint32(len(ebNodes))); err != nil {
			return fmt.Errorf("self-check: %w", err)
		}
		log.Info("self-check query succeeded")
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeArtifacts(outputDir, combined, graph.Nodes, edgeData, graph.Names, tree, branchingFactor); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	log.Info("dataset written", "dir", outputDir)
	return nil
}

// buildCombinedGraph merges the forward and backward upward overlays into
// one StaticGraph, the single-graph shape package persist's .hsgr format
// expects. The downward stall indexes contractor.BuildGraphs also
// produces are derivable from this same edge set at load time and are not
// persisted separately.
func buildCombinedGraph(numNodes uint32, r *contractor.Result) *staticgraph.StaticGraph {
	combined := make([]staticgraph.BuildEdge, 0, len(r.ForwardCSR)+len(r.BackwardCSR))

	for _, e := range r.ForwardCSR {
		combined = append(combined, staticgraph.BuildEdge{
			Source: e.Source,
			Data: model.QueryEdge{
				Target:       e.Target,
				Weight:       e.Weight,
				Forward:      true,
				Backward:     false,
				Shortcut:     e.Middle != noMiddleSentinel,
				Middle:       e.Middle,
				OriginalEdge: e.Original,
			},
		})
	}
	for _, e := range r.BackwardCSR {
		combined = append(combined, staticgraph.BuildEdge{
			Source: e.Source,
			Data: model.QueryEdge{
				Target:       e.Target,
				Weight:       e.Weight,
				Forward:      false,
				Backward:     true,
				Shortcut:     e.Middle != noMiddleSentinel,
				Middle:       e.Middle,
				OriginalEdge: e.Original,
			},
		})
	}

	return staticgraph.Build(numNodes, combined)
}

// noMiddleSentinel mirrors contractor's own unexported noMiddle sentinel:
// an edge is a shortcut exactly when its Middle field is not this value.
// contractor.Result's exported staticEdge fields don't expose the sentinel
// itself, so it is replicated here rather than exported solely for this
// caller's convenience.
const noMiddleSentinel = ^uint32(0)

func runSelfCheck(r *contractor.Result, numNodes uint32) error {
	forward, backward, downInto, downFrom := contractor.BuildGraphs(r, numNodes)
	q := chquery.New(forward, backward, downInto, downFrom)

	if numNodes == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := q.Run(ctx, []chquery.Seed{{Node: 0, Weight: 0}}, []chquery.Seed{{Node: numNodes - 1, Weight: 0}})
	if err != nil && err != chquery.ErrNoRoute {
		return err
	}
	return nil
}

func buildRTreeLeaves(nodes []model.EdgeBasedNode) []model.RTreeLeaf {
	leaves := make([]model.RTreeLeaf, 0, len(nodes))
	for _, n := range nodes {
		if n.IgnoreInGrid {
			continue
		}
		leaves = append(leaves, model.RTreeLeaf{
			EdgeBasedNodeID: n.ID,
			U:               n.U,
			V:               n.V,
			Coord1:          n.Coord1,
			Coord2:          n.Coord2,
			NameID:          n.NameID,
			Weight:          n.Weight,
			Forward:         true,
			Backward:        false,
			TinyComponent:   n.TinyComponent,
			MBR:             model.MBROf(n.Coord1, n.Coord2),
		})
	}
	return leaves
}

func writeArtifacts(
	dir string,
	graph *staticgraph.StaticGraph,
	nodes []model.NodeInfo,
	edgeData []persist.OriginalEdgeData,
	names []string,
	tree *rtree.Tree,
	branchingFactor int,
) error {
	writers := []struct {
		name string
		fn   func(f *os.File) error
	}{
		{"hsgr", func(f *os.File) error { return persist.WriteHSGR(f, graph) }},
		{"nodes", func(f *os.File) error { return persist.WriteNodes(f, nodes) }},
		{"edges", func(f *os.File) error { return persist.WriteEdges(f, edgeData) }},
		{"names", func(f *os.File) error { return persist.WriteNames(f, names) }},
		{"timestamp", func(f *os.File) error {
			return persist.WriteTimestamp(f, time.Now().UTC().Format("2006-01-02T15:04:05Z"))
		}},
	}

	for _, w := range writers {
		if err := writeFile(dir, w.name, w.fn); err != nil {
			return err
		}
	}

	ramFile, err := os.Create(dir + "/dataset.ramIndex")
	if err != nil {
		return err
	}
	defer ramFile.Close()
	fileFile, err := os.Create(dir + "/dataset.fileIndex")
	if err != nil {
		return err
	}
	defer fileFile.Close()

	return persist.WriteRTreeFiles(ramFile, fileFile, tree, branchingFactor)
}

func writeFile(dir, artifact string, fn func(f *os.File) error) error {
	path := dir + "/dataset." + artifact
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
