package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/persist"
)

// importGraph is the node-based input this tool contracts: everything
// edgebased.Input needs, plus the speed-profile knobs. It stands in for
// the (out-of-scope) OSM ingester's output — a real deployment would
// replace readImportGraph with that collaborator's writer.
type importGraph struct {
	NumNodes             uint32
	Nodes                []model.NodeInfo
	Edges                []model.ImportEdge
	Names                []string // indexed by ImportEdge.NameID
	Restrictions         []model.TurnRestriction
	BarrierNodes         []uint32
	TrafficLightNodes    []uint32
	TrafficSignalPenalty int32
	UTurnPenalty         int32
	UseTurnRestrictions  bool
}

// writeImportGraph serializes an importGraph in the same little-endian,
// length-prefixed style package persist uses for its own artifacts,
// so a test or tool producing this tool's input looks at home next to the
// dataset writers it feeds.
func writeImportGraph(w io.Writer, g importGraph) error {
	if err := binary.Write(w, binary.LittleEndian, g.NumNodes); err != nil {
		return fmt.Errorf("importfile: write num_nodes: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(g.Nodes))); err != nil {
		return fmt.Errorf("importfile: write node_count: %w", err)
	}
	for _, n := range g.Nodes {
		if err := binary.Write(w, binary.LittleEndian, n.ID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, n.ExternalID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, n.Coordinate.Lat); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, n.Coordinate.Lon); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(g.Edges))); err != nil {
		return fmt.Errorf("importfile: write edge_count: %w", err)
	}
	for _, e := range g.Edges {
		fields := []any{e.Source, e.Target, e.Weight, e.NameID, e.RoadClass}
		for _, f := range fields {
			if err := binary.Write(w, binary.LittleEndian, f); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.LittleEndian, packFlags(e.Flags)); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(g.Restrictions))); err != nil {
		return fmt.Errorf("importfile: write restriction_count: %w", err)
	}
	for _, r := range g.Restrictions {
		if err := binary.Write(w, binary.LittleEndian, r.FromNode); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, r.ViaNode); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, r.ToNode); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, boolByte(r.IsOnly)); err != nil {
			return err
		}
	}

	if err := persist.WriteNames(w, g.Names); err != nil {
		return fmt.Errorf("importfile: write names: %w", err)
	}

	if err := writeUint32Slice(w, g.BarrierNodes); err != nil {
		return err
	}
	if err := writeUint32Slice(w, g.TrafficLightNodes); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, g.TrafficSignalPenalty); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, g.UTurnPenalty); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, boolByte(g.UseTurnRestrictions))
}

// readImportGraph reads back an importGraph written by writeImportGraph.
func readImportGraph(r io.Reader) (importGraph, error) {
	var g importGraph
	if err := binary.Read(r, binary.LittleEndian, &g.NumNodes); err != nil {
		return importGraph{}, fmt.Errorf("importfile: read num_nodes: %w", err)
	}

	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return importGraph{}, fmt.Errorf("importfile: read node_count: %w", err)
	}
	g.Nodes = make([]model.NodeInfo, nodeCount)
	for i := range g.Nodes {
		if err := binary.Read(r, binary.LittleEndian, &g.Nodes[i].ID); err != nil {
			return importGraph{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &g.Nodes[i].ExternalID); err != nil {
			return importGraph{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &g.Nodes[i].Coordinate.Lat); err != nil {
			return importGraph{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &g.Nodes[i].Coordinate.Lon); err != nil {
			return importGraph{}, err
		}
	}

	var edgeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
		return importGraph{}, fmt.Errorf("importfile: read edge_count: %w", err)
	}
	g.Edges = make([]model.ImportEdge, edgeCount)
	for i := range g.Edges {
		e := &g.Edges[i]
		for _, f := range []any{&e.Source, &e.Target, &e.Weight, &e.NameID, &e.RoadClass} {
			if err := binary.Read(r, binary.LittleEndian, f); err != nil {
				return importGraph{}, err
			}
		}
		var flags byte
		if err := binary.Read(r, binary.LittleEndian, &flags); err != nil {
			return importGraph{}, err
		}
		e.Flags = unpackFlags(flags)
	}

	var restrictionCount uint32
	if err := binary.Read(r, binary.LittleEndian, &restrictionCount); err != nil {
		return importGraph{}, fmt.Errorf("importfile: read restriction_count: %w", err)
	}
	g.Restrictions = make([]model.TurnRestriction, restrictionCount)
	for i := range g.Restrictions {
		tr := &g.Restrictions[i]
		if err := binary.Read(r, binary.LittleEndian, &tr.FromNode); err != nil {
			return importGraph{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &tr.ViaNode); err != nil {
			return importGraph{}, err
		}
		if err := binary.Read(r, binary.LittleEndian, &tr.ToNode); err != nil {
			return importGraph{}, err
		}
		var only byte
		if err := binary.Read(r, binary.LittleEndian, &only); err != nil {
			return importGraph{}, err
		}
		tr.IsOnly = only != 0
	}

	names, err := persist.ReadNames(r)
	if err != nil {
		return importGraph{}, fmt.Errorf("importfile: read names: %w", err)
	}
	g.Names = names

	if g.BarrierNodes, err = readUint32Slice(r); err != nil {
		return importGraph{}, err
	}
	if g.TrafficLightNodes, err = readUint32Slice(r); err != nil {
		return importGraph{}, err
	}

	if err := binary.Read(r, binary.LittleEndian, &g.TrafficSignalPenalty); err != nil {
		return importGraph{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &g.UTurnPenalty); err != nil {
		return importGraph{}, err
	}
	var useRestrictions byte
	if err := binary.Read(r, binary.LittleEndian, &useRestrictions); err != nil {
		return importGraph{}, err
	}
	g.UseTurnRestrictions = useRestrictions != 0

	return g, nil
}

func writeUint32Slice(w io.Writer, s []uint32) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	for _, v := range s {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

func readUint32Slice(r io.Reader) ([]uint32, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	s := make([]uint32, count)
	for i := range s {
		if err := binary.Read(r, binary.LittleEndian, &s[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func packFlags(f model.EdgeFlags) byte {
	var b byte
	if f.Forward {
		b |= 1 << 0
	}
	if f.Backward {
		b |= 1 << 1
	}
	if f.Roundabout {
		b |= 1 << 2
	}
	if f.IgnoreInGrid {
		b |= 1 << 3
	}
	if f.AccessRestricted {
		b |= 1 << 4
	}
	if f.ContraFlow {
		b |= 1 << 5
	}
	return b
}

func unpackFlags(b byte) model.EdgeFlags {
	return model.EdgeFlags{
		Forward:          b&(1<<0) != 0,
		Backward:         b&(1<<1) != 0,
		Roundabout:       b&(1<<2) != 0,
		IgnoreInGrid:     b&(1<<3) != 0,
		AccessRestricted: b&(1<<4) != 0,
		ContraFlow:       b&(1<<5) != 0,
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
