package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/chway/model"
)

// WriteNodes writes the `.nodes` artifact: count(u32) followed by count ×
// NodeInfo(lat i32, lon i32, id u32). ExternalID is a diagnostics-only
// field (model.NodeInfo doc comment) and is not part of the wire format.
func WriteNodes(w io.Writer, nodes []model.NodeInfo) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(nodes))); err != nil {
		return fmt.Errorf("persist: write nodes count: %w", err)
	}
	for _, n := range nodes {
		if err := binary.Write(w, binary.LittleEndian, n.Coordinate.Lat); err != nil {
			return fmt.Errorf("persist: write node lat: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, n.Coordinate.Lon); err != nil {
			return fmt.Errorf("persist: write node lon: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, n.ID); err != nil {
			return fmt.Errorf("persist: write node id: %w", err)
		}
	}
	return nil
}

// ReadNodes reads back a `.nodes` artifact written by WriteNodes.
func ReadNodes(r io.Reader) ([]model.NodeInfo, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("persist: read nodes count: %w", err)
	}
	nodes := make([]model.NodeInfo, count)
	for i := range nodes {
		var lat, lon int32
		var id uint32
		if err := binary.Read(r, binary.LittleEndian, &lat); err != nil {
			return nil, fmt.Errorf("persist: read node lat: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &lon); err != nil {
			return nil, fmt.Errorf("persist: read node lon: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return nil, fmt.Errorf("persist: read node id: %w", err)
		}
		nodes[i] = model.NodeInfo{ID: id, Coordinate: model.Coordinate{Lat: lat, Lon: lon}}
	}
	return nodes, nil
}
