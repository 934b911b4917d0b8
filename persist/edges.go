package persist

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/chway/model"
)

// WriteEdges writes the `.edges` artifact: count(u32) followed by count ×
// OriginalEdgeData(via_node u32, name_id u32, turn_instruction u8,
// exit_number u16, reserved u8).
func WriteEdges(w io.Writer, data []OriginalEdgeData) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return fmt.Errorf("persist: write edges count: %w", err)
	}
	for _, d := range data {
		if err := binary.Write(w, binary.LittleEndian, d.ViaNode); err != nil {
			return fmt.Errorf("persist: write edge via_node: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, d.NameID); err != nil {
			return fmt.Errorf("persist: write edge name_id: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint8(d.TurnInstruction)); err != nil {
			return fmt.Errorf("persist: write edge turn_instruction: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, d.ExitNumber); err != nil {
			return fmt.Errorf("persist: write edge exit_number: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint8(0)); err != nil {
			return fmt.Errorf("persist: write edge reserved byte: %w", err)
		}
	}
	return nil
}

// ReadEdges reads back a `.edges` artifact written by WriteEdges.
func ReadEdges(r io.Reader) ([]OriginalEdgeData, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("persist: read edges count: %w", err)
	}
	out := make([]OriginalEdgeData, count)
	for i := range out {
		var viaNode, nameID uint32
		var turn uint8
		var exitNumber uint16
		var reserved uint8
		if err := binary.Read(r, binary.LittleEndian, &viaNode); err != nil {
			return nil, fmt.Errorf("persist: read edge via_node: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &nameID); err != nil {
			return nil, fmt.Errorf("persist: read edge name_id: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &turn); err != nil {
			return nil, fmt.Errorf("persist: read edge turn_instruction: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &exitNumber); err != nil {
			return nil, fmt.Errorf("persist: read edge exit_number: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &reserved); err != nil {
			return nil, fmt.Errorf("persist: read edge reserved byte: %w", err)
		}
		out[i] = OriginalEdgeData{
			ViaNode:         viaNode,
			NameID:          nameID,
			TurnInstruction: model.TurnInstruction(turn),
			ExitNumber:      exitNumber,
		}
	}
	return out, nil
}
