package persist

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/chway/model"
)

// DatasetUUID is the compile-time UUID embedded at the head of `.hsgr`.
// A real build pins one literal value; tests that need a distinct dataset
// generation construct their own StaticGraph writer output and compare
// against this same process-wide constant.
var DatasetUUID = uuid.MustParse("5a2c9e00-9c1e-4bde-8b1c-2f6a7e9d3c10")

// ErrTimestampTooLong is returned by WriteTimestamp when the line exceeds
// the 25-character bound.
var ErrTimestampTooLong = errors.New("persist: timestamp line exceeds 25 characters")

// OriginalEdgeData is one record of the `.edges` artifact: the
// node-based via-node a turn passes through, the name id of the segment it
// leaves on, its turn instruction, and (for roundabout leaves) its exit
// number.
type OriginalEdgeData struct {
	ViaNode         uint32
	NameID          uint32
	TurnInstruction model.TurnInstruction
	ExitNumber      uint16
}

// FromEdgeBasedEdge builds the persisted OriginalEdgeData for an
// EdgeBasedEdge, given the name id of the edge-based node it departs
// from.
func FromEdgeBasedEdge(e model.EdgeBasedEdge, departureNameID uint32) OriginalEdgeData {
	return OriginalEdgeData{
		ViaNode:         e.ViaNode,
		NameID:          departureNameID,
		TurnInstruction: e.Turn,
		ExitNumber:      e.ExitNumber,
	}
}
