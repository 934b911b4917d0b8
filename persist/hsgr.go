package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/google/uuid"

	"github.com/katalvlaran/chway/chlog"
	"github.com/katalvlaran/chway/chstatus"
	"github.com/katalvlaran/chway/model"
	"github.com/katalvlaran/chway/staticgraph"
)

const (
	edgeFlagForward  byte = 1 << 0
	edgeFlagBackward byte = 1 << 1
	edgeFlagShortcut byte = 1 << 2
)

// packedEdgeSize is the packed 16-byte QueryEdge layout:
// target(4) + weight(4) + flags(1) + reserved(3) + middle-or-original(4).
const packedEdgeSize = 16

func packEdge(e model.QueryEdge) [packedEdgeSize]byte {
	var buf [packedEdgeSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], e.Target)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(e.Weight))

	var flags byte
	if e.Forward {
		flags |= edgeFlagForward
	}
	if e.Backward {
		flags |= edgeFlagBackward
	}
	if e.Shortcut {
		flags |= edgeFlagShortcut
	}
	buf[8] = flags
	// buf[9:12] reserved, left zero.

	if e.Shortcut {
		binary.LittleEndian.PutUint32(buf[12:16], e.Middle)
	} else {
		binary.LittleEndian.PutUint32(buf[12:16], e.OriginalEdge)
	}
	return buf
}

func unpackEdge(buf []byte) model.QueryEdge {
	var e model.QueryEdge
	e.Target = binary.LittleEndian.Uint32(buf[0:4])
	e.Weight = int32(binary.LittleEndian.Uint32(buf[4:8]))
	flags := buf[8]
	e.Forward = flags&edgeFlagForward != 0
	e.Backward = flags&edgeFlagBackward != 0
	e.Shortcut = flags&edgeFlagShortcut != 0
	v := binary.LittleEndian.Uint32(buf[12:16])
	if e.Shortcut {
		e.Middle = v
	} else {
		e.OriginalEdge = v
	}
	return e
}

// WriteHSGR writes the `.hsgr` artifact: UUID, checksum, then the CSR graph
// itself. The checksum is computed over the body (node/edge arrays)
// so it can be verified independently of the UUID check on read.
func WriteHSGR(w io.Writer, g *staticgraph.StaticGraph) error {
	var body bytes.Buffer

	if err := binary.Write(&body, binary.LittleEndian, g.NumNodes()); err != nil {
		return fmt.Errorf("persist: write hsgr node_count: %w", err)
	}
	for _, fo := range g.FirstOut() {
		if err := binary.Write(&body, binary.LittleEndian, fo); err != nil {
			return fmt.Errorf("persist: write hsgr node_array: %w", err)
		}
	}

	if err := binary.Write(&body, binary.LittleEndian, g.NumEdges()); err != nil {
		return fmt.Errorf("persist: write hsgr edge_count: %w", err)
	}
	for e := uint32(0); e < g.NumEdges(); e++ {
		packed := packEdge(g.Data(e))
		if _, err := body.Write(packed[:]); err != nil {
			return fmt.Errorf("persist: write hsgr edge_array: %w", err)
		}
	}

	checksum := crc32.ChecksumIEEE(body.Bytes())

	uuidBytes, err := DatasetUUID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("persist: marshal dataset uuid: %w", err)
	}
	if _, err := w.Write(uuidBytes); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, checksum); err != nil {
		return err
	}
	_, err = w.Write(body.Bytes())
	return err
}

// ReadHSGR reads back a StaticGraph written by WriteHSGR. When strict is
// true, a UUID mismatch returns chstatus.ErrUUIDMismatch; otherwise it is
// only logged — a version skew is a warning, not fatal. A checksum
// mismatch is always an error: it indicates the file itself is damaged,
// not a version skew.
func ReadHSGR(r io.Reader, strict bool) (*staticgraph.StaticGraph, error) {
	g, _, err := ReadHSGRWithChecksum(r, strict)
	return g, err
}

// ReadHSGRWithChecksum is ReadHSGR plus the body checksum, which the
// facade serves to `hello` callers for cache validation. The checksum is
// returned even when strict is
// false and the UUID mismatched, since it describes the body that was
// actually read, not the UUID check's outcome.
func ReadHSGRWithChecksum(r io.Reader, strict bool) (*staticgraph.StaticGraph, uint32, error) {
	var uuidBytes [16]byte
	if _, err := io.ReadFull(r, uuidBytes[:]); err != nil {
		return nil, 0, fmt.Errorf("persist: read hsgr uuid: %w", err)
	}
	var gotUUID uuid.UUID
	if err := gotUUID.UnmarshalBinary(uuidBytes[:]); err != nil {
		return nil, 0, fmt.Errorf("persist: parse hsgr uuid: %w", err)
	}

	var checksum uint32
	if err := binary.Read(r, binary.LittleEndian, &checksum); err != nil {
		return nil, 0, fmt.Errorf("persist: read hsgr checksum: %w", err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("persist: read hsgr body: %w", err)
	}
	if crc32.ChecksumIEEE(body) != checksum {
		return nil, 0, chstatus.ErrChecksumMismatch
	}

	if gotUUID != DatasetUUID {
		if strict {
			return nil, 0, chstatus.ErrUUIDMismatch
		}
		chlog.Default().Warn("persist: hsgr uuid mismatch", "got", gotUUID.String(), "want", DatasetUUID.String())
	}

	br := bytes.NewReader(body)
	var numNodes uint32
	if err := binary.Read(br, binary.LittleEndian, &numNodes); err != nil {
		return nil, 0, fmt.Errorf("persist: read hsgr node_count: %w", err)
	}
	firstOut := make([]uint32, numNodes+1)
	for i := range firstOut {
		if err := binary.Read(br, binary.LittleEndian, &firstOut[i]); err != nil {
			return nil, 0, fmt.Errorf("persist: read hsgr node_array: %w", err)
		}
	}

	var numEdges uint32
	if err := binary.Read(br, binary.LittleEndian, &numEdges); err != nil {
		return nil, 0, fmt.Errorf("persist: read hsgr edge_count: %w", err)
	}
	edges := make([]model.QueryEdge, numEdges)
	var packed [packedEdgeSize]byte
	for i := range edges {
		if _, err := io.ReadFull(br, packed[:]); err != nil {
			return nil, 0, fmt.Errorf("persist: read hsgr edge_array: %w", err)
		}
		edges[i] = unpackEdge(packed[:])
	}

	return staticgraph.FromCSR(firstOut, edges), checksum, nil
}
