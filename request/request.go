package request

import "github.com/katalvlaran/chway/model"

// Command is the closed set of request descriptors the engine dispatches on.
type Command string

const (
	CommandViaRoute  Command = "viaroute"
	CommandNearest   Command = "nearest"
	CommandLocate    Command = "locate"
	CommandTimestamp Command = "timestamp"
	CommandHello     Command = "hello"
)

// Compression selects the geometry wire format of the `compression`
// request parameter.
type Compression string

const (
	CompressionPolyline Compression = "polyline"
	CompressionGeoJSON  Compression = "geojson"
)

// ViaRouteRequest is the `viaroute` command's parameters.
type ViaRouteRequest struct {
	Coordinates  []model.Coordinate
	Zoom         int // default 18
	Alternatives bool
	Geometry     bool
	Instructions bool
	Compression  Compression
	Checksum     uint32 // checkSum: caller's last-seen dataset checksum, for cache validation
}

// DefaultZoom is the default of the `zoom` request parameter.
const DefaultZoom = 18

// NewViaRouteRequest returns a ViaRouteRequest with defaults applied:
// zoom 18, polyline compression, no alternatives/geometry/instructions.
func NewViaRouteRequest(coordinates []model.Coordinate) ViaRouteRequest {
	return ViaRouteRequest{
		Coordinates: coordinates,
		Zoom:        DefaultZoom,
		Compression: CompressionPolyline,
	}
}

// RouteResponse is the `viaroute` response: a body status code plus the
// route payload when status indicates success. Geometry/Instructions are
// nil unless the request asked for them.
type RouteResponse struct {
	Status       int // 200 on success, 207 on NoRoute
	Message      string
	TotalWeight  int32
	Geometry     string // polyline-encoded, or "" if Compression == CompressionGeoJSON
	GeoJSON      [][2]float64
	Instructions []RouteInstruction
}

// RouteInstruction is one leg of turn-by-turn guidance: which edge-based
// node it departs, its turn code, and (for roundabout legs) its exit
// number. Natural-language rendering of these codes is explicitly out of
// scope; this struct carries only the structured data an
// external renderer would consume.
type RouteInstruction struct {
	EdgeBasedNodeID uint32
	NameID          uint32
	Turn            model.TurnInstruction
	ExitNumber      uint16
}

// NearestRequest is the `nearest` command's parameters: snap one
// coordinate to the graph and return its phantom node, without routing.
type NearestRequest struct {
	Coordinate model.Coordinate
	Zoom       int
}

// NearestResponse carries the resolved phantom node, or a NoRoute status if
// nothing was found within bounds.
type NearestResponse struct {
	Status  int
	Message string
	Phantom model.PhantomNode
}

// LocateRequest is the `locate` command's parameters: resolve which node
// is nearest a coordinate without constructing a phantom node (a cheaper,
// coarser probe than `nearest`).
type LocateRequest struct {
	Coordinate model.Coordinate
}

// LocateResponse carries the nearest NodeInfo.
type LocateResponse struct {
	Status  int
	Message string
	Node    model.NodeInfo
}

// TimestampResponse is the `timestamp` command's response: the dataset's
// persisted `.timestamp` line.
type TimestampResponse struct {
	Timestamp string
}

// HelloResponse is the `hello` command's response: a liveness/handshake
// probe carrying the dataset checksum the caller should present on
// subsequent requests.
type HelloResponse struct {
	Checksum  uint32
	DatasetID string
}
