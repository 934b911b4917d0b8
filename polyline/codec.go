package polyline

import (
	"errors"
	"strings"

	"github.com/katalvlaran/chway/model"
)

// WireScale is the divisor from this module's 10^6 Coordinate precision down
// to the 10^5 precision the wire format was standardized at.
const WireScale = 10

// ErrTruncated is returned by Decode when the input ends mid-value (a
// continuation byte with no following terminator).
var ErrTruncated = errors.New("polyline: truncated encoding")

// Encode renders coords as a Google-polyline-v5-compatible string: each
// axis's delta from the previous point (first point is relative to the
// origin) is zigzag-encoded and emitted as 5-bit groups, LSB-first, with
// the continuation bit set on all but the last group and 63 added before
// casting to ASCII.
func Encode(coords []model.Coordinate) string {
	var b strings.Builder
	var prevLat, prevLon int32
	for _, c := range coords {
		lat := c.Lat / WireScale
		lon := c.Lon / WireScale
		encodeValue(&b, lat-prevLat)
		encodeValue(&b, lon-prevLon)
		prevLat, prevLon = lat, lon
	}
	return b.String()
}

func encodeValue(b *strings.Builder, delta int32) {
	zigzag := (delta << 1) ^ (delta >> 31)
	v := uint32(zigzag)
	for v >= 0x20 {
		b.WriteByte(byte((v&0x1f)|0x20) + 63)
		v >>= 5
	}
	b.WriteByte(byte(v) + 63)
}

// Decode parses an encoded string back into the ordered Coordinate sequence
// it was produced from, restoring the 10^6 storage precision.
func Decode(s string) ([]model.Coordinate, error) {
	var coords []model.Coordinate
	var lat, lon int32
	i := 0
	for i < len(s) {
		dLat, n, err := decodeValue(s[i:])
		if err != nil {
			return nil, err
		}
		i += n
		dLon, n, err := decodeValue(s[i:])
		if err != nil {
			return nil, err
		}
		i += n

		lat += dLat
		lon += dLon
		coords = append(coords, model.Coordinate{Lat: lat * WireScale, Lon: lon * WireScale})
	}
	return coords, nil
}

func decodeValue(s string) (value int32, consumed int, err error) {
	var result uint32
	var shift uint
	for {
		if consumed >= len(s) {
			return 0, 0, ErrTruncated
		}
		b := s[consumed] - 63
		consumed++
		result |= uint32(b&0x1f) << shift
		shift += 5
		if b&0x20 == 0 {
			break
		}
	}
	if result&1 != 0 {
		value = int32(^(result >> 1))
	} else {
		value = int32(result >> 1)
	}
	return value, consumed, nil
}

// JSONArray renders coords as a plain [][2]float64 of (lat, lon) decimal
// degrees, the unencoded geometry form the geojson compression selects.
func JSONArray(coords []model.Coordinate) [][2]float64 {
	out := make([][2]float64, len(coords))
	for i, c := range coords {
		lat, lon := c.AsFloat()
		out[i] = [2]float64{lat, lon}
	}
	return out
}
