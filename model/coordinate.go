package model

import (
	"errors"
	"math"
)

// CoordinatePrecision is the fixed-point scale factor: one unit of Lat/Lon
// represents 1/CoordinatePrecision of a decimal degree (six decimal places).
const CoordinatePrecision = 1000000

// Sentinel errors for coordinate validation.
var (
	// ErrLatOutOfRange indicates a latitude outside [-90*P, +90*P].
	ErrLatOutOfRange = errors.New("model: latitude out of range")

	// ErrLonOutOfRange indicates a longitude outside [-180*P, +180*P].
	ErrLonOutOfRange = errors.New("model: longitude out of range")
)

// Coordinate is a fixed-point (lat, lon) pair, stored as six-decimal-degree
// integers (precision CoordinatePrecision). Valid ranges are
// lat ∈ [-90*P, +90*P] and lon ∈ [-180*P, +180*P].
type Coordinate struct {
	Lat int32
	Lon int32
}

// SentinelCoordinate is used to mark "no coordinate" (e.g. an unset
// EdgeBasedNode endpoint during construction). It must never appear on a
// fully built EdgeBasedNode.
var SentinelCoordinate = Coordinate{Lat: math.MaxInt32, Lon: math.MaxInt32}

// IsSentinel reports whether c is the sentinel "unset" coordinate.
func (c Coordinate) IsSentinel() bool {
	return c == SentinelCoordinate
}

// Validate checks c against the legal coordinate envelope. The boundary is
// inclusive: exactly (90*P, 180*P) is accepted, (90*P+1, anything) is not.
func (c Coordinate) Validate() error {
	const maxLat = 90 * CoordinatePrecision
	const maxLon = 180 * CoordinatePrecision
	if c.Lat < -maxLat || c.Lat > maxLat {
		return ErrLatOutOfRange
	}
	if c.Lon < -maxLon || c.Lon > maxLon {
		return ErrLonOutOfRange
	}
	return nil
}

// AsFloat returns the coordinate as decimal degrees.
func (c Coordinate) AsFloat() (lat, lon float64) {
	return float64(c.Lat) / CoordinatePrecision, float64(c.Lon) / CoordinatePrecision
}

// FromFloat builds a Coordinate from decimal degrees, rounding to the
// nearest fixed-point unit.
func FromFloat(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: int32(math.Round(lat * CoordinatePrecision)),
		Lon: int32(math.Round(lon * CoordinatePrecision)),
	}
}
