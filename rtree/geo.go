package rtree

import (
	"math"

	"github.com/katalvlaran/chway/model"
)

// equirectXY projects a coordinate to local planar meters around a fixed
// reference latitude, a small-angle approximation accurate over the short
// distances a single road segment spans.
func equirectXY(c model.Coordinate, refLatRad float64) (x, y float64) {
	const earthRadius = 6371000.0
	lat, lon := c.AsFloat()
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	x = lonRad * math.Cos(refLatRad) * earthRadius
	y = latRad * earthRadius
	return x, y
}

// pointToSegment returns the perpendicular distance in meters from point p
// to the segment (a, b), the fractional position of the closest point along
// the segment in [0,1], and that closest point's coordinate.
func pointToSegment(p, a, b model.Coordinate) (distance float64, t float64, foot model.Coordinate) {
	refLat := func() float64 {
		lat, _ := p.AsFloat()
		return lat * math.Pi / 180
	}()

	px, py := equirectXY(p, refLat)
	ax, ay := equirectXY(a, refLat)
	bx, by := equirectXY(b, refLat)

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay), 0, a
	}

	t = ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	fx, fy := ax+t*dx, ay+t*dy
	distance = math.Hypot(px-fx, py-fy)

	footLat, footLon := a.AsFloat()
	bLat, bLon := b.AsFloat()
	foot = model.FromFloat(footLat+t*(bLat-footLat), footLon+t*(bLon-footLon))
	return distance, t, foot
}

// mbrDistance returns the minimum possible distance in meters from p to any
// point inside m, used as the best-first search heap key for internal and
// leaf-group nodes.
func mbrDistance(p model.Coordinate, m model.MBR) float64 {
	lat, lon := p.AsFloat()
	clampedLat := clampFixed(p.Lat, m.MinLat, m.MaxLat)
	clampedLon := clampFixed(p.Lon, m.MinLon, m.MaxLon)
	closest := model.Coordinate{Lat: clampedLat, Lon: clampedLon}
	closeLat, closeLon := closest.AsFloat()

	refLat := lat * math.Pi / 180
	const earthRadius = 6371000.0
	dy := (lat - closeLat) * math.Pi / 180 * earthRadius
	dx := (lon - closeLon) * math.Pi / 180 * math.Cos(refLat) * earthRadius
	return math.Hypot(dx, dy)
}

func clampFixed(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
