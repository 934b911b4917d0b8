package rtree

import "math"

// hilbertOrder is the fixed curve order (bits per axis) used to quantize
// projected coordinates before computing a Hilbert index.
const hilbertOrder = 16

// mercatorY projects a latitude in decimal degrees onto the Mercator y
// axis before any curve ordering, so that Hilbert-curve locality matches
// on-the-ground proximity rather than raw-degree spacing.
func mercatorY(latDeg float64) float64 {
	return 180.0 / math.Pi * math.Log(math.Tan(math.Pi/4+latDeg*(math.Pi/180)/2))
}

// hilbertValue maps a (lat, lon) pair in decimal degrees to its index along
// a hilbertOrder-bit Hilbert curve, after projecting latitude through
// mercatorY so the curve's locality reflects true ground distance.
func hilbertValue(latDeg, lonDeg float64) uint64 {
	const scale = float64(int64(1) << hilbertOrder)

	y := mercatorY(latDeg)
	// Mercator y ranges roughly [-180, 180] for the valid latitude envelope;
	// normalize both axes into [0, 2^hilbertOrder).
	nx := normalize(lonDeg, -180, 180, scale)
	ny := normalize(y, -180, 180, scale)

	return xy2d(hilbertOrder, nx, ny)
}

func normalize(v, lo, hi, scale float64) uint32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	frac := (v - lo) / (hi - lo)
	q := uint32(frac * (scale - 1))
	return q
}

// xy2d converts (x, y) grid coordinates into a distance along a Hilbert
// curve of the given order, using the standard bit-rotation algorithm.
func xy2d(order uint, x, y uint32) uint64 {
	n := uint32(1) << order
	var d uint64
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		x, y = rot(n, x, y, rx, ry)
	}
	return d
}

func rot(n, x, y, rx, ry uint32) (uint32, uint32) {
	if ry == 0 {
		if rx == 1 {
			x = n - 1 - x
			y = n - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
