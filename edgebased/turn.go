package edgebased

import (
	"math"

	"github.com/katalvlaran/chway/model"
)

// bearing returns the compass bearing in degrees [0,360) from a to b, using
// the same equirectangular approximation phantom/rtree use for short
// road-segment distances — accurate enough for turn-angle classification,
// which only cares about relative bearing change.
func bearing(a, b model.Coordinate) float64 {
	aLat, aLon := a.AsFloat()
	bLat, bLon := b.AsFloat()
	dy := bLat - aLat
	dx := (bLon - aLon) * math.Cos((aLat+bLat)/2*math.Pi/180)
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// turnAngle returns the signed bearing change at v, in (-180, 180], turning
// onto (v,w) from (u,v). Positive is a right turn, negative a left turn.
func turnAngle(u, v, w model.Coordinate) float64 {
	in := bearing(u, v)
	out := bearing(v, w)
	angle := out - in
	for angle > 180 {
		angle -= 360
	}
	for angle <= -180 {
		angle += 360
	}
	return angle
}

// classifyByAngle buckets a signed turn angle by the 23/67/113 degree
// thresholds. The near-straight band maps to TurnStraight; the caller
// upgrades it to TurnContinue when the road name is unchanged.
func classifyByAngle(angle float64) model.TurnInstruction {
	switch {
	case angle >= -23 && angle <= 23:
		return model.TurnStraight
	case angle > 23 && angle <= 67:
		return model.TurnSlightRight
	case angle > 67 && angle <= 113:
		return model.TurnRight
	case angle > 113:
		return model.TurnSharpRight
	case angle < -23 && angle >= -67:
		return model.TurnSlightLeft
	case angle < -67 && angle >= -113:
		return model.TurnLeft
	default:
		return model.TurnSharpLeft
	}
}
