package angle

import "math"

const radiansPerDegree = math.Pi / 180

// Normalize maps an angle in degrees of any magnitude into (-180, 180].
func Normalize(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// Delta returns the minimal signed rotation (in (-180, 180]) that takes
// heading "from" to heading "to".  Positive deltas are anticlockwise.
func Delta(from, to float64) float64 {
	return Normalize(to - from)
}

// ToTarget returns the world-frame heading (degrees, 0 = +x axis,
// anticlockwise positive) of the displacement (dx, dy).  Returns 0 for a
// zero displacement.
func ToTarget(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx) / radiansPerDegree
}

// Radians converts degrees to radians.
func Radians(d float64) float64 {
	return d * radiansPerDegree
}
