// Package angle provides degree/radian conversion and circular
// arithmetic helpers. Wrapping keeps degrees in [0,360) and radians in
// [0,2π); signed differences are the shortest way around the circle.
package angle

import "math"

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// WrapDeg normalizes deg into [0,360). Idempotent.
func WrapDeg(deg float64) float64 {
	d := math.Mod(deg, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// WrapRad normalizes rad into [0,2π). Idempotent.
func WrapRad(rad float64) float64 {
	r := math.Mod(rad, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// ShortestDiffDeg returns the signed difference to−from, taken the
// short way around the circle, in (−180,180].
func ShortestDiffDeg(from, to float64) float64 {
	d := math.Mod(to-from, 360.0)
	if d <= -180.0 {
		d += 360.0
	} else if d > 180.0 {
		d -= 360.0
	}
	return d
}

// ShortestDiffRad returns the signed difference to−from in (−π,π].
func ShortestDiffRad(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d <= -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// LerpDeg interpolates from a toward b along the shortest arc.
// t=0 yields WrapDeg(a), t=1 yields WrapDeg(b); t outside [0,1]
// extrapolates along the same arc.
func LerpDeg(a, b, t float64) float64 {
	return WrapDeg(a + ShortestDiffDeg(a, b)*t)
}

// LerpRad interpolates from a toward b along the shortest arc in
// radians.
func LerpRad(a, b, t float64) float64 {
	return WrapRad(a + ShortestDiffRad(a, b)*t)
}

// InRangeDeg reports whether deg lies on the circular span swept from
// `from` to `to` in the direction of increasing angle. Spans that cross
// 0° work as expected: InRangeDeg(10, 350, 30) is true. When
// WrapDeg(from) == WrapDeg(to) the span is a single point.
func InRangeDeg(deg, from, to float64) bool {
	span := WrapDeg(to - from)
	off := WrapDeg(deg - from)
	if span == 0 {
		return off == 0
	}
	return off <= span
}

// InRangeRad is InRangeDeg over radians.
func InRangeRad(rad, from, to float64) bool {
	span := WrapRad(to - from)
	off := WrapRad(rad - from)
	if span == 0 {
		return off == 0
	}
	return off <= span
}
