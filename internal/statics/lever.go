package statics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Moment returns M = F·d for a force acting perpendicular to a lever
// arm of length d ≥ 0.
func Moment(force, leverArm float64) (float64, error) {
	if err := quant.CheckNonNegative("leverArm", leverArm); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("force", force); err != nil {
		return 0, err
	}
	return force * leverArm, nil
}

// MomentAtAngle returns M = F·d·sin θ where θ is the angle between the
// force and the lever arm, in radians.
func MomentAtAngle(force, leverArm, theta float64) (float64, error) {
	if err := quant.CheckFinite("theta", theta); err != nil {
		return 0, err
	}
	m, err := Moment(force, leverArm)
	if err != nil {
		return 0, err
	}
	return m * math.Sin(theta), nil
}

// LeverForce solves F1·d1 = F2·d2 for F2. The opposing lever arm d2
// must be non-zero.
func LeverForce(force1, arm1, arm2 float64) (float64, error) {
	if err := quant.CheckFinite("force1", force1); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("arm1", arm1); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("arm2", arm2); err != nil {
		return 0, err
	}
	if err := quant.CheckNonZero("arm2", arm2); err != nil {
		return 0, err
	}
	return force1 * arm1 / arm2, nil
}

// LeverArm solves F1·d1 = F2·d2 for d2. The opposing force F2 must be
// non-zero.
func LeverArm(force1, arm1, force2 float64) (float64, error) {
	if err := quant.CheckFinite("force1", force1); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("arm1", arm1); err != nil {
		return 0, err
	}
	if err := quant.CheckNonZero("force2", force2); err != nil {
		return 0, err
	}
	return force1 * arm1 / force2, nil
}

// IsLeverBalanced reports whether F1·d1 and F2·d2 agree within tol.
func IsLeverBalanced(force1, arm1, force2, arm2, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	m1, err := Moment(force1, arm1)
	if err != nil {
		return false, err
	}
	m2, err := Moment(force2, arm2)
	if err != nil {
		return false, err
	}
	return math.Abs(m1-m2) <= tol, nil
}
