package statics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// MaxStaticFriction returns μ·N, the largest tangential force static
// friction can resist.
func MaxStaticFriction(coefficient, normalForce float64) (float64, error) {
	if err := quant.CheckNonNegative("coefficient", coefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("normalForce", normalForce); err != nil {
		return 0, err
	}
	return coefficient * normalForce, nil
}

// StaticFrictionForce returns the friction force responding to an
// applied tangential force: magnitude min(|applied|, μ·N), direction
// always opposing the applied force. Below the slip threshold it
// cancels the applied force exactly.
func StaticFrictionForce(appliedForce, coefficient, normalForce float64) (float64, error) {
	if err := quant.CheckFinite("appliedForce", appliedForce); err != nil {
		return 0, err
	}
	limit, err := MaxStaticFriction(coefficient, normalForce)
	if err != nil {
		return 0, err
	}
	mag := math.Min(math.Abs(appliedForce), limit)
	if appliedForce > 0 {
		return -mag, nil
	}
	return mag, nil
}

// HoldsStatic reports whether static friction can resist the applied
// tangential force, i.e. |applied| ≤ μ·N.
func HoldsStatic(appliedForce, coefficient, normalForce float64) (bool, error) {
	if err := quant.CheckFinite("appliedForce", appliedForce); err != nil {
		return false, err
	}
	limit, err := MaxStaticFriction(coefficient, normalForce)
	if err != nil {
		return false, err
	}
	return math.Abs(appliedForce) <= limit, nil
}
