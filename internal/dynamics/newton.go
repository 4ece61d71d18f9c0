// Package dynamics provides Newtonian force relations, spring and drag
// forces, circular dynamics, momentum, and work-energy formulas.
// Angles are radians, units SI.
package dynamics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Force returns F = m·a.
func Force(mass, acceleration float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("acceleration", acceleration); err != nil {
		return 0, err
	}
	return mass * acceleration, nil
}

// AccelerationFromForce returns a = F/m for m > 0.
func AccelerationFromForce(force, mass float64) (float64, error) {
	if err := quant.CheckFinite("force", force); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("mass", mass); err != nil {
		return 0, err
	}
	return force / mass, nil
}

// Weight returns m·g.
func Weight(mass, gravity float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("gravity", gravity); err != nil {
		return 0, err
	}
	return mass * gravity, nil
}

// NormalForceOnIncline returns N = m·g·cos θ for an incline angle in
// [0, π/2].
func NormalForceOnIncline(mass, inclineAngle, gravity float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("gravity", gravity); err != nil {
		return 0, err
	}
	if inclineAngle < 0 || inclineAngle > math.Pi/2 {
		return 0, fmt.Errorf("%w: incline angle %g outside [0, π/2]", quant.ErrOutOfRange, inclineAngle)
	}
	return mass * gravity * math.Cos(inclineAngle), nil
}

// KineticFriction returns μ·N.
func KineticFriction(coefficient, normalForce float64) (float64, error) {
	if err := quant.CheckNonNegative("coefficient", coefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("normalForce", normalForce); err != nil {
		return 0, err
	}
	return coefficient * normalForce, nil
}

// InclineAcceleration combines gravity, an applied force along the
// slope (downslope positive), and friction into one acceleration. The
// friction term opposes the net driving force and pins the body when it
// dominates.
func InclineAcceleration(mass, inclineAngle, coefficient, appliedForce, gravity float64) (float64, error) {
	if err := quant.CheckPositive("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("coefficient", coefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("appliedForce", appliedForce); err != nil {
		return 0, err
	}
	normal, err := NormalForceOnIncline(mass, inclineAngle, gravity)
	if err != nil {
		return 0, err
	}

	driving := mass*gravity*math.Sin(inclineAngle) + appliedForce
	friction := coefficient * normal
	if math.Abs(driving) <= friction {
		return 0, nil
	}
	if driving > 0 {
		return (driving - friction) / mass, nil
	}
	return (driving + friction) / mass, nil
}
