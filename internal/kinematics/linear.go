// Package kinematics provides the constant-acceleration equations of
// motion and their inverses for linear, circular, and projectile
// motion. Angles are radians, units SI.
package kinematics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// DisplacementAtConstantVelocity returns s = v·t.
func DisplacementAtConstantVelocity(velocity, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return velocity * time, nil
}

// Displacement returns s = v0·t + ½·a·t².
func Displacement(initialVelocity, acceleration, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return initialVelocity*time + 0.5*acceleration*time*time, nil
}

// FinalVelocity returns v = v0 + a·t.
func FinalVelocity(initialVelocity, acceleration, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return initialVelocity + acceleration*time, nil
}

// InitialVelocity returns v0 = v − a·t.
func InitialVelocity(finalVelocity, acceleration, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return finalVelocity - acceleration*time, nil
}

// FinalSpeedFromDisplacement solves v² = v0² + 2·a·s and returns the
// non-negative magnitude. A negative discriminant means no real speed
// reaches that displacement and fails rather than producing NaN.
func FinalSpeedFromDisplacement(initialVelocity, acceleration, displacement float64) (float64, error) {
	sq := initialVelocity*initialVelocity + 2*acceleration*displacement
	if sq < 0 {
		return 0, fmt.Errorf("%w: v² = %g is negative for v0=%g, a=%g, s=%g",
			quant.ErrUndefined, sq, initialVelocity, acceleration, displacement)
	}
	return math.Sqrt(sq), nil
}

// Acceleration returns a = (v − v0)/t.
func Acceleration(initialVelocity, finalVelocity, time float64) (float64, error) {
	if err := quant.CheckNonZero("time", time); err != nil {
		return 0, err
	}
	return (finalVelocity - initialVelocity) / time, nil
}

// TimeFromVelocityChange returns t = (v − v0)/a.
func TimeFromVelocityChange(initialVelocity, finalVelocity, acceleration float64) (float64, error) {
	if err := quant.CheckNonZero("acceleration", acceleration); err != nil {
		return 0, err
	}
	return (finalVelocity - initialVelocity) / acceleration, nil
}

// AverageVelocity returns s/t.
func AverageVelocity(displacement, time float64) (float64, error) {
	if err := quant.CheckNonZero("time", time); err != nil {
		return 0, err
	}
	return displacement / time, nil
}

// AverageVelocityFromBounds returns (v0 + v)/2, valid under constant
// acceleration.
func AverageVelocityFromBounds(initialVelocity, finalVelocity float64) float64 {
	return (initialVelocity + finalVelocity) / 2
}
