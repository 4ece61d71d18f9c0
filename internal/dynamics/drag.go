package dynamics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// LinearDrag returns F = −b·v, drag proportional to speed.
func LinearDrag(coefficient, velocity float64) (float64, error) {
	if err := quant.CheckNonNegative("coefficient", coefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("velocity", velocity); err != nil {
		return 0, err
	}
	return -coefficient * velocity, nil
}

// QuadraticDrag returns F = −k·v·|v|, drag proportional to the square
// of speed while still opposing the motion.
func QuadraticDrag(coefficient, velocity float64) (float64, error) {
	if err := quant.CheckNonNegative("coefficient", coefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("velocity", velocity); err != nil {
		return 0, err
	}
	return -coefficient * velocity * math.Abs(velocity), nil
}

// DragCoefficient returns k = ½·ρ·Cd·A for use with QuadraticDrag.
func DragCoefficient(fluidDensity, dragCoefficient, crossSection float64) (float64, error) {
	if err := quant.CheckNonNegative("fluidDensity", fluidDensity); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("dragCoefficient", dragCoefficient); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("crossSection", crossSection); err != nil {
		return 0, err
	}
	return 0.5 * fluidDensity * dragCoefficient * crossSection, nil
}

// TerminalVelocity returns √(m·g/k) where k = ½·ρ·Cd·A, the speed at
// which quadratic drag balances weight.
func TerminalVelocity(mass, gravity, quadraticCoefficient float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("gravity", gravity); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("quadraticCoefficient", quadraticCoefficient); err != nil {
		return 0, err
	}
	return math.Sqrt(mass * gravity / quadraticCoefficient), nil
}
