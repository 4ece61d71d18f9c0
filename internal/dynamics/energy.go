package dynamics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Work returns W = F·d for a force along the displacement.
func Work(force, displacement float64) (float64, error) {
	if err := quant.CheckFinite("force", force); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("displacement", displacement); err != nil {
		return 0, err
	}
	return force * displacement, nil
}

// WorkAtAngle returns W = F·d·cos θ for a force at angle θ to the
// displacement.
func WorkAtAngle(force, displacement, theta float64) (float64, error) {
	w, err := Work(force, displacement)
	if err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("theta", theta); err != nil {
		return 0, err
	}
	return w * math.Cos(theta), nil
}

// KineticEnergy returns ½·m·v².
func KineticEnergy(mass, velocity float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("velocity", velocity); err != nil {
		return 0, err
	}
	return 0.5 * mass * velocity * velocity, nil
}

// RotationalKineticEnergy returns ½·I·ω².
func RotationalKineticEnergy(momentOfInertia, angularVelocity float64) (float64, error) {
	if err := quant.CheckNonNegative("momentOfInertia", momentOfInertia); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("angularVelocity", angularVelocity); err != nil {
		return 0, err
	}
	return 0.5 * momentOfInertia * angularVelocity * angularVelocity, nil
}

// PotentialEnergy returns m·g·h.
func PotentialEnergy(mass, gravity, height float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("gravity", gravity); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("height", height); err != nil {
		return 0, err
	}
	return mass * gravity * height, nil
}

// ElasticPotentialEnergy returns ½·k·x².
func ElasticPotentialEnergy(stiffness, displacement float64) (float64, error) {
	if err := quant.CheckNonNegative("stiffness", stiffness); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("displacement", displacement); err != nil {
		return 0, err
	}
	return 0.5 * stiffness * displacement * displacement, nil
}

// Power returns P = W/t.
func Power(work, time float64) (float64, error) {
	if err := quant.CheckFinite("work", work); err != nil {
		return 0, err
	}
	if err := quant.CheckNonZero("time", time); err != nil {
		return 0, err
	}
	return work / time, nil
}
