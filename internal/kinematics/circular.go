package kinematics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// AngularDisplacement returns φ = ω0·t + ½·α·t².
func AngularDisplacement(initialAngularVelocity, angularAcceleration, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return initialAngularVelocity*time + 0.5*angularAcceleration*time*time, nil
}

// FinalAngularVelocity returns ω = ω0 + α·t.
func FinalAngularVelocity(initialAngularVelocity, angularAcceleration, time float64) (float64, error) {
	if err := quant.CheckNonNegative("time", time); err != nil {
		return 0, err
	}
	return initialAngularVelocity + angularAcceleration*time, nil
}

// AngularAcceleration returns α = (ω − ω0)/t.
func AngularAcceleration(initialAngularVelocity, finalAngularVelocity, time float64) (float64, error) {
	if err := quant.CheckNonZero("time", time); err != nil {
		return 0, err
	}
	return (finalAngularVelocity - initialAngularVelocity) / time, nil
}

// Period returns T = 2π/|ω|, always positive regardless of spin
// direction.
func Period(angularVelocity float64) (float64, error) {
	if err := quant.CheckNonZero("angularVelocity", angularVelocity); err != nil {
		return 0, err
	}
	return 2 * math.Pi / math.Abs(angularVelocity), nil
}

// Frequency returns f = 1/|T|, always positive.
func Frequency(period float64) (float64, error) {
	if err := quant.CheckNonZero("period", period); err != nil {
		return 0, err
	}
	return 1 / math.Abs(period), nil
}

// FrequencyFromAngularVelocity returns f = |ω|/2π.
func FrequencyFromAngularVelocity(angularVelocity float64) (float64, error) {
	t, err := Period(angularVelocity)
	if err != nil {
		return 0, err
	}
	return Frequency(t)
}

// AngularVelocityFromFrequency returns ω = 2π·f.
func AngularVelocityFromFrequency(frequency float64) (float64, error) {
	if err := quant.CheckFinite("frequency", frequency); err != nil {
		return 0, err
	}
	return 2 * math.Pi * frequency, nil
}

// TangentialSpeed returns v = ω·r for radius r ≥ 0. The sign follows ω.
func TangentialSpeed(angularVelocity, radius float64) (float64, error) {
	if err := quant.CheckNonNegative("radius", radius); err != nil {
		return 0, err
	}
	return angularVelocity * radius, nil
}

// CentripetalAcceleration returns a = v²/r for radius r > 0.
func CentripetalAcceleration(speed, radius float64) (float64, error) {
	if err := quant.CheckPositive("radius", radius); err != nil {
		return 0, err
	}
	return speed * speed / radius, nil
}
