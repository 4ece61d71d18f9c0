package thermo

import (
	"github.com/san-kum/physkit/internal/quant"
)

// Density returns ρ = m/V.
func Density(mass, volume float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("volume", volume); err != nil {
		return 0, err
	}
	return mass / volume, nil
}

// SpecificVolume returns v = V/m, the reciprocal of density.
func SpecificVolume(volume, mass float64) (float64, error) {
	if err := quant.CheckNonNegative("volume", volume); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("mass", mass); err != nil {
		return 0, err
	}
	return volume / mass, nil
}

// SpecificFromTotal converts any extensive quantity to its per-mass
// (specific) form.
func SpecificFromTotal(total, mass float64) (float64, error) {
	if err := quant.CheckFinite("total", total); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("mass", mass); err != nil {
		return 0, err
	}
	return total / mass, nil
}

// TotalFromSpecific converts a per-mass quantity back to its extensive
// form.
func TotalFromSpecific(specific, mass float64) (float64, error) {
	if err := quant.CheckFinite("specific", specific); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	return specific * mass, nil
}
