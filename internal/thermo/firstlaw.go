// Package thermo provides first-law bookkeeping, the ideal gas law with
// all of its rearrangements, state-variable helpers, and open/closed/
// isolated system and process classification. Temperatures are Kelvin,
// pressures Pascal.
package thermo

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// InternalEnergyChange returns ΔU = Q − W (heat added minus work done
// by the system).
func InternalEnergyChange(heat, work float64) (float64, error) {
	if err := quant.CheckFinite("heat", heat); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("work", work); err != nil {
		return 0, err
	}
	return heat - work, nil
}

// HeatAdded returns Q = ΔU + W.
func HeatAdded(internalEnergyChange, work float64) (float64, error) {
	if err := quant.CheckFinite("internalEnergyChange", internalEnergyChange); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("work", work); err != nil {
		return 0, err
	}
	return internalEnergyChange + work, nil
}

// WorkDone returns W = Q − ΔU.
func WorkDone(heat, internalEnergyChange float64) (float64, error) {
	if err := quant.CheckFinite("heat", heat); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("internalEnergyChange", internalEnergyChange); err != nil {
		return 0, err
	}
	return heat - internalEnergyChange, nil
}

// IsEnergyBalanced reports whether the first-law residual
// ΔU − (Q − W) vanishes within tol.
func IsEnergyBalanced(internalEnergyChange, heat, work, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	du, err := InternalEnergyChange(heat, work)
	if err != nil {
		return false, err
	}
	if err := quant.CheckFinite("internalEnergyChange", internalEnergyChange); err != nil {
		return false, err
	}
	return math.Abs(internalEnergyChange-du) <= tol, nil
}
