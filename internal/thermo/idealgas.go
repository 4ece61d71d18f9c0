package thermo

import (
	"github.com/san-kum/physkit/internal/constants"
	"github.com/san-kum/physkit/internal/quant"
)

// PressureFromMoles returns P = n·R·T/V.
func PressureFromMoles(moles, temperature, volume float64) (float64, error) {
	if err := quant.CheckNonNegative("moles", moles); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("volume", volume); err != nil {
		return 0, err
	}
	return moles * constants.MolarGasConstant * temperature / volume, nil
}

// VolumeFromMoles returns V = n·R·T/P.
func VolumeFromMoles(moles, temperature, pressure float64) (float64, error) {
	if err := quant.CheckNonNegative("moles", moles); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("pressure", pressure); err != nil {
		return 0, err
	}
	return moles * constants.MolarGasConstant * temperature / pressure, nil
}

// TemperatureFromMoles returns T = P·V/(n·R).
func TemperatureFromMoles(moles, pressure, volume float64) (float64, error) {
	if err := quant.CheckPositive("moles", moles); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("pressure", pressure); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("volume", volume); err != nil {
		return 0, err
	}
	return pressure * volume / (moles * constants.MolarGasConstant), nil
}

// MolesFromState returns n = P·V/(R·T).
func MolesFromState(pressure, volume, temperature float64) (float64, error) {
	if err := quant.CheckNonNegative("pressure", pressure); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("volume", volume); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("temperature", temperature); err != nil {
		return 0, err
	}
	return pressure * volume / (constants.MolarGasConstant * temperature), nil
}

// SpecificGasConstantFromMolarMass returns R_specific = R/M for molar
// mass M in kg/mol.
func SpecificGasConstantFromMolarMass(molarMass float64) (float64, error) {
	if err := quant.CheckPositive("molarMass", molarMass); err != nil {
		return 0, err
	}
	return constants.MolarGasConstant / molarMass, nil
}

// PressureFromMass returns P = m·R_specific·T/V, the mass-based form of
// the ideal gas law.
func PressureFromMass(mass, specificGasConstant, temperature, volume float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("volume", volume); err != nil {
		return 0, err
	}
	return mass * specificGasConstant * temperature / volume, nil
}

// VolumeFromMass returns V = m·R_specific·T/P.
func VolumeFromMass(mass, specificGasConstant, temperature, pressure float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("pressure", pressure); err != nil {
		return 0, err
	}
	return mass * specificGasConstant * temperature / pressure, nil
}

// TemperatureFromMass returns T = P·V/(m·R_specific).
func TemperatureFromMass(mass, specificGasConstant, pressure, volume float64) (float64, error) {
	if err := quant.CheckPositive("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("pressure", pressure); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("volume", volume); err != nil {
		return 0, err
	}
	return pressure * volume / (mass * specificGasConstant), nil
}

// MassFromState returns m = P·V/(R_specific·T).
func MassFromState(pressure, volume, specificGasConstant, temperature float64) (float64, error) {
	if err := quant.CheckNonNegative("pressure", pressure); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("volume", volume); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("temperature", temperature); err != nil {
		return 0, err
	}
	return pressure * volume / (specificGasConstant * temperature), nil
}

// GasDensity returns ρ = P/(R_specific·T).
func GasDensity(pressure, specificGasConstant, temperature float64) (float64, error) {
	if err := quant.CheckNonNegative("pressure", pressure); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("temperature", temperature); err != nil {
		return 0, err
	}
	return pressure / (specificGasConstant * temperature), nil
}

// PressureFromGasDensity returns P = ρ·R_specific·T.
func PressureFromGasDensity(density, specificGasConstant, temperature float64) (float64, error) {
	if err := quant.CheckNonNegative("density", density); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("specificGasConstant", specificGasConstant); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("temperature", temperature); err != nil {
		return 0, err
	}
	return density * specificGasConstant * temperature, nil
}
