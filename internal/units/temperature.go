// Package units converts temperatures and pressures between their
// supported units. Every conversion routes through the canonical unit
// (Kelvin, Pascal) before re-deriving, so all paths stay mutually
// consistent. An unknown unit tag is an internal-consistency error.
package units

import (
	"errors"
	"fmt"

	"github.com/san-kum/physkit/internal/constants"
	"github.com/san-kum/physkit/internal/quant"
)

// ErrUnknownUnit indicates a unit tag outside the closed enumeration.
var ErrUnknownUnit = errors.New("units: unknown unit")

// ErrBelowAbsoluteZero indicates a temperature below 0 K.
var ErrBelowAbsoluteZero = errors.New("units: temperature below absolute zero")

// TemperatureUnit tags a temperature value.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case Kelvin:
		return "K"
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// ToKelvin converts v from the given unit to Kelvin. Temperatures below
// absolute zero fail.
func ToKelvin(v float64, from TemperatureUnit) (float64, error) {
	if err := quant.CheckFinite("temperature", v); err != nil {
		return 0, err
	}
	var k float64
	switch from {
	case Kelvin:
		k = v
	case Celsius:
		k = v - constants.AbsoluteZeroCelsius
	case Fahrenheit:
		k = (v-32)*5/9 - constants.AbsoluteZeroCelsius
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, from)
	}
	if k < 0 {
		return 0, fmt.Errorf("%w: %g %s is %g K", ErrBelowAbsoluteZero, v, from, k)
	}
	return k, nil
}

// ToCelsius converts v from the given unit to Celsius, via Kelvin.
func ToCelsius(v float64, from TemperatureUnit) (float64, error) {
	k, err := ToKelvin(v, from)
	if err != nil {
		return 0, err
	}
	return k + constants.AbsoluteZeroCelsius, nil
}

// ToFahrenheit converts v from the given unit to Fahrenheit, via
// Kelvin.
func ToFahrenheit(v float64, from TemperatureUnit) (float64, error) {
	c, err := ToCelsius(v, from)
	if err != nil {
		return 0, err
	}
	return c*9/5 + 32, nil
}

// KelvinToCelsius converts an absolute temperature to Celsius.
func KelvinToCelsius(k float64) (float64, error) {
	return ToCelsius(k, Kelvin)
}

// CelsiusToKelvin converts a Celsius temperature to Kelvin.
func CelsiusToKelvin(c float64) (float64, error) {
	return ToKelvin(c, Celsius)
}

// FahrenheitToKelvin converts a Fahrenheit temperature to Kelvin.
func FahrenheitToKelvin(f float64) (float64, error) {
	return ToKelvin(f, Fahrenheit)
}

// KelvinToFahrenheit converts an absolute temperature to Fahrenheit.
func KelvinToFahrenheit(k float64) (float64, error) {
	return ToFahrenheit(k, Kelvin)
}
