package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperatureConversions(t *testing.T) {
	k, err := CelsiusToKelvin(0)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, k, 1e-12)

	f, err := ToFahrenheit(100, Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, f, 1e-9)

	k, err = FahrenheitToKelvin(32)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, k, 1e-9)

	c, err := ToCelsius(0, Kelvin)
	require.NoError(t, err)
	assert.InDelta(t, -273.15, c, 1e-12)
}

func TestTemperatureRoundTrip(t *testing.T) {
	for _, k := range []float64{0, 1, 273.15, 300, 5000} {
		c, err := KelvinToCelsius(k)
		require.NoError(t, err)
		back, err := CelsiusToKelvin(c)
		require.NoError(t, err)
		assert.InDelta(t, k, back, 1e-9, "k=%g", k)
	}
}

func TestBelowAbsoluteZero(t *testing.T) {
	_, err := CelsiusToKelvin(-300)
	assert.ErrorIs(t, err, ErrBelowAbsoluteZero)

	_, err = ToKelvin(-1, Kelvin)
	assert.Error(t, err)

	_, err = FahrenheitToKelvin(-500)
	assert.ErrorIs(t, err, ErrBelowAbsoluteZero)
}

func TestUnknownTemperatureUnit(t *testing.T) {
	_, err := ToKelvin(1, TemperatureUnit(12))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestPressureConversions(t *testing.T) {
	p, err := ToPascal(1, Atmosphere)
	require.NoError(t, err)
	assert.InDelta(t, 101325.0, p, 1e-9)

	b, err := ToBar(101325, Pascal)
	require.NoError(t, err)
	assert.InDelta(t, 1.01325, b, 1e-12)

	mm, err := ToMillimeterOfMercury(1, Atmosphere)
	require.NoError(t, err)
	assert.InDelta(t, 760.0, mm, 1e-3)

	atm, err := ToAtmosphere(760, MillimeterOfMercury)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, atm, 1e-5)

	_, err = ToPascal(-1, Bar)
	assert.Error(t, err)
	_, err = ToPascal(1, PressureUnit(7))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}
