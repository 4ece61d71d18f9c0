// Package constants collects the physical constants used across the
// formula packages. SI units throughout.
package constants

const (
	// Gravity is standard gravitational acceleration at the Earth's
	// surface in m/s².
	Gravity = 9.80665

	// GravitationalConstant is Newton's constant G in m³/(kg·s²).
	GravitationalConstant = 6.67430e-11

	// MolarGasConstant is R in J/(mol·K).
	MolarGasConstant = 8.31446261815324

	// Boltzmann is k_B in J/K.
	Boltzmann = 1.380649e-23

	// Avogadro is N_A in 1/mol.
	Avogadro = 6.02214076e23

	// Planck is h in J·s.
	Planck = 6.62607015e-34

	// SpeedOfLight is c in m/s.
	SpeedOfLight = 299792458.0

	// StandardAtmosphere is one atmosphere in Pa.
	StandardAtmosphere = 101325.0

	// AbsoluteZeroCelsius is 0 K expressed in °C.
	AbsoluteZeroCelsius = -273.15

	// StandardTemperature is 0 °C in K, the T of classic STP.
	StandardTemperature = 273.15
)
