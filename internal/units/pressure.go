package units

import (
	"fmt"

	"github.com/san-kum/physkit/internal/constants"
	"github.com/san-kum/physkit/internal/quant"
)

// PressureUnit tags a pressure value.
type PressureUnit int

const (
	Pascal PressureUnit = iota
	Bar
	Atmosphere
	MillimeterOfMercury
)

func (u PressureUnit) String() string {
	switch u {
	case Pascal:
		return "Pa"
	case Bar:
		return "bar"
	case Atmosphere:
		return "atm"
	case MillimeterOfMercury:
		return "mmHg"
	default:
		return fmt.Sprintf("PressureUnit(%d)", int(u))
	}
}

const (
	pascalsPerBar  = 1e5
	pascalsPerMmHg = 133.322387415
)

// ToPascal converts an absolute pressure to Pascal. Negative absolute
// pressures fail.
func ToPascal(v float64, from PressureUnit) (float64, error) {
	if err := quant.CheckNonNegative("pressure", v); err != nil {
		return 0, err
	}
	switch from {
	case Pascal:
		return v, nil
	case Bar:
		return v * pascalsPerBar, nil
	case Atmosphere:
		return v * constants.StandardAtmosphere, nil
	case MillimeterOfMercury:
		return v * pascalsPerMmHg, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnit, from)
	}
}

// ToBar converts an absolute pressure to bar, via Pascal.
func ToBar(v float64, from PressureUnit) (float64, error) {
	p, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return p / pascalsPerBar, nil
}

// ToAtmosphere converts an absolute pressure to atmospheres, via
// Pascal.
func ToAtmosphere(v float64, from PressureUnit) (float64, error) {
	p, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return p / constants.StandardAtmosphere, nil
}

// ToMillimeterOfMercury converts an absolute pressure to mmHg, via
// Pascal.
func ToMillimeterOfMercury(v float64, from PressureUnit) (float64, error) {
	p, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return p / pascalsPerMmHg, nil
}
