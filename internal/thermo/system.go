package thermo

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// System classifies a thermodynamic system by what it can exchange with
// its surroundings.
type System int

const (
	// OpenSystem exchanges both mass and energy.
	OpenSystem System = iota
	// ClosedSystem exchanges energy but not mass.
	ClosedSystem
	// IsolatedSystem exchanges nothing.
	IsolatedSystem
)

func (s System) String() string {
	switch s {
	case OpenSystem:
		return "open"
	case ClosedSystem:
		return "closed"
	case IsolatedSystem:
		return "isolated"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Exchange is the set of boundary transfers a system permits.
type Exchange struct {
	Mass   bool
	Heat   bool
	Work   bool
	Energy bool
}

// Permissions returns the fixed exchange lookup for the system type.
// An unknown tag is an internal-consistency error.
func (s System) Permissions() (Exchange, error) {
	switch s {
	case OpenSystem:
		return Exchange{Mass: true, Heat: true, Work: true, Energy: true}, nil
	case ClosedSystem:
		return Exchange{Heat: true, Work: true, Energy: true}, nil
	case IsolatedSystem:
		return Exchange{}, nil
	default:
		return Exchange{}, fmt.Errorf("%w: unknown system tag %d", quant.ErrOutOfRange, int(s))
	}
}

// Process classifies an idealized quasi-static process by the state
// variable it holds constant.
type Process int

const (
	// Isothermal holds temperature constant.
	Isothermal Process = iota
	// Isobaric holds pressure constant.
	Isobaric
	// Isochoric holds volume constant.
	Isochoric
	// Adiabatic exchanges no heat (Q = 0).
	Adiabatic
)

func (p Process) String() string {
	switch p {
	case Isothermal:
		return "isothermal"
	case Isobaric:
		return "isobaric"
	case Isochoric:
		return "isochoric"
	case Adiabatic:
		return "adiabatic"
	default:
		return fmt.Sprintf("Process(%d)", int(p))
	}
}

// State is a P-V-T snapshot of a gas.
type State struct {
	Pressure    float64
	Volume      float64
	Temperature float64
}

func (s State) validate() error {
	if err := quant.CheckNonNegative("pressure", s.Pressure); err != nil {
		return err
	}
	if err := quant.CheckPositive("volume", s.Volume); err != nil {
		return err
	}
	return quant.CheckNonNegative("temperature", s.Temperature)
}

// IsProcessConstraintSatisfied reports whether the two states satisfy
// the process's defining equality within tol. Adiabatic is defined by
// Q = 0, which is not visible from two P-V-T states, so it is reported
// as satisfied unconditionally; callers with heat values must check
// Q = 0 themselves.
func IsProcessConstraintSatisfied(p Process, before, after State, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	if err := before.validate(); err != nil {
		return false, err
	}
	if err := after.validate(); err != nil {
		return false, err
	}

	switch p {
	case Isothermal:
		return math.Abs(before.Temperature-after.Temperature) <= tol, nil
	case Isobaric:
		return math.Abs(before.Pressure-after.Pressure) <= tol, nil
	case Isochoric:
		return math.Abs(before.Volume-after.Volume) <= tol, nil
	case Adiabatic:
		return true, nil
	default:
		return false, fmt.Errorf("%w: unknown process tag %d", quant.ErrOutOfRange, int(p))
	}
}
