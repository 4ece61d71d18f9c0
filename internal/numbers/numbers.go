// Package numbers provides number-set predicates over float64 with an
// explicit epsilon tolerance.
package numbers

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// IsInteger reports whether x is within eps of an integer.
func IsInteger(x, eps float64) (bool, error) {
	if err := quant.CheckEpsilon(eps); err != nil {
		return false, err
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return false, err
	}
	return math.Abs(x-math.Round(x)) <= eps, nil
}

// IsNatural reports whether x is within eps of a non-negative integer.
func IsNatural(x, eps float64) (bool, error) {
	ok, err := IsInteger(x, eps)
	if err != nil || !ok {
		return false, err
	}
	return math.Round(x) >= 0, nil
}

// IsEven reports whether x is within eps of an even integer.
// Non-integers are neither even nor odd.
func IsEven(x, eps float64) (bool, error) {
	ok, err := IsInteger(x, eps)
	if err != nil || !ok {
		return false, err
	}
	return math.Mod(math.Abs(math.Round(x)), 2) == 0, nil
}

// IsOdd reports whether x is within eps of an odd integer.
func IsOdd(x, eps float64) (bool, error) {
	ok, err := IsInteger(x, eps)
	if err != nil || !ok {
		return false, err
	}
	return math.Mod(math.Abs(math.Round(x)), 2) == 1, nil
}

// IsBetween reports whether x lies in [lo−eps, hi+eps]. lo must not
// exceed hi.
func IsBetween(x, lo, hi, eps float64) (bool, error) {
	if err := quant.CheckEpsilon(eps); err != nil {
		return false, err
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return false, err
	}
	if lo > hi {
		return false, fmt.Errorf("%w: lo %g exceeds hi %g", quant.ErrOutOfRange, lo, hi)
	}
	return x >= lo-eps && x <= hi+eps, nil
}
