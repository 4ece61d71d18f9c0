package quant

import (
	"fmt"
	"math"
)

// CheckFinite fails when v is NaN or infinite.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %g", ErrNotFinite, name, v)
	}
	return nil
}

// CheckNonNegative fails when v is negative or non-finite.
func CheckNonNegative(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %g", ErrNegative, name, v)
	}
	return nil
}

// CheckPositive fails when v is zero, negative, or non-finite.
func CheckPositive(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %g", ErrNonPositive, name, v)
	}
	return nil
}

// CheckNonZero fails when a quantity about to be used as a divisor is
// zero or non-finite.
func CheckNonZero(name string, v float64) error {
	if err := CheckFinite(name, v); err != nil {
		return err
	}
	if v == 0 {
		return fmt.Errorf("%w: %s", ErrZeroDivisor, name)
	}
	return nil
}

// CheckTolerance fails unless tol is finite and strictly positive.
func CheckTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return fmt.Errorf("%w: must be finite and > 0, got %g", ErrTolerance, tol)
	}
	return nil
}

// CheckEpsilon fails unless eps is finite and non-negative. Predicates
// accept a zero epsilon for exact comparison.
func CheckEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: must be finite and >= 0, got %g", ErrTolerance, eps)
	}
	return nil
}

// CheckNonEmpty fails when a slice argument has no elements.
func CheckNonEmpty(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyInput, name)
	}
	return nil
}

// CheckPaired fails unless the two slices are non-empty and of equal
// length.
func CheckPaired(aName string, aLen int, bName string, bLen int) error {
	if err := CheckNonEmpty(aName, aLen); err != nil {
		return err
	}
	if aLen != bLen {
		return fmt.Errorf("%w: %s has %d elements, %s has %d", ErrLengthMismatch, aName, aLen, bName, bLen)
	}
	return nil
}
