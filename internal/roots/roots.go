// Package roots provides real n-th roots: closed-form via math.Pow and
// an iterative Newton–Raphson variant with a bounded iteration count.
package roots

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

const (
	// DefaultNewtonTolerance stops the iteration once the step size
	// falls below it.
	DefaultNewtonTolerance = 1e-12

	// DefaultNewtonIterations caps the iteration regardless of
	// convergence.
	DefaultNewtonIterations = 64
)

// Root returns the real n-th root of x. A negative x with even n has no
// real root; Root returns NaN in that case (and for n < 1). Use
// SafeRoot for an error-returning contract.
func Root(x float64, n int) float64 {
	if n < 1 {
		return math.NaN()
	}
	if x < 0 {
		if n%2 == 0 {
			return math.NaN()
		}
		return -math.Pow(-x, 1/float64(n))
	}
	return math.Pow(x, 1/float64(n))
}

// SafeRoot returns the real n-th root of x, failing where Root would
// return NaN. SafeRoot(-8, 3) = -2.
func SafeRoot(x float64, n int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: root degree %d must be >= 1", quant.ErrOutOfRange, n)
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return 0, err
	}
	if x < 0 && n%2 == 0 {
		return 0, fmt.Errorf("%w: no real %d-th root of %g", quant.ErrUndefined, n, x)
	}
	return Root(x, n), nil
}

// NewtonRoot computes the real n-th root of x by Newton–Raphson,
// seeded at max(|x|,1). The iteration stops when the step magnitude
// drops below tol or after maxIter steps; in either case the current
// estimate is returned with no convergence error.
func NewtonRoot(x float64, n int, tol float64, maxIter int) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: root degree %d must be >= 1", quant.ErrOutOfRange, n)
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return 0, err
	}
	if err := quant.CheckTolerance(tol); err != nil {
		return 0, err
	}
	if maxIter < 1 {
		return 0, fmt.Errorf("%w: iteration cap %d must be >= 1", quant.ErrOutOfRange, maxIter)
	}
	if x < 0 && n%2 == 0 {
		return 0, fmt.Errorf("%w: no real %d-th root of %g", quant.ErrUndefined, n, x)
	}

	neg := x < 0
	if neg {
		x = -x
	}
	if x == 0 {
		return 0, nil
	}

	y := math.Max(x, 1)
	fn := float64(n)
	for i := 0; i < maxIter; i++ {
		// y_{k+1} = ((n−1)·y + x/y^(n−1)) / n
		next := ((fn-1)*y + x/math.Pow(y, fn-1)) / fn
		step := math.Abs(next - y)
		y = next
		if step < tol {
			break
		}
	}
	if neg {
		y = -y
	}
	return y, nil
}

// TryNewtonRoot is NewtonRoot with a boolean contract: ok is false on
// invalid arguments instead of an error.
func TryNewtonRoot(x float64, n int, tol float64, maxIter int) (float64, bool) {
	y, err := NewtonRoot(x, n, tol, maxIter)
	if err != nil {
		return 0, false
	}
	return y, true
}
