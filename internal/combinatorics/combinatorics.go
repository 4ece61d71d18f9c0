// Package combinatorics provides factorials, permutations, and
// combinations with hard input bounds keeping every exact result inside
// int64 range. Out-of-range inputs fail instead of overflowing.
package combinatorics

import (
	"fmt"

	"github.com/san-kum/physkit/internal/quant"
)

const (
	// MaxFactorial is the largest n for which n! fits in an int64.
	MaxFactorial = 20

	// MaxDoubleFactorial is the largest n for which n!! fits in an int64.
	MaxDoubleFactorial = 33
)

// Factorial returns n! for 0 <= n <= 20.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative %d", quant.ErrOutOfRange, n)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: factorial of %d exceeds int64 (max %d)", quant.ErrOverflow, n, MaxFactorial)
	}
	r := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		r *= i
	}
	return r, nil
}

// DoubleFactorial returns n!! = n·(n−2)·(n−4)⋯ for 0 <= n <= 33.
// 0!! and 1!! are 1.
func DoubleFactorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: double factorial of negative %d", quant.ErrOutOfRange, n)
	}
	if n > MaxDoubleFactorial {
		return 0, fmt.Errorf("%w: double factorial of %d exceeds int64 (max %d)", quant.ErrOverflow, n, MaxDoubleFactorial)
	}
	r := int64(1)
	for i := int64(n); i > 1; i -= 2 {
		r *= i
	}
	return r, nil
}

// Permutation returns nPk = n!/(n−k)! for 0 <= k <= n <= 20.
func Permutation(n, k int) (int64, error) {
	if err := checkPair(n, k); err != nil {
		return 0, err
	}
	r := int64(1)
	for i := int64(n - k + 1); i <= int64(n); i++ {
		r *= i
	}
	return r, nil
}

// Combination returns nCk = n!/(k!(n−k)!) for 0 <= k <= n <= 20.
func Combination(n, k int) (int64, error) {
	if err := checkPair(n, k); err != nil {
		return 0, err
	}
	// nCk == nC(n−k); use the smaller k for fewer multiplications.
	if k > n-k {
		k = n - k
	}
	r := int64(1)
	for i := 1; i <= k; i++ {
		r = r * int64(n-k+i) / int64(i)
	}
	return r, nil
}

func checkPair(n, k int) error {
	if n < 0 || k < 0 {
		return fmt.Errorf("%w: n=%d, k=%d must be non-negative", quant.ErrOutOfRange, n, k)
	}
	if k > n {
		return fmt.Errorf("%w: k=%d exceeds n=%d", quant.ErrOutOfRange, k, n)
	}
	if n > MaxFactorial {
		return fmt.Errorf("%w: n=%d exceeds int64-safe bound %d", quant.ErrOverflow, n, MaxFactorial)
	}
	return nil
}
