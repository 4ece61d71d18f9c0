package quant

import "errors"

// Validation errors shared by all formula packages.
var (
	// ErrEmptyInput indicates a slice argument with no elements where at
	// least one is required.
	ErrEmptyInput = errors.New("quant: empty input")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("quant: length mismatch")

	// ErrNegative indicates a negative value for a quantity that is
	// physically non-negative (mass, radius, coefficient).
	ErrNegative = errors.New("quant: negative value")

	// ErrNonPositive indicates a zero or negative value where a strictly
	// positive one is required.
	ErrNonPositive = errors.New("quant: non-positive value")

	// ErrZeroDivisor indicates a quantity used as a divisor is zero.
	ErrZeroDivisor = errors.New("quant: zero divisor")

	// ErrNotFinite indicates a NaN or Inf argument.
	ErrNotFinite = errors.New("quant: non-finite value")

	// ErrTolerance indicates an invalid comparison tolerance.
	ErrTolerance = errors.New("quant: invalid tolerance")

	// ErrUndefined indicates the requested quantity is mathematically or
	// physically undefined for the given arguments.
	ErrUndefined = errors.New("quant: result undefined")

	// ErrOutOfRange indicates an argument outside its documented domain.
	ErrOutOfRange = errors.New("quant: argument out of range")

	// ErrOverflow indicates the exact result would overflow its integer
	// representation.
	ErrOverflow = errors.New("quant: result overflows")
)
