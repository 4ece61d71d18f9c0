// Package stats provides descriptive statistics, frequency analysis,
// and means over generic numeric slices. Elements are converted to
// float64 before computation; variance and standard deviation are the
// population forms (÷n).
package stats

import (
	"math"
	"slices"

	"github.com/san-kum/physkit/internal/quant"
)

// Number is any numeric element type convertible to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func toFloats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Min returns the smallest value.
func Min[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	return slices.Min(toFloats(values)), nil
}

// Max returns the largest value.
func Max[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	return slices.Max(toFloats(values)), nil
}

// Median returns the middle value of the sorted data, or the mean of
// the two middle values for even-length input.
func Median[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	fs := toFloats(values)
	slices.Sort(fs)
	n := len(fs)
	if n%2 == 1 {
		return fs[n/2], nil
	}
	return (fs[n/2-1] + fs[n/2]) / 2, nil
}

// Variance returns the population variance.
func Variance[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	fs := toFloats(values)
	mean := 0.0
	for _, v := range fs {
		mean += v
	}
	mean /= float64(len(fs))

	sumSq := 0.0
	for _, v := range fs {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(fs)), nil
}

// StdDev returns the population standard deviation.
func StdDev[T Number](values []T) (float64, error) {
	v, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}
