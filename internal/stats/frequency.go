package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/physkit/internal/quant"
)

// Modes returns all values of maximal multiplicity, sorted ascending.
// Every value of a multiplicity-1 data set is a mode.
func Modes[T Number](values []T) ([]float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return nil, err
	}
	counts := make(map[float64]int, len(values))
	best := 0
	for _, v := range values {
		f := float64(v)
		counts[f]++
		if counts[f] > best {
			best = counts[f]
		}
	}
	modes := make([]float64, 0, len(counts))
	for v, c := range counts {
		if c == best {
			modes = append(modes, v)
		}
	}
	slices.Sort(modes)
	return modes, nil
}

// Percentile returns the p-th percentile, p in [0,100], using inclusive
// linear interpolation between the bracketing order statistics
// (index = p/100·(n−1), the spreadsheet PERCENTILE.INC rule).
func Percentile[T Number](values []T, p float64) (float64, error) {
	if err := quant.CheckFinite("p", p); err != nil {
		return 0, err
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: percentile %g outside [0,100]", quant.ErrOutOfRange, p)
	}
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	fs := toFloats(values)
	slices.Sort(fs)
	return interpolateSorted(fs, p/100), nil
}

// Quantile returns the q-th quantile, q in [0,1].
func Quantile[T Number](values []T, q float64) (float64, error) {
	if err := quant.CheckFinite("q", q); err != nil {
		return 0, err
	}
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: quantile %g outside [0,1]", quant.ErrOutOfRange, q)
	}
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	fs := toFloats(values)
	slices.Sort(fs)
	return interpolateSorted(fs, q), nil
}

func interpolateSorted(sorted []float64, q float64) float64 {
	idx := q * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
