package stats

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Mean returns the arithmetic mean.
func Mean[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// GeometricMean returns the n-th root of the product. All values must
// be non-negative; the computation runs in log space to avoid overflow.
func GeometricMean[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	logSum := 0.0
	for i, v := range values {
		f := float64(v)
		if f < 0 {
			return 0, fmt.Errorf("%w: values[%d] = %g in geometric mean", quant.ErrNegative, i, f)
		}
		if f == 0 {
			return 0, nil
		}
		logSum += math.Log(f)
	}
	return math.Exp(logSum / float64(len(values))), nil
}

// HarmonicMean returns n divided by the sum of reciprocals. All values
// must be strictly positive.
func HarmonicMean[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	recip := 0.0
	for i, v := range values {
		f := float64(v)
		if f <= 0 {
			return 0, fmt.Errorf("%w: values[%d] = %g in harmonic mean", quant.ErrNonPositive, i, f)
		}
		recip += 1 / f
	}
	return float64(len(values)) / recip, nil
}

// QuadraticMean returns the root mean square.
func QuadraticMean[T Number](values []T) (float64, error) {
	if err := quant.CheckNonEmpty("values", len(values)); err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, v := range values {
		f := float64(v)
		sumSq += f * f
	}
	return math.Sqrt(sumSq / float64(len(values))), nil
}

// WeightedMean returns Σ(wᵢvᵢ)/Σwᵢ over paired slices. Weights must be
// non-negative with a positive total.
func WeightedMean[T Number](values []T, weights []float64) (float64, error) {
	if err := quant.CheckPaired("values", len(values), "weights", len(weights)); err != nil {
		return 0, err
	}
	num, total := 0.0, 0.0
	for i, v := range values {
		if err := quant.CheckNonNegative(fmt.Sprintf("weights[%d]", i), weights[i]); err != nil {
			return 0, err
		}
		num += float64(v) * weights[i]
		total += weights[i]
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: total weight", quant.ErrZeroDivisor)
	}
	return num / total, nil
}
