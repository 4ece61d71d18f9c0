package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	odd, err := Median([]float64{5, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, odd)

	even, err := Median([]int{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, even)

	_, err = Median([]float64{})
	assert.Error(t, err)
}

func TestMinMax(t *testing.T) {
	mn, err := Min([]int{3, -2, 7})
	require.NoError(t, err)
	assert.Equal(t, -2.0, mn)

	mx, err := Max([]int{3, -2, 7})
	require.NoError(t, err)
	assert.Equal(t, 7.0, mx)
}

func TestVarianceStdDev(t *testing.T) {
	// population variance of {2,4,4,4,5,5,7,9} is 4
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	v, err := Variance(data)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)

	sd, err := StdDev(data)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sd, 1e-12)
}

func TestModes(t *testing.T) {
	modes, err := Modes([]int{1, 2, 2, 3, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, modes)

	single, err := Modes([]int{5, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, single)
}

func TestPercentile(t *testing.T) {
	data := []float64{1, 2, 3, 4}

	p0, err := Percentile(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p0)

	p100, err := Percentile(data, 100)
	require.NoError(t, err)
	assert.Equal(t, 4.0, p100)

	// index = 0.25·3 = 0.75 -> 1 + 0.75·(2−1)
	p25, err := Percentile(data, 25)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, p25, 1e-12)

	_, err = Percentile(data, 101)
	assert.Error(t, err)

	q, err := Quantile(data, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, p25, q, 1e-12)
}

func TestMeans(t *testing.T) {
	m, err := Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	g, err := GeometricMean([]float64{1, 4, 16})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, g, 1e-12)

	_, err = GeometricMean([]float64{1, -4})
	assert.Error(t, err)

	h, err := HarmonicMean([]float64{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.0/1.75, h, 1e-12)

	_, err = HarmonicMean([]float64{1, 0})
	assert.Error(t, err)

	q, err := QuadraticMean([]float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.5355339059327378, q, 1e-12)

	w, err := WeightedMean([]float64{1, 3}, []float64{3, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, w, 1e-12)

	_, err = WeightedMean([]float64{1, 3}, []float64{0, 0})
	assert.Error(t, err)
	_, err = WeightedMean([]float64{1}, []float64{1, 2})
	assert.Error(t, err)
}
