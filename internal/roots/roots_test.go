package roots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	assert.InDelta(t, 3.0, Root(27, 3), 1e-12)
	assert.InDelta(t, -2.0, Root(-8, 3), 1e-12)
	assert.InDelta(t, 4.0, Root(16, 2), 1e-12)
	assert.True(t, math.IsNaN(Root(-8, 2)))
	assert.True(t, math.IsNaN(Root(8, 0)))
}

func TestSafeRoot(t *testing.T) {
	got, err := SafeRoot(-8, 3)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, got, 1e-12)

	_, err = SafeRoot(-8, 2)
	assert.Error(t, err)

	_, err = SafeRoot(8, 0)
	assert.Error(t, err)

	got, err = SafeRoot(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestNewtonRoot(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{27, 3, 3},
		{-27, 3, -3},
		{16, 4, 2},
		{2, 2, math.Sqrt2},
		{1e6, 2, 1000},
		{0.25, 2, 0.5},
	}

	for _, tt := range tests {
		got, err := NewtonRoot(tt.x, tt.n, DefaultNewtonTolerance, DefaultNewtonIterations)
		require.NoError(t, err, "x=%g n=%d", tt.x, tt.n)
		assert.InDelta(t, tt.want, got, 1e-9, "x=%g n=%d", tt.x, tt.n)
	}

	_, err := NewtonRoot(-4, 2, DefaultNewtonTolerance, DefaultNewtonIterations)
	assert.Error(t, err)
	_, err = NewtonRoot(4, 2, 0, DefaultNewtonIterations)
	assert.Error(t, err)
	_, err = NewtonRoot(4, 2, 1e-12, 0)
	assert.Error(t, err)
}

func TestNewtonRootCapReturnsBestEffort(t *testing.T) {
	// a single iteration cannot converge, but still yields an estimate
	got, err := NewtonRoot(1e12, 2, 1e-15, 1)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(got))
	assert.Greater(t, got, 0.0)
}

func TestTryNewtonRoot(t *testing.T) {
	got, ok := TryNewtonRoot(64, 3, DefaultNewtonTolerance, DefaultNewtonIterations)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, got, 1e-9)

	_, ok = TryNewtonRoot(-64, 2, DefaultNewtonTolerance, DefaultNewtonIterations)
	assert.False(t, ok)
}
