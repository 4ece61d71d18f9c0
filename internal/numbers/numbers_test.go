package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInteger(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		eps  float64
		want bool
	}{
		{"exact", 4.0, 0, true},
		{"near below", 3.9999999999, 1e-9, true},
		{"near above", 4.0000000001, 1e-9, true},
		{"half", 4.5, 1e-9, false},
		{"negative", -7.0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsInteger(tt.x, tt.eps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsInteger(1.0, -1e-9)
	assert.Error(t, err)
}

func TestParity(t *testing.T) {
	even, err := IsEven(4.0, 1e-9)
	require.NoError(t, err)
	assert.True(t, even)

	odd, err := IsOdd(-3.0, 1e-9)
	require.NoError(t, err)
	assert.True(t, odd)

	// a non-integer is neither
	even, err = IsEven(2.5, 1e-9)
	require.NoError(t, err)
	assert.False(t, even)
	odd, err = IsOdd(2.5, 1e-9)
	require.NoError(t, err)
	assert.False(t, odd)
}

func TestIsNatural(t *testing.T) {
	for x, want := range map[float64]bool{0: true, 5: true, -1: false, 2.5: false} {
		got, err := IsNatural(x, 1e-9)
		require.NoError(t, err)
		assert.Equal(t, want, got, "x=%g", x)
	}
}

func TestIsBetween(t *testing.T) {
	got, err := IsBetween(1.0, 0, 2, 0)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsBetween(2.0000000001, 0, 2, 1e-9)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = IsBetween(2.1, 0, 2, 1e-9)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = IsBetween(1, 2, 0, 1e-9)
	assert.Error(t, err)
}
