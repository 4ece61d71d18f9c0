package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physkit/internal/quant"
)

func TestWeightedCenter1DTwoBody(t *testing.T) {
	m1, x1 := 2.0, 0.0
	m2, x2 := 6.0, 4.0
	want := (m1*x1 + m2*x2) / (m1 + m2)

	got, err := WeightedCenter1D([]float64{m1, m2}, []float64{x1, x2})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)

	// invariant under reordering the pairs
	swapped, err := WeightedCenter1D([]float64{m2, m1}, []float64{x2, x1})
	require.NoError(t, err)
	assert.InDelta(t, got, swapped, 1e-12)
}

func TestCenterOfMassRejectsNegative(t *testing.T) {
	_, err := CenterOfMass1D([]float64{1, -1}, []float64{0, 1})
	assert.ErrorIs(t, err, quant.ErrNegative)

	_, err = CenterOfMass1D([]float64{0, 0}, []float64{0, 1})
	assert.ErrorIs(t, err, quant.ErrUndefined)

	_, err = CenterOfMass1D(nil, nil)
	assert.ErrorIs(t, err, quant.ErrEmptyInput)

	_, err = CenterOfMass1D([]float64{1}, []float64{0, 1})
	assert.ErrorIs(t, err, quant.ErrLengthMismatch)
}

func TestCenterOfGravitySigned(t *testing.T) {
	// signed weights are allowed as long as the total is non-zero
	got, err := CenterOfGravity1D([]float64{3, -1}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, 1e-12)

	// zero net weight leaves the center undefined
	_, err = CenterOfGravity1D([]float64{1, -1}, []float64{0, 2})
	assert.ErrorIs(t, err, quant.ErrUndefined)
}

func TestCenterOfMass2D3D(t *testing.T) {
	c2, err := CenterOfMass2D(
		[]float64{1, 1},
		[]quant.Vec2{{X: 0, Y: 0}, {X: 2, Y: 4}},
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c2.X, 1e-12)
	assert.InDelta(t, 2.0, c2.Y, 1e-12)

	c3, err := CenterOfMass3D(
		[]float64{1, 3},
		[]quant.Vec3{{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 8}},
	)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, c3.X, 1e-12)
	assert.InDelta(t, 0.0, c3.Y, 1e-12)
	assert.InDelta(t, 6.0, c3.Z, 1e-12)
}

func TestResultantLocation(t *testing.T) {
	// two parallel 5 N forces at 0 and 2: resultant acts at 1
	got, err := ResultantLocation1D([]float64{5, 5}, []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// equal and opposite forces form a couple with no single location
	_, err = ResultantLocation1D([]float64{5, -5}, []float64{0, 2})
	assert.ErrorIs(t, err, quant.ErrUndefined)
}
