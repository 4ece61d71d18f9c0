package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportReactionsSymmetric(t *testing.T) {
	ra, rb, err := SupportReactions(
		[]PointLoad{{Position: 2, Force: 10}}, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ra, 1e-12)
	assert.InDelta(t, 5.0, rb, 1e-12)
}

func TestSupportReactionsAsymmetric(t *testing.T) {
	ra, rb, err := SupportReactions(
		[]PointLoad{{Position: 1, Force: 10}}, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, ra, 1e-12)
	assert.InDelta(t, 2.5, rb, 1e-12)
}

func TestSupportReactionsWithUDL(t *testing.T) {
	// 2 N/m over the whole 4 m span: 8 N total, symmetric
	ra, rb, err := SupportReactionsWithUDL(nil,
		[]UDL{{Start: 0, End: 4, Intensity: 2}}, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ra, 1e-12)
	assert.InDelta(t, 4.0, rb, 1e-12)

	// UDL over the left half only: resultant 4 N at x=1
	ra, rb, err = SupportReactionsWithUDL(nil,
		[]UDL{{Start: 0, End: 2, Intensity: 2}}, 0, 4)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, ra, 1e-12)
	assert.InDelta(t, 1.0, rb, 1e-12)
}

func TestBeamValidation(t *testing.T) {
	_, _, err := SupportReactions([]PointLoad{{Position: 1, Force: 1}}, 4, 4)
	assert.Error(t, err)

	_, _, err = SupportReactionsWithUDL(nil, []UDL{{Start: 2, End: 1, Intensity: 1}}, 0, 4)
	assert.Error(t, err)
}

func TestShearLeftLimit(t *testing.T) {
	b := Beam{
		SupportA: 0,
		SupportB: 4,
		Loads:    []PointLoad{{Position: 2, Force: 10}},
	}

	// just left of the load: only reaction A acts on the left segment
	v, err := b.ShearAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12)

	// infinitesimally past the load the shear drops by its magnitude
	v, err = b.ShearAt(2.0000001)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, v, 1e-12)

	// at the left support the left segment is empty
	v, err = b.ShearAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)

	// past the right support everything cancels
	v, err = b.ShearAt(5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)
}

func TestBendingMoment(t *testing.T) {
	b := Beam{
		SupportA: 0,
		SupportB: 4,
		Loads:    []PointLoad{{Position: 2, Force: 10}},
	}

	// peak moment under the load: R_A · 2 = 10
	m, err := b.BendingMomentAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, m, 1e-12)

	m, err = b.BendingMomentAt(1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m, 1e-12)

	// moments vanish at the supports
	m, err = b.BendingMomentAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, 1e-12)
	m, err = b.BendingMomentAt(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, m, 1e-10)
}

func TestUDLShearAndMoment(t *testing.T) {
	// full-span UDL w=2 on span 4: V(x) = R_A − w·x, M(x) = R_A·x − w·x²/2
	b := Beam{
		SupportA: 0,
		SupportB: 4,
		UDLs:     []UDL{{Start: 0, End: 4, Intensity: 2}},
	}

	v, err := b.ShearAt(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)

	// midspan shear is zero by symmetry
	v, err = b.ShearAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, 1e-12)

	// midspan moment w·L²/8 = 4
	m, err := b.BendingMomentAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, m, 1e-12)
}

func TestDiagramsPreserveOrder(t *testing.T) {
	b := Beam{
		SupportA: 0,
		SupportB: 4,
		Loads:    []PointLoad{{Position: 2, Force: 10}},
	}

	xs := []float64{3, 1, 2}
	vs, err := b.ShearDiagram(xs)
	require.NoError(t, err)
	require.Len(t, vs, 3)
	assert.InDelta(t, -5.0, vs[0], 1e-12)
	assert.InDelta(t, 5.0, vs[1], 1e-12)
	assert.InDelta(t, 5.0, vs[2], 1e-12)

	ms, err := b.BendingMomentDiagram(xs)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ms[0], 1e-12)
	assert.InDelta(t, 5.0, ms[1], 1e-12)
	assert.InDelta(t, 10.0, ms[2], 1e-12)
}

func TestNormalForce(t *testing.T) {
	b := Beam{
		SupportA: 0,
		SupportB: 4,
		Axial:    []AxialLoad{{Position: 1, Force: -3}}, // pulling toward −x
	}

	n, err := b.NormalAt(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, n, 1e-12)

	// left segment carries the axial pull as tension
	n, err = b.NormalAt(2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, n, 1e-12)
}
