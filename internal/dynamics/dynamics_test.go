package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physkit/internal/quant"
)

func TestForceAcceleration(t *testing.T) {
	f, err := Force(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, f, 1e-12)

	a, err := AccelerationFromForce(6, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, a, 1e-12)

	_, err = Force(-1, 3)
	assert.ErrorIs(t, err, quant.ErrNegative)
	_, err = AccelerationFromForce(6, 0)
	assert.ErrorIs(t, err, quant.ErrNonPositive)
}

func TestNormalForceOnIncline(t *testing.T) {
	// flat ground: N = m·g
	n, err := NormalForceOnIncline(2, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, n, 1e-12)

	// 60°: N = m·g/2
	n, err = NormalForceOnIncline(2, math.Pi/3, 10)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, n, 1e-12)

	_, err = NormalForceOnIncline(2, -0.1, 10)
	assert.ErrorIs(t, err, quant.ErrOutOfRange)
	_, err = NormalForceOnIncline(2, math.Pi, 10)
	assert.ErrorIs(t, err, quant.ErrOutOfRange)
}

func TestInclineAcceleration(t *testing.T) {
	// frictionless 30° slope: a = g/2
	a, err := InclineAcceleration(1, math.Pi/6, 0, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, a, 1e-12)

	// friction strong enough to pin the body
	a, err = InclineAcceleration(1, math.Pi/6, 1.0, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)

	// moderate friction reduces the slide
	a, err = InclineAcceleration(1, math.Pi/6, 0.2, 0, 10)
	require.NoError(t, err)
	assert.InDelta(t, 5.0-0.2*10*math.Cos(math.Pi/6), a, 1e-12)

	// pushing upslope against gravity and friction
	a, err = InclineAcceleration(1, math.Pi/6, 0.2, -20, 10)
	require.NoError(t, err)
	assert.InDelta(t, (-15+0.2*10*math.Cos(math.Pi/6))/1, a, 1e-12)
}

func TestSpringDamper(t *testing.T) {
	f, err := SpringForce(10, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, f, 1e-12)

	f2, err := SpringForce2D(10, quant.Vec2{X: 1, Y: -2})
	require.NoError(t, err)
	assert.InDelta(t, -10.0, f2.X, 1e-12)
	assert.InDelta(t, 20.0, f2.Y, 1e-12)

	fd, err := DamperForce(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, -6.0, fd, 1e-12)

	fsd, err := SpringDamperForce(10, 2, 0.5, 3)
	require.NoError(t, err)
	assert.InDelta(t, -11.0, fsd, 1e-12)

	_, err = SpringForce(-1, 0.5)
	assert.ErrorIs(t, err, quant.ErrNegative)
}

func TestDrag(t *testing.T) {
	f, err := LinearDrag(0.5, 4)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, f, 1e-12)

	// quadratic drag still opposes motion for negative velocity
	f, err = QuadraticDrag(0.5, -4)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, f, 1e-12)

	k, err := DragCoefficient(1.2, 0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, k, 1e-12)

	vt, err := TerminalVelocity(80, 9.81, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(80*9.81/0.25), vt, 1e-12)
}

func TestCentripetal(t *testing.T) {
	f, err := CentripetalForce(2, 3, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, f, 1e-12)

	// circling the origin from (2,0): acceleration points in −x
	a, err := CentripetalAcceleration2D(quant.Vec2{X: 2}, quant.Vec2{}, 4)
	require.NoError(t, err)
	assert.InDelta(t, -8.0, a.X, 1e-12)
	assert.InDelta(t, 0.0, a.Y, 1e-12)

	fv, err := CentripetalForce2D(3, quant.Vec2{X: 2}, quant.Vec2{}, 4)
	require.NoError(t, err)
	assert.InDelta(t, -24.0, fv.X, 1e-12)

	_, err = CentripetalAcceleration2D(quant.Vec2{X: 1, Y: 1}, quant.Vec2{X: 1, Y: 1}, 4)
	assert.ErrorIs(t, err, quant.ErrUndefined)

	a3, err := CentripetalAcceleration3D(quant.Vec3{Z: 2}, quant.Vec3{}, 2)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, a3.Z, 1e-12)
}

func TestMomentum(t *testing.T) {
	p, err := Momentum(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, p, 1e-12)

	total, err := SystemMomentum([]float64{1, 2}, []float64{3, -1.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, total, 1e-12)

	_, err = SystemMomentum([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, quant.ErrLengthMismatch)

	p2, err := SystemMomentum2D(
		[]float64{1, 1},
		[]quant.Vec2{{X: 1, Y: 2}, {X: 3, Y: -2}},
	)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, p2.X, 1e-12)
	assert.InDelta(t, 0.0, p2.Y, 1e-12)

	j, err := Impulse(10, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, j, 1e-12)
	_, err = Impulse(10, -0.5)
	assert.ErrorIs(t, err, quant.ErrNegative)
}

func TestAngularMomentum(t *testing.T) {
	// perpendicular lever arm: L = m·v·r
	l, err := AngularMomentum(2, 3, 4, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, l, 1e-12)

	// the signed form keeps the rotation sense
	ls, err := SignedAngularMomentum(2, 3, 4, -math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, -24.0, ls, 1e-12)

	// magnitude form discards it
	l, err = AngularMomentum(2, 3, 4, -math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, l, 1e-12)
}

func TestEnergy(t *testing.T) {
	ke, err := KineticEnergy(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, ke, 1e-12)

	pe, err := PotentialEnergy(2, 10, 5)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, pe, 1e-12)

	w, err := WorkAtAngle(10, 2, math.Pi/3)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, w, 1e-12)

	p, err := Power(100, 4)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, p, 1e-12)
	_, err = Power(100, 0)
	assert.ErrorIs(t, err, quant.ErrZeroDivisor)

	epe, err := ElasticPotentialEnergy(100, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, epe, 1e-12)

	rke, err := RotationalKineticEnergy(4, 3)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, rke, 1e-12)
}
