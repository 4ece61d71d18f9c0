package kinematics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Launch describes a projectile released at height H with speed Speed
// at elevation Angle (radians above horizontal) under gravity Gravity
// (positive, pointing down). Drag is ignored.
type Launch struct {
	Speed   float64
	Angle   float64
	Height  float64
	Gravity float64
}

func (l Launch) validate() error {
	if err := quant.CheckNonNegative("speed", l.Speed); err != nil {
		return err
	}
	if err := quant.CheckFinite("angle", l.Angle); err != nil {
		return err
	}
	if err := quant.CheckNonNegative("height", l.Height); err != nil {
		return err
	}
	return quant.CheckPositive("gravity", l.Gravity)
}

// HorizontalVelocity returns v0·cos θ.
func (l Launch) HorizontalVelocity() (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	return l.Speed * math.Cos(l.Angle), nil
}

// VerticalVelocity returns v0·sin θ.
func (l Launch) VerticalVelocity() (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	return l.Speed * math.Sin(l.Angle), nil
}

// TimeOfFlight returns the time until the projectile returns to y = 0.
func (l Launch) TimeOfFlight() (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	vy := l.Speed * math.Sin(l.Angle)
	disc := vy*vy + 2*l.Gravity*l.Height
	if disc < 0 {
		return 0, fmt.Errorf("%w: projectile never reaches the ground", quant.ErrUndefined)
	}
	return (vy + math.Sqrt(disc)) / l.Gravity, nil
}

// MaxHeight returns the apex height above y = 0. A projectile launched
// downward never rises above its release height.
func (l Launch) MaxHeight() (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	vy := l.Speed * math.Sin(l.Angle)
	if vy <= 0 {
		return l.Height, nil
	}
	return l.Height + vy*vy/(2*l.Gravity), nil
}

// Range returns the horizontal distance covered before landing.
func (l Launch) Range() (float64, error) {
	t, err := l.TimeOfFlight()
	if err != nil {
		return 0, err
	}
	return l.Speed * math.Cos(l.Angle) * t, nil
}

// PositionAt returns the (x,y) position t seconds after release.
func (l Launch) PositionAt(t float64) (quant.Vec2, error) {
	if err := l.validate(); err != nil {
		return quant.Vec2{}, err
	}
	if err := quant.CheckNonNegative("t", t); err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{
		X: l.Speed * math.Cos(l.Angle) * t,
		Y: l.Height + l.Speed*math.Sin(l.Angle)*t - 0.5*l.Gravity*t*t,
	}, nil
}

// TrajectoryY returns the height y(x) with time eliminated:
// y = h + x·tan θ − g·x²/(2·v0²·cos²θ). Undefined for a vertical
// launch, where x never advances.
func (l Launch) TrajectoryY(x float64) (float64, error) {
	if err := l.validate(); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("x", x); err != nil {
		return 0, err
	}
	vx := l.Speed * math.Cos(l.Angle)
	// cos(π/2) is not exactly zero in floats; treat near-vertical as vertical
	if math.Abs(vx) < 1e-12 {
		return 0, fmt.Errorf("%w: trajectory y(x) of a vertical launch", quant.ErrUndefined)
	}
	return l.Height + x*math.Tan(l.Angle) - l.Gravity*x*x/(2*vx*vx), nil
}
