package dynamics

import (
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// Momentum returns p = m·v.
func Momentum(mass, velocity float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("velocity", velocity); err != nil {
		return 0, err
	}
	return mass * velocity, nil
}

// Momentum2D returns p = m·v per component.
func Momentum2D(mass float64, velocity quant.Vec2) (quant.Vec2, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{X: mass * velocity.X, Y: mass * velocity.Y}, nil
}

// Momentum3D returns p = m·v per component.
func Momentum3D(mass float64, velocity quant.Vec3) (quant.Vec3, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return quant.Vec3{}, err
	}
	return quant.Vec3{X: mass * velocity.X, Y: mass * velocity.Y, Z: mass * velocity.Z}, nil
}

// SystemMomentum returns Σ mᵢvᵢ over paired masses and velocities.
func SystemMomentum(masses, velocities []float64) (float64, error) {
	if err := quant.CheckPaired("masses", len(masses), "velocities", len(velocities)); err != nil {
		return 0, err
	}
	total := 0.0
	for i, m := range masses {
		p, err := Momentum(m, velocities[i])
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// SystemMomentum2D returns Σ mᵢvᵢ per component.
func SystemMomentum2D(masses []float64, velocities []quant.Vec2) (quant.Vec2, error) {
	if err := quant.CheckPaired("masses", len(masses), "velocities", len(velocities)); err != nil {
		return quant.Vec2{}, err
	}
	var total quant.Vec2
	for i, m := range masses {
		p, err := Momentum2D(m, velocities[i])
		if err != nil {
			return quant.Vec2{}, err
		}
		total.X += p.X
		total.Y += p.Y
	}
	return total, nil
}

// SystemMomentum3D returns Σ mᵢvᵢ per component.
func SystemMomentum3D(masses []float64, velocities []quant.Vec3) (quant.Vec3, error) {
	if err := quant.CheckPaired("masses", len(masses), "velocities", len(velocities)); err != nil {
		return quant.Vec3{}, err
	}
	var total quant.Vec3
	for i, m := range masses {
		p, err := Momentum3D(m, velocities[i])
		if err != nil {
			return quant.Vec3{}, err
		}
		total.X += p.X
		total.Y += p.Y
		total.Z += p.Z
	}
	return total, nil
}

// Impulse returns J = F·Δt for Δt ≥ 0.
func Impulse(force, dt float64) (float64, error) {
	if err := quant.CheckFinite("force", force); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("dt", dt); err != nil {
		return 0, err
	}
	return force * dt, nil
}

// Impulse2D returns J = F·Δt per component.
func Impulse2D(force quant.Vec2, dt float64) (quant.Vec2, error) {
	if err := quant.CheckNonNegative("dt", dt); err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{X: force.X * dt, Y: force.Y * dt}, nil
}

// AngularMomentum returns the magnitude |m·v·r·sin θ| where θ is the
// angle between the lever arm and the velocity.
func AngularMomentum(mass, speed, leverArm, theta float64) (float64, error) {
	l, err := SignedAngularMomentum(mass, speed, leverArm, theta)
	if err != nil {
		return 0, err
	}
	return math.Abs(l), nil
}

// SignedAngularMomentum returns m·v·r·sin θ with the sign carrying the
// rotation sense.
func SignedAngularMomentum(mass, speed, leverArm, theta float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("speed", speed); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("leverArm", leverArm); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("theta", theta); err != nil {
		return 0, err
	}
	return mass * speed * leverArm * math.Sin(theta), nil
}
