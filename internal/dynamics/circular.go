package dynamics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// CentripetalForce returns F = m·v²/r toward the center, as a scalar
// magnitude.
func CentripetalForce(mass, speed, radius float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("speed", speed); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("radius", radius); err != nil {
		return 0, err
	}
	return mass * speed * speed / radius, nil
}

// CenterDirection2D returns the unit vector from position toward
// center. Undefined when the two coincide.
func CenterDirection2D(position, center quant.Vec2) (quant.Vec2, error) {
	dx := center.X - position.X
	dy := center.Y - position.Y
	r := math.Hypot(dx, dy)
	if r == 0 {
		return quant.Vec2{}, fmt.Errorf("%w: position coincides with rotation center", quant.ErrUndefined)
	}
	return quant.Vec2{X: dx / r, Y: dy / r}, nil
}

// CenterDirection3D returns the unit vector from position toward
// center.
func CenterDirection3D(position, center quant.Vec3) (quant.Vec3, error) {
	dx := center.X - position.X
	dy := center.Y - position.Y
	dz := center.Z - position.Z
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if r == 0 {
		return quant.Vec3{}, fmt.Errorf("%w: position coincides with rotation center", quant.ErrUndefined)
	}
	return quant.Vec3{X: dx / r, Y: dy / r, Z: dz / r}, nil
}

// CentripetalAcceleration2D returns the acceleration vector v²/r
// pointing from position toward center.
func CentripetalAcceleration2D(position, center quant.Vec2, speed float64) (quant.Vec2, error) {
	if err := quant.CheckFinite("speed", speed); err != nil {
		return quant.Vec2{}, err
	}
	dir, err := CenterDirection2D(position, center)
	if err != nil {
		return quant.Vec2{}, err
	}
	r := math.Hypot(center.X-position.X, center.Y-position.Y)
	a := speed * speed / r
	return quant.Vec2{X: a * dir.X, Y: a * dir.Y}, nil
}

// CentripetalForce2D returns m times CentripetalAcceleration2D.
func CentripetalForce2D(mass float64, position, center quant.Vec2, speed float64) (quant.Vec2, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return quant.Vec2{}, err
	}
	a, err := CentripetalAcceleration2D(position, center, speed)
	if err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{X: mass * a.X, Y: mass * a.Y}, nil
}

// CentripetalAcceleration3D returns the acceleration vector v²/r
// pointing from position toward center.
func CentripetalAcceleration3D(position, center quant.Vec3, speed float64) (quant.Vec3, error) {
	if err := quant.CheckFinite("speed", speed); err != nil {
		return quant.Vec3{}, err
	}
	dir, err := CenterDirection3D(position, center)
	if err != nil {
		return quant.Vec3{}, err
	}
	dx := center.X - position.X
	dy := center.Y - position.Y
	dz := center.Z - position.Z
	r := math.Sqrt(dx*dx + dy*dy + dz*dz)
	a := speed * speed / r
	return quant.Vec3{X: a * dir.X, Y: a * dir.Y, Z: a * dir.Z}, nil
}

// CentripetalForce3D returns m times CentripetalAcceleration3D.
func CentripetalForce3D(mass float64, position, center quant.Vec3, speed float64) (quant.Vec3, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return quant.Vec3{}, err
	}
	a, err := CentripetalAcceleration3D(position, center, speed)
	if err != nil {
		return quant.Vec3{}, err
	}
	return quant.Vec3{X: mass * a.X, Y: mass * a.Y, Z: mass * a.Z}, nil
}

// Torque returns τ = I·α.
func Torque(momentOfInertia, angularAcceleration float64) (float64, error) {
	if err := quant.CheckNonNegative("momentOfInertia", momentOfInertia); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("angularAcceleration", angularAcceleration); err != nil {
		return 0, err
	}
	return momentOfInertia * angularAcceleration, nil
}

// AngularAccelerationFromTorque returns α = τ/I for I > 0.
func AngularAccelerationFromTorque(torque, momentOfInertia float64) (float64, error) {
	if err := quant.CheckFinite("torque", torque); err != nil {
		return 0, err
	}
	if err := quant.CheckPositive("momentOfInertia", momentOfInertia); err != nil {
		return 0, err
	}
	return torque / momentOfInertia, nil
}

// PointMassInertia returns I = m·r².
func PointMassInertia(mass, radius float64) (float64, error) {
	if err := quant.CheckNonNegative("mass", mass); err != nil {
		return 0, err
	}
	if err := quant.CheckNonNegative("radius", radius); err != nil {
		return 0, err
	}
	return mass * radius * radius, nil
}
