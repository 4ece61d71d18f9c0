package dynamics

import (
	"github.com/san-kum/physkit/internal/quant"
)

// SpringForce returns Hooke's restoring force F = −k·x.
func SpringForce(stiffness, displacement float64) (float64, error) {
	if err := quant.CheckNonNegative("stiffness", stiffness); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("displacement", displacement); err != nil {
		return 0, err
	}
	return -stiffness * displacement, nil
}

// SpringForce2D applies F = −k·x per component.
func SpringForce2D(stiffness float64, displacement quant.Vec2) (quant.Vec2, error) {
	if err := quant.CheckNonNegative("stiffness", stiffness); err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{
		X: -stiffness * displacement.X,
		Y: -stiffness * displacement.Y,
	}, nil
}

// SpringForce3D applies F = −k·x per component.
func SpringForce3D(stiffness float64, displacement quant.Vec3) (quant.Vec3, error) {
	if err := quant.CheckNonNegative("stiffness", stiffness); err != nil {
		return quant.Vec3{}, err
	}
	return quant.Vec3{
		X: -stiffness * displacement.X,
		Y: -stiffness * displacement.Y,
		Z: -stiffness * displacement.Z,
	}, nil
}

// DamperForce returns the viscous damping force F = −c·v.
func DamperForce(damping, velocity float64) (float64, error) {
	if err := quant.CheckNonNegative("damping", damping); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("velocity", velocity); err != nil {
		return 0, err
	}
	return -damping * velocity, nil
}

// DamperForce2D applies F = −c·v per component.
func DamperForce2D(damping float64, velocity quant.Vec2) (quant.Vec2, error) {
	if err := quant.CheckNonNegative("damping", damping); err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{
		X: -damping * velocity.X,
		Y: -damping * velocity.Y,
	}, nil
}

// DamperForce3D applies F = −c·v per component.
func DamperForce3D(damping float64, velocity quant.Vec3) (quant.Vec3, error) {
	if err := quant.CheckNonNegative("damping", damping); err != nil {
		return quant.Vec3{}, err
	}
	return quant.Vec3{
		X: -damping * velocity.X,
		Y: -damping * velocity.Y,
		Z: -damping * velocity.Z,
	}, nil
}

// SpringDamperForce returns −k·x − c·v, the 1D spring and damper acting
// together.
func SpringDamperForce(stiffness, damping, displacement, velocity float64) (float64, error) {
	fs, err := SpringForce(stiffness, displacement)
	if err != nil {
		return 0, err
	}
	fd, err := DamperForce(damping, velocity)
	if err != nil {
		return 0, err
	}
	return fs + fd, nil
}
