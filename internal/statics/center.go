package statics

import (
	"fmt"

	"github.com/san-kum/physkit/internal/quant"
)

// weightedCenter1D is the shared core of all center computations. With
// signed=false every weight must be non-negative and the total must be
// positive; with signed=true weights may carry either sign but a zero
// total leaves the center undefined.
func weightedCenter1D(weights, positions []float64, signed bool) (float64, error) {
	if err := quant.CheckPaired("weights", len(weights), "positions", len(positions)); err != nil {
		return 0, err
	}
	num, total := 0.0, 0.0
	for i, w := range weights {
		if err := quant.CheckFinite(fmt.Sprintf("weights[%d]", i), w); err != nil {
			return 0, err
		}
		if !signed && w < 0 {
			return 0, fmt.Errorf("%w: weights[%d] = %g", quant.ErrNegative, i, w)
		}
		if err := quant.CheckFinite(fmt.Sprintf("positions[%d]", i), positions[i]); err != nil {
			return 0, err
		}
		num += w * positions[i]
		total += w
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: total weight is zero", quant.ErrUndefined)
	}
	return num / total, nil
}

func weightedCenter2D(weights []float64, positions []quant.Vec2, signed bool) (quant.Vec2, error) {
	if err := quant.CheckPaired("weights", len(weights), "positions", len(positions)); err != nil {
		return quant.Vec2{}, err
	}
	xs := make([]float64, len(positions))
	ys := make([]float64, len(positions))
	for i, p := range positions {
		xs[i] = p.X
		ys[i] = p.Y
	}
	x, err := weightedCenter1D(weights, xs, signed)
	if err != nil {
		return quant.Vec2{}, err
	}
	y, err := weightedCenter1D(weights, ys, signed)
	if err != nil {
		return quant.Vec2{}, err
	}
	return quant.Vec2{X: x, Y: y}, nil
}

func weightedCenter3D(weights []float64, positions []quant.Vec3, signed bool) (quant.Vec3, error) {
	if err := quant.CheckPaired("weights", len(weights), "positions", len(positions)); err != nil {
		return quant.Vec3{}, err
	}
	xs := make([]float64, len(positions))
	ys := make([]float64, len(positions))
	zs := make([]float64, len(positions))
	for i, p := range positions {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	x, err := weightedCenter1D(weights, xs, signed)
	if err != nil {
		return quant.Vec3{}, err
	}
	y, err := weightedCenter1D(weights, ys, signed)
	if err != nil {
		return quant.Vec3{}, err
	}
	z, err := weightedCenter1D(weights, zs, signed)
	if err != nil {
		return quant.Vec3{}, err
	}
	return quant.Vec3{X: x, Y: y, Z: z}, nil
}

// WeightedCenter1D returns Σ(wᵢxᵢ)/Σwᵢ for non-negative weights.
func WeightedCenter1D(weights, positions []float64) (float64, error) {
	return weightedCenter1D(weights, positions, false)
}

// CenterOfMass1D returns the mass-weighted mean position. Masses must
// be non-negative with a positive total.
func CenterOfMass1D(masses, positions []float64) (float64, error) {
	return weightedCenter1D(masses, positions, false)
}

// CenterOfMass2D is CenterOfMass1D per component.
func CenterOfMass2D(masses []float64, positions []quant.Vec2) (quant.Vec2, error) {
	return weightedCenter2D(masses, positions, false)
}

// CenterOfMass3D is CenterOfMass1D per component.
func CenterOfMass3D(masses []float64, positions []quant.Vec3) (quant.Vec3, error) {
	return weightedCenter3D(masses, positions, false)
}

// Centroid1D returns the measure-weighted mean position for geometric
// measures (length, area, volume), which must be non-negative.
func Centroid1D(measures, positions []float64) (float64, error) {
	return weightedCenter1D(measures, positions, false)
}

// Centroid2D is Centroid1D per component.
func Centroid2D(measures []float64, positions []quant.Vec2) (quant.Vec2, error) {
	return weightedCenter2D(measures, positions, false)
}

// Centroid3D is Centroid1D per component.
func Centroid3D(measures []float64, positions []quant.Vec3) (quant.Vec3, error) {
	return weightedCenter3D(measures, positions, false)
}

// CenterOfGravity1D returns the weight-weighted mean position. Weights
// may be signed; a zero total is undefined.
func CenterOfGravity1D(weights, positions []float64) (float64, error) {
	return weightedCenter1D(weights, positions, true)
}

// CenterOfGravity2D is CenterOfGravity1D per component.
func CenterOfGravity2D(weights []float64, positions []quant.Vec2) (quant.Vec2, error) {
	return weightedCenter2D(weights, positions, true)
}

// CenterOfGravity3D is CenterOfGravity1D per component.
func CenterOfGravity3D(weights []float64, positions []quant.Vec3) (quant.Vec3, error) {
	return weightedCenter3D(weights, positions, true)
}

// ResultantLocation1D returns where a set of parallel signed forces can
// be replaced by their resultant. A zero net force has no location.
func ResultantLocation1D(forces, positions []float64) (float64, error) {
	return weightedCenter1D(forces, positions, true)
}

// ResultantLocation2D is ResultantLocation1D per component.
func ResultantLocation2D(forces []float64, positions []quant.Vec2) (quant.Vec2, error) {
	return weightedCenter2D(forces, positions, true)
}

// ResultantLocation3D is ResultantLocation1D per component.
func ResultantLocation3D(forces []float64, positions []quant.Vec3) (quant.Vec3, error) {
	return weightedCenter3D(forces, positions, true)
}
