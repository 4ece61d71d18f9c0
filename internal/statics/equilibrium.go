package statics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// IsForceEquilibrium1D reports whether the signed forces sum to zero
// within tol. An empty set is trivially in equilibrium.
func IsForceEquilibrium1D(forces []float64, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	sum := 0.0
	for i, f := range forces {
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d]", i), f); err != nil {
			return false, err
		}
		sum += f
	}
	return math.Abs(sum) <= tol, nil
}

// IsForceEquilibrium2D reports whether both component sums vanish
// within tol.
func IsForceEquilibrium2D(forces []quant.Vec2, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	var sx, sy float64
	for i, f := range forces {
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d].X", i), f.X); err != nil {
			return false, err
		}
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d].Y", i), f.Y); err != nil {
			return false, err
		}
		sx += f.X
		sy += f.Y
	}
	return math.Abs(sx) <= tol && math.Abs(sy) <= tol, nil
}

// IsForceEquilibrium3D reports whether all three component sums vanish
// within tol.
func IsForceEquilibrium3D(forces []quant.Vec3, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	var sx, sy, sz float64
	for i, f := range forces {
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d].X", i), f.X); err != nil {
			return false, err
		}
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d].Y", i), f.Y); err != nil {
			return false, err
		}
		if err := quant.CheckFinite(fmt.Sprintf("forces[%d].Z", i), f.Z); err != nil {
			return false, err
		}
		sx += f.X
		sy += f.Y
		sz += f.Z
	}
	return math.Abs(sx) <= tol && math.Abs(sy) <= tol && math.Abs(sz) <= tol, nil
}

// IsMomentEquilibrium reports whether the signed moments sum to zero
// within tol.
func IsMomentEquilibrium(moments []float64, tol float64) (bool, error) {
	return IsForceEquilibrium1D(moments, tol)
}

// IsMomentEquilibriumAbout sums planar moments (x−px)·Fy − (y−py)·Fx of
// forces applied at positions about the given pivot and compares the
// total against tol.
func IsMomentEquilibriumAbout(pivot quant.Vec2, forces []quant.Vec2, positions []quant.Vec2, tol float64) (bool, error) {
	if err := quant.CheckTolerance(tol); err != nil {
		return false, err
	}
	if len(forces) == 0 && len(positions) == 0 {
		return true, nil
	}
	if err := quant.CheckPaired("forces", len(forces), "positions", len(positions)); err != nil {
		return false, err
	}
	sum := 0.0
	for i, f := range forces {
		rx := positions[i].X - pivot.X
		ry := positions[i].Y - pivot.Y
		sum += rx*f.Y - ry*f.X
	}
	if err := quant.CheckFinite("moment sum", sum); err != nil {
		return false, err
	}
	return math.Abs(sum) <= tol, nil
}
