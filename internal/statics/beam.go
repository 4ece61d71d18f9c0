package statics

import (
	"fmt"
	"math"

	"github.com/san-kum/physkit/internal/quant"
)

// PointLoad is a transverse load on a beam. Force is positive downward.
type PointLoad struct {
	Position float64
	Force    float64
}

// UDL is a uniform distributed load between Start and End with
// constant Intensity (force per unit length, positive downward).
type UDL struct {
	Start     float64
	End       float64
	Intensity float64
}

// AxialLoad is a load along the beam axis, positive toward +x.
type AxialLoad struct {
	Position float64
	Force    float64
}

// EquivalentPointLoad reduces the UDL to a single force at the segment
// centroid: F = w·L applied at (Start+End)/2.
func (u UDL) EquivalentPointLoad() PointLoad {
	return PointLoad{
		Position: (u.Start + u.End) / 2,
		Force:    u.Intensity * (u.End - u.Start),
	}
}

// Beam is a 1D statically determinate beam on two supports. Reactions
// act upward; loads act downward when positive.
type Beam struct {
	SupportA float64
	SupportB float64
	Loads    []PointLoad
	UDLs     []UDL
	Axial    []AxialLoad
}

func (b Beam) validate() error {
	if err := quant.CheckFinite("supportA", b.SupportA); err != nil {
		return err
	}
	if err := quant.CheckFinite("supportB", b.SupportB); err != nil {
		return err
	}
	if b.SupportB <= b.SupportA {
		return fmt.Errorf("%w: supportB %g must lie right of supportA %g",
			quant.ErrOutOfRange, b.SupportB, b.SupportA)
	}
	for i, l := range b.Loads {
		if err := quant.CheckFinite(fmt.Sprintf("loads[%d].Position", i), l.Position); err != nil {
			return err
		}
		if err := quant.CheckFinite(fmt.Sprintf("loads[%d].Force", i), l.Force); err != nil {
			return err
		}
	}
	for i, u := range b.UDLs {
		if err := quant.CheckFinite(fmt.Sprintf("udls[%d].Start", i), u.Start); err != nil {
			return err
		}
		if err := quant.CheckFinite(fmt.Sprintf("udls[%d].End", i), u.End); err != nil {
			return err
		}
		if err := quant.CheckFinite(fmt.Sprintf("udls[%d].Intensity", i), u.Intensity); err != nil {
			return err
		}
		if u.End < u.Start {
			return fmt.Errorf("%w: udls[%d] end %g before start %g",
				quant.ErrOutOfRange, i, u.End, u.Start)
		}
	}
	for i, a := range b.Axial {
		if err := quant.CheckFinite(fmt.Sprintf("axial[%d].Position", i), a.Position); err != nil {
			return err
		}
		if err := quant.CheckFinite(fmt.Sprintf("axial[%d].Force", i), a.Force); err != nil {
			return err
		}
	}
	return nil
}

// Reactions solves ΣF = 0 and ΣM about support A for the two support
// reactions, reducing each UDL to its equivalent point load first.
func (b Beam) Reactions() (reactionA, reactionB float64, err error) {
	if err := b.validate(); err != nil {
		return 0, 0, err
	}
	span := b.SupportB - b.SupportA

	totalForce := 0.0
	momentAboutA := 0.0
	for _, l := range b.Loads {
		totalForce += l.Force
		momentAboutA += l.Force * (l.Position - b.SupportA)
	}
	for _, u := range b.UDLs {
		eq := u.EquivalentPointLoad()
		totalForce += eq.Force
		momentAboutA += eq.Force * (eq.Position - b.SupportA)
	}

	reactionB = momentAboutA / span
	reactionA = totalForce - reactionB
	return reactionA, reactionB, nil
}

// ShearAt returns the internal shear force at x using the left-limit
// convention: reactions and loads positioned strictly left of x enter
// the sum, so the value at a discontinuity is the one just before the
// jump. Upward forces on the left segment count positive.
func (b Beam) ShearAt(x float64) (float64, error) {
	ra, rb, err := b.Reactions()
	if err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return 0, err
	}

	v := 0.0
	if b.SupportA < x {
		v += ra
	}
	if b.SupportB < x {
		v += rb
	}
	for _, l := range b.Loads {
		if l.Position < x {
			v -= l.Force
		}
	}
	for _, u := range b.UDLs {
		if x > u.Start {
			v -= u.Intensity * (math.Min(x, u.End) - u.Start)
		}
	}
	return v, nil
}

// BendingMomentAt returns the internal bending moment at x, sagging
// positive, with the same left-limit convention as ShearAt. A UDL
// contributes through its partial resultant w·L acting at the centroid
// of the loaded length left of x.
func (b Beam) BendingMomentAt(x float64) (float64, error) {
	ra, rb, err := b.Reactions()
	if err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return 0, err
	}

	m := 0.0
	if b.SupportA < x {
		m += ra * (x - b.SupportA)
	}
	if b.SupportB < x {
		m += rb * (x - b.SupportB)
	}
	for _, l := range b.Loads {
		if l.Position < x {
			m -= l.Force * (x - l.Position)
		}
	}
	for _, u := range b.UDLs {
		if x > u.Start {
			length := math.Min(x, u.End) - u.Start
			centroid := u.Start + length/2
			m -= u.Intensity * length * (x - centroid)
		}
	}
	return m, nil
}

// NormalAt returns the internal normal (axial) force at x, tension
// positive: the negated sum of axial loads strictly left of x.
func (b Beam) NormalAt(x float64) (float64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	if err := quant.CheckFinite("x", x); err != nil {
		return 0, err
	}
	n := 0.0
	for _, a := range b.Axial {
		if a.Position < x {
			n -= a.Force
		}
	}
	return n, nil
}

// ShearDiagram evaluates ShearAt at each sample position, in the order
// given.
func (b Beam) ShearDiagram(xs []float64) ([]float64, error) {
	if err := quant.CheckNonEmpty("xs", len(xs)); err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := b.ShearAt(x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BendingMomentDiagram evaluates BendingMomentAt at each sample
// position, in the order given.
func (b Beam) BendingMomentDiagram(xs []float64) ([]float64, error) {
	if err := quant.CheckNonEmpty("xs", len(xs)); err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		m, err := b.BendingMomentAt(x)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// SupportReactions solves the two-support beam for point loads only.
func SupportReactions(loads []PointLoad, supportA, supportB float64) (float64, float64, error) {
	return Beam{SupportA: supportA, SupportB: supportB, Loads: loads}.Reactions()
}

// SupportReactionsWithUDL solves the two-support beam for point loads
// plus uniform distributed loads.
func SupportReactionsWithUDL(loads []PointLoad, udls []UDL, supportA, supportB float64) (float64, float64, error) {
	return Beam{SupportA: supportA, SupportB: supportB, Loads: loads, UDLs: udls}.Reactions()
}
