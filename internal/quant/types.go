package quant

// Vec2 is a pair of cartesian components. It carries no arithmetic;
// formulas that need vector math derive it from the components inline.
type Vec2 struct {
	X float64
	Y float64
}

// Vec3 is a triple of cartesian components.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// DefaultTolerance is the comparison tolerance used when a caller does
// not supply one.
const DefaultTolerance = 1e-9
