// Package quant provides the shared primitives for the formula packages.
//
// The package defines the value types and validation helpers every
// domain package builds on:
//
//   - [Vec2], [Vec3]: fixed-size coordinate groups with no arithmetic
//     of their own; formulas compute components explicitly
//   - sentinel errors for argument validation, wrapped with context at
//     each call site so callers can match with errors.Is
//   - [DefaultTolerance] and the Check* helpers enforcing the call
//     boundary invariants (non-negative magnitudes, finite tolerances,
//     paired slices of equal length)
//
// Every function in this module tree is pure: no state survives a call,
// and all of them are safe to use concurrently without synchronization.
package quant
