// Package statics provides weighted-center computations, equilibrium
// checks, the lever law, static friction, and a two-support beam
// solver with internal-force diagrams.
//
// The center-of-mass, centroid, center-of-gravity, and
// resultant-location families all reduce to one weighted average of
// positions per dimensionality. They differ only in the sign rules on
// the weights: mass and geometric measures must be non-negative with a
// positive total, while gravity and resultant weights may be signed as
// long as the total is non-zero (a zero total leaves the center
// undefined).
//
// Beam internal forces use the left-limit convention: at a
// discontinuity (point load or reaction), only contributions strictly
// left of the query position enter the section sum, so ShearAt
// evaluated exactly at a load position returns the value just before
// the jump.
package statics
