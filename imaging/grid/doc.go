// Package grid provides a dense row-major 2-D array of real samples used as
// the image type by the imaging packages.
//
// Elementwise operations require equal shapes and report [ErrShapeMismatch]
// otherwise. Division follows IEEE 754: dividing by zero yields Inf or NaN
// rather than an error.
//
// [FFTShift] and [IFFTShift] rotate a grid so that the zero-lag sample moves
// between the corner and the centre, matching the conventional fftshift
// definitions (shift by floor(n/2) and its inverse).
package grid
