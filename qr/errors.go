// Package qr: sentinel error set.
// Matrix-class faults (nil input, dimension mismatch, singularity) propagate
// from the matrix package unchanged, so errors.Is works across the boundary;
// this file holds only the engine's own states.

package qr

import "errors"

var (
	// ErrNotDecomposed is returned by Solve and PseudoInverse before a
	// successful Decompose populated Q and R.
	ErrNotDecomposed = errors.New("qr: matrix not decomposed")

	// ErrUnsupportedMethod is returned by Decompose for recognized strategy
	// names without an implementation (Iterative/Block/Reordered/Pivoted
	// Gram-Schmidt). Selecting one is not a programmer error; running it is
	// reported, never ignored.
	ErrUnsupportedMethod = errors.New("qr: unsupported decomposition method")
)
