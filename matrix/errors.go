// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels and methods return these sentinels and tests check them via
// errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for grepping across logs.
// Sentinels are returned bare from validators and wrapped once with an
// operation tag at the kernel boundary (matrixErrorf); callers still match
// with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows <= 0,
	// cols <= 0, or ragged row input). Creation validates before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Col/SetCol) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub on different shapes or Mul with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (LU, Inverse, NewIdentity consumers).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// inversion; the scheme does not pivot, so detection is deterministic.
	ErrSingular = errors.New("matrix: singular matrix")
)
