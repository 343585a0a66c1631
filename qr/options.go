// Package qr: functional options and numeric policy constants.

package qr

import "fmt"

// RankTolerance is the residual-norm threshold at or below which a column is
// declared linearly dependent: the decomposition writes R(i,i) = 0 (and, for
// Gram-Schmidt methods, a zero Q column) instead of failing.
const RankTolerance = 1e-10

// Ridge is the Tikhonov term added to R's diagonal before inversion in
// PseudoInverse, keeping near-singular triangles invertible.
const Ridge = 1e-8

// Method names a QR factorization strategy.
type Method int

const (
	// ClassicalGramSchmidt projects each column against the original columns.
	ClassicalGramSchmidt Method = iota

	// ModifiedGramSchmidt normalizes a column, then updates the remaining
	// working columns. The default.
	ModifiedGramSchmidt

	// IterativeGramSchmidt re-orthogonalizes until a tolerance is met.
	// Recognized but not implemented.
	IterativeGramSchmidt

	// BlockGramSchmidt processes column blocks for cache efficiency.
	// Recognized but not implemented.
	BlockGramSchmidt

	// ReorderedGramSchmidt permutes columns before orthogonalization.
	// Recognized but not implemented.
	ReorderedGramSchmidt

	// PivotedGramSchmidt selects the largest remaining column each step.
	// Recognized but not implemented.
	PivotedGramSchmidt

	// Householder triangularizes with reflectors.
	Householder

	// Givens triangularizes with plane rotations.
	Givens

	methodCount // enum bound, keep last
)

// DefaultMethod is used when no WithMethod option is given.
const DefaultMethod = ModifiedGramSchmidt

// String returns the method name for diagnostics.
func (m Method) String() string {
	switch m {
	case ClassicalGramSchmidt:
		return "ClassicalGramSchmidt"
	case ModifiedGramSchmidt:
		return "ModifiedGramSchmidt"
	case IterativeGramSchmidt:
		return "IterativeGramSchmidt"
	case BlockGramSchmidt:
		return "BlockGramSchmidt"
	case ReorderedGramSchmidt:
		return "ReorderedGramSchmidt"
	case PivotedGramSchmidt:
		return "PivotedGramSchmidt"
	case Householder:
		return "Householder"
	case Givens:
		return "Givens"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Option configures a QR engine at construction.
type Option func(*QR)

// WithMethod selects the factorization strategy. Panics on a value outside
// the Method enum: passing one is a programmer error, unlike selecting a
// recognized-but-unimplemented strategy, which surfaces at Decompose as
// ErrUnsupportedMethod.
func WithMethod(m Method) Option {
	if m < 0 || m >= methodCount {
		panic(fmt.Sprintf("qr: WithMethod(%d): unknown method", int(m)))
	}

	return func(d *QR) { d.method = m }
}
