package qr

import (
	"fmt"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// QR decomposes a dense matrix A into an orthonormal Q (m×min(m,n)) and an
// upper-triangular R (min(m,n)×n) such that Q·R ≈ A.
//
// The zero state is not usable; construct with New. A QR owns deep copies of
// everything it stores and never mutates caller matrices.
type QR struct {
	a      *matrix.Dense // snapshot of the input, never mutated
	q      *matrix.Dense // orthonormal factor, nil until Decompose
	r      *matrix.Dense // triangular factor, nil until Decompose
	method Method
}

// Operation tags used in wrapped errors.
const (
	opNew           = "New"
	opDecompose     = "Decompose"
	opSolve         = "Solve"
	opPseudoInverse = "PseudoInverse"
)

// qrErrorf wraps err with an operation tag, preserving sentinels for errors.Is.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New creates an engine over a deep copy of a, with the strategy chosen by
// options (DefaultMethod when none given).
// Returns matrix.ErrNilMatrix for nil input; Dense construction already
// excludes zero-dimension matrices, so any non-nil a is decomposable.
func New(a *matrix.Dense, opts ...Option) (*QR, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, qrErrorf(opNew, err)
	}
	d := &QR{a: a.Clone(), method: DefaultMethod}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Method reports the configured factorization strategy.
func (d *QR) Method() Method { return d.method }

// Decomposed reports whether Q and R are currently populated.
func (d *QR) Decomposed() bool { return d.q != nil && d.r != nil }

// A returns a deep copy of the stored input matrix.
func (d *QR) A() *matrix.Dense { return d.a.Clone() }

// Q returns a deep copy of the orthonormal factor, or nil before Decompose.
func (d *QR) Q() *matrix.Dense {
	if d.q == nil {
		return nil
	}

	return d.q.Clone()
}

// R returns a deep copy of the triangular factor, or nil before Decompose.
func (d *QR) R() *matrix.Dense {
	if d.r == nil {
		return nil
	}

	return d.r.Clone()
}

// Equal reports element-wise equality of the A, Q and R triples. Engines in
// different states (decomposed vs not) compare unequal unless both factors
// match; the configured method does not participate.
func (d *QR) Equal(other *QR) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !d.a.Equal(other.a) {
		return false
	}
	if (d.q == nil) != (other.q == nil) || (d.r == nil) != (other.r == nil) {
		return false
	}
	if d.q != nil && !d.q.Equal(other.q) {
		return false
	}
	if d.r != nil && !d.r.Equal(other.r) {
		return false
	}

	return true
}

// Decompose (re)builds Q and R from the stored A using the configured
// strategy. On an unsupported strategy the engine state is left untouched
// and ErrUnsupportedMethod is returned.
//
// Steps:
//  1. Allocate fresh Q (m×k) and R (k×n), k = min(m,n) (O(m·k + k·n)).
//  2. Dispatch on the method; each kernel fills Q and R in place.
//  3. Swap the fresh factors in only on success, so a failed re-run keeps
//     the previous decomposition usable.
//
// Complexity: O(m·n·k) for the Gram-Schmidt and Householder kernels;
// Givens accumulates its rotations into an m×m workspace, adding O(m²·k).
func (d *QR) Decompose() error {
	m, n := d.a.Rows(), d.a.Cols()
	k := min(m, n)

	q, err := matrix.NewDense(m, k)
	if err != nil {
		return qrErrorf(opDecompose, err)
	}
	r, err := matrix.NewDense(k, n)
	if err != nil {
		return qrErrorf(opDecompose, err)
	}

	switch d.method {
	case ClassicalGramSchmidt:
		err = d.classicalGramSchmidt(q, r)
	case ModifiedGramSchmidt:
		err = d.modifiedGramSchmidt(q, r)
	case Householder:
		err = d.householder(q, r)
	case Givens:
		err = d.givens(q, r)
	default:
		return qrErrorf(opDecompose, ErrUnsupportedMethod)
	}
	if err != nil {
		return qrErrorf(opDecompose, err)
	}

	d.q, d.r = q, r

	return nil
}

// dot returns the inner product of two equal-length vectors.
func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
