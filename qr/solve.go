package qr

import (
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// Solve computes the least-squares solution of A·x = b from the current
// decomposition: y = Qᵗ·b, then R·x = y by back-substitution.
//
// b must have A's row count; extra columns are solved independently, so an
// m×p right-hand side yields an n×p solution. For wide systems (m < n) the
// trailing n-m unknowns are fixed at 0 and the leading triangle is solved.
//
// Steps:
//  1. State and argument validation (ErrNotDecomposed, matrix.ErrNilMatrix,
//     matrix.ErrDimensionMismatch).
//  2. Project: y = Qᵗ·b (O(m·k·p)).
//  3. Back-substitute the upper triangle per column (O(k·n) each): a zero
//     R(i,i) - the rank-deficiency marker - reports matrix.ErrSingular.
//
// Complexity: O(m·k·p + k·n·p).
func (d *QR) Solve(b *matrix.Dense) (*matrix.Dense, error) {
	if !d.Decomposed() {
		return nil, qrErrorf(opSolve, ErrNotDecomposed)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, qrErrorf(opSolve, err)
	}
	m, n := d.a.Rows(), d.a.Cols()
	if b.Rows() != m {
		return nil, qrErrorf(opSolve, matrix.ErrDimensionMismatch)
	}

	qt, err := matrix.Transpose(d.q)
	if err != nil {
		return nil, qrErrorf(opSolve, err)
	}
	y, err := matrix.Mul(qt, b) // k×p projection of the right-hand side
	if err != nil {
		return nil, qrErrorf(opSolve, err)
	}

	k := d.q.Cols()
	p := b.Cols()
	x, err := matrix.NewDense(n, p)
	if err != nil {
		return nil, qrErrorf(opSolve, err)
	}
	for col := 0; col < p; col++ {
		for i := k - 1; i >= 0; i-- {
			sum := 0.0
			for j := i + 1; j < n; j++ {
				rij, aerr := d.r.At(i, j)
				if aerr != nil {
					return nil, qrErrorf(opSolve, aerr)
				}
				xj, aerr := x.At(j, col)
				if aerr != nil {
					return nil, qrErrorf(opSolve, aerr)
				}
				sum += rij * xj
			}
			rii, aerr := d.r.At(i, i)
			if aerr != nil {
				return nil, qrErrorf(opSolve, aerr)
			}
			if rii == 0 {
				return nil, qrErrorf(opSolve, matrix.ErrSingular)
			}
			yi, aerr := y.At(i, col)
			if aerr != nil {
				return nil, qrErrorf(opSolve, aerr)
			}
			if aerr = x.Set(i, col, (yi-sum)/rii); aerr != nil {
				return nil, qrErrorf(opSolve, aerr)
			}
		}
	}

	return x, nil
}

// PseudoInverse returns (R + Ridge·I)⁻¹ · Qᵗ, a regularized pseudo-inverse
// of A usable when plain Solve rejects a rank-deficient system.
//
// R must be square (m ≥ n); wide systems report matrix.ErrNonSquare. Faults
// from the matrix layer (a singular regularized triangle included) propagate
// unchanged. The computation is silent: inspect factors via A/Q/R.
//
// Complexity: O(n³).
func (d *QR) PseudoInverse() (*matrix.Dense, error) {
	if !d.Decomposed() {
		return nil, qrErrorf(opPseudoInverse, ErrNotDecomposed)
	}
	n := d.r.Cols()
	if d.r.Rows() != n {
		return nil, qrErrorf(opPseudoInverse, matrix.ErrNonSquare)
	}

	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}
	ridge, err := matrix.Scale(id, Ridge)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}
	reg, err := matrix.Add(d.r, ridge)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}
	rinv, err := matrix.Inverse(reg)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}
	qt, err := matrix.Transpose(d.q)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}
	out, err := matrix.Mul(rinv, qt)
	if err != nil {
		return nil, qrErrorf(opPseudoInverse, err)
	}

	return out, nil
}
