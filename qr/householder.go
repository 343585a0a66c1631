package qr

import (
	"math"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// householder fills q (m×k) and r (k×n) by reflector triangularization.
//
// Steps:
//  1. Copy A into a working matrix W.
//  2. For each pivot column j < k: build the reflector v annihilating the
//     subcolumn below W(j,j) (sign chosen to avoid cancellation) and apply
//     H = I - 2vvᵗ/vᵗv to the remaining columns. A subcolumn norm at or
//     below RankTolerance gets no reflector.
//  3. Extract R from the leading k rows of W, zeroing sub-tolerance
//     diagonal entries.
//  4. Accumulate Q = H₀·H₁···H_{k-1} applied to the leading m×k identity
//     block, reflectors in reverse order.
//
// Unlike the Gram-Schmidt kernels, Q stays fully orthonormal even for
// rank-deficient input; deficiency shows only in R's zero diagonal.
func (d *QR) householder(q, r *matrix.Dense) error {
	m, n := d.a.Rows(), d.a.Cols()
	k := q.Cols()
	w := d.a.Clone()

	vs := make([][]float64, k) // reflector j, zero above row j; nil when skipped
	for j := 0; j < k; j++ {
		col, err := w.Col(j)
		if err != nil {
			return err
		}
		sq := 0.0
		for i := j; i < m; i++ {
			sq += col[i] * col[i]
		}
		norm := math.Sqrt(sq)
		if norm <= RankTolerance {
			continue // dependent column: no reflector, diagonal zeroed below
		}

		alpha := -norm
		if col[j] < 0 {
			alpha = norm
		}
		v := make([]float64, m)
		copy(v[j+1:], col[j+1:])
		v[j] = col[j] - alpha
		vtv := dot(v, v) // 2·norm·(norm + |col[j]|), strictly positive here

		for c := j; c < n; c++ {
			wc, err := w.Col(c)
			if err != nil {
				return err
			}
			s := 2 * dot(v, wc) / vtv
			for i := j; i < m; i++ {
				wc[i] -= s * v[i]
			}
			if err = w.SetCol(c, wc); err != nil {
				return err
			}
		}
		vs[j] = v
	}

	// R: upper part of W's leading k rows; sub-tolerance diagonals become 0.
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			val, err := w.At(i, j)
			if err != nil {
				return err
			}
			if j == i && math.Abs(val) <= RankTolerance {
				val = 0
			}
			if err = r.Set(i, j, val); err != nil {
				return err
			}
		}
	}

	// Q: reflectors applied to the identity block, last pivot first.
	for j := 0; j < k; j++ {
		if err := q.Set(j, j, 1); err != nil {
			return err
		}
	}
	for j := k - 1; j >= 0; j-- {
		v := vs[j]
		if v == nil {
			continue
		}
		vtv := dot(v, v)
		for c := 0; c < k; c++ {
			qc, err := q.Col(c)
			if err != nil {
				return err
			}
			s := 2 * dot(v, qc) / vtv
			for i := j; i < m; i++ {
				qc[i] -= s * v[i]
			}
			if err = q.SetCol(c, qc); err != nil {
				return err
			}
		}
	}

	return nil
}
