package qr

import (
	"math"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// classicalGramSchmidt fills q (m×k) and r (k×n) from the stored A.
//
// Each column of A is projected against the already-orthonormalized Q
// columns using the ORIGINAL column in every inner product (the classical
// scheme); the residual is normalized into the next Q column. A residual
// norm at or below RankTolerance marks the column dependent: R(i,i) stays 0
// and the Q column stays zero.
func (d *QR) classicalGramSchmidt(q, r *matrix.Dense) error {
	m, n := d.a.Rows(), d.a.Cols()
	k := q.Cols()

	for i := 0; i < n; i++ {
		ai, err := d.a.Col(i)
		if err != nil {
			return err
		}
		v := append([]float64(nil), ai...)

		// Project out the established directions; for columns beyond the
		// k-th there is nothing left to normalize, only R entries to fill.
		for j := 0; j < min(i, k); j++ {
			qj, err := q.Col(j)
			if err != nil {
				return err
			}
			rji := dot(qj, ai)
			if err = r.Set(j, i, rji); err != nil {
				return err
			}
			for t := 0; t < m; t++ {
				v[t] -= rji * qj[t]
			}
		}
		if i >= k {
			continue
		}

		norm := math.Sqrt(dot(v, v))
		if norm <= RankTolerance {
			continue // dependent column: R(i,i) = 0, zero Q column
		}
		if err = r.Set(i, i, norm); err != nil {
			return err
		}
		for t := 0; t < m; t++ {
			v[t] /= norm
		}
		if err = q.SetCol(i, v); err != nil {
			return err
		}
	}

	return nil
}

// modifiedGramSchmidt fills q (m×k) and r (k×n) from the stored A.
//
// The modified scheme normalizes working column i, then immediately projects
// it out of every remaining working column, so later inner products see
// already-deflated vectors. Same rank-deficiency contract as the classical
// kernel: R(i,i) = 0 and a zero Q column at or below RankTolerance.
func (d *QR) modifiedGramSchmidt(q, r *matrix.Dense) error {
	m, n := d.a.Rows(), d.a.Cols()
	k := q.Cols()
	w := d.a.Clone() // working columns, deflated in place

	for i := 0; i < k; i++ {
		vi, err := w.Col(i)
		if err != nil {
			return err
		}

		norm := math.Sqrt(dot(vi, vi))
		if norm <= RankTolerance {
			continue // dependent column: R row i and Q column i stay zero
		}
		if err = r.Set(i, i, norm); err != nil {
			return err
		}
		for t := 0; t < m; t++ {
			vi[t] /= norm
		}
		if err = q.SetCol(i, vi); err != nil {
			return err
		}

		// Deflate the remaining working columns.
		for j := i + 1; j < n; j++ {
			wj, err := w.Col(j)
			if err != nil {
				return err
			}
			rij := dot(vi, wj)
			if err = r.Set(i, j, rij); err != nil {
				return err
			}
			for t := 0; t < m; t++ {
				wj[t] -= rij * vi[t]
			}
			if err = w.SetCol(j, wj); err != nil {
				return err
			}
		}
	}

	return nil
}
