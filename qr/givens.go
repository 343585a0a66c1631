package qr

import (
	"math"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

// givens fills q (m×k) and r (k×n) by plane-rotation triangularization.
//
// Steps:
//  1. Copy A's columns into a column-major workspace W.
//  2. For each pivot column j < k, rotate rows (i-1, i) bottom-up until the
//     subcolumn below W(j,j) is zero, applying each rotation to an
//     accumulator U (so W = U·A with U orthogonal).
//  3. R is the leading k rows of W with sub-tolerance diagonals zeroed;
//     Q is the leading m×k block of Uᵗ.
//
// Like the Householder kernel, Q stays fully orthonormal for rank-deficient
// input; deficiency shows only in R's zero diagonal.
func (d *QR) givens(q, r *matrix.Dense) error {
	m, n := d.a.Rows(), d.a.Cols()
	k := q.Cols()

	// Column-major copies of A and of the rotation accumulator U = I.
	w := make([][]float64, n)
	for c := 0; c < n; c++ {
		col, err := d.a.Col(c)
		if err != nil {
			return err
		}
		w[c] = col
	}
	u := make([][]float64, m)
	for c := 0; c < m; c++ {
		u[c] = make([]float64, m)
		u[c][c] = 1
	}

	rotate := func(cols [][]float64, i, cc int, cos, sin float64) {
		for _, col := range cols[cc:] {
			a, b := col[i-1], col[i]
			col[i-1] = cos*a + sin*b
			col[i] = -sin*a + cos*b
		}
	}

	for j := 0; j < k; j++ {
		for i := m - 1; i > j; i-- {
			b := w[j][i]
			if b == 0 {
				continue
			}
			a := w[j][i-1]
			rad := math.Hypot(a, b)
			cos, sin := a/rad, b/rad
			rotate(w, i, j, cos, sin) // columns left of j are already zero below row j
			rotate(u, i, 0, cos, sin)
		}
	}

	// R: leading k rows of the triangularized workspace.
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			val := w[j][i]
			if j == i && math.Abs(val) <= RankTolerance {
				val = 0
			}
			if err := r.Set(i, j, val); err != nil {
				return err
			}
		}
	}

	// Q: leading m×k block of Uᵗ; U's column i holds row i of Q.
	for i := 0; i < m; i++ {
		for c := 0; c < k; c++ {
			if err := q.Set(i, c, u[i][c]); err != nil {
				return err
			}
		}
	}

	return nil
}
