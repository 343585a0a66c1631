// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
)

//----------------------------------------------------------------------------//
// Element-wise kernels
//----------------------------------------------------------------------------//

func TestAddSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustFromRows(t, [][]float64{{11, 22}, {33, 44}})))

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustFromRows(t, [][]float64{{9, 18}, {27, 36}})))

	// Operands stay intact.
	require.True(t, a.Equal(mustFromRows(t, [][]float64{{1, 2}, {3, 4}})))

	_, err = matrix.Add(a, mustFromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {0, 4}})
	out, err := matrix.Scale(m, -0.5)
	require.NoError(t, err)
	require.True(t, out.Equal(mustFromRows(t, [][]float64{{-0.5, 1}, {0, -2}})))
}

func TestMul(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	out, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, out.Equal(mustFromRows(t, [][]float64{{19, 22}, {43, 50}})))

	// Rectangular: (2x3)·(3x1) = 2x1.
	c := mustFromRows(t, [][]float64{{1, 0, 2}, {0, 3, 1}})
	d := mustFromRows(t, [][]float64{{1}, {2}, {3}})
	out, err = matrix.Mul(c, d)
	require.NoError(t, err)
	require.True(t, out.Equal(mustFromRows(t, [][]float64{{7}, {9}})))

	_, err = matrix.Mul(a, d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	out, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.True(t, out.Equal(mustFromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})))

	// Involution: (mᵗ)ᵗ == m.
	back, err := matrix.Transpose(out)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
}

func TestMatVec(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(m, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

//----------------------------------------------------------------------------//
// LU and Inverse
//----------------------------------------------------------------------------//

func TestLU_Reconstructs(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 3}, {6, 3}})

	l, u, err := matrix.LU(m)
	require.NoError(t, err)
	require.True(t, l.Equal(mustFromRows(t, [][]float64{{1, 0}, {1.5, 1}})))
	require.True(t, u.Equal(mustFromRows(t, [][]float64{{4, 3}, {0, -1.5}})))

	prod, err := matrix.Mul(l, u)
	require.NoError(t, err)
	require.True(t, prod.Equal(m), "L·U must reconstruct the input")
}

func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// Invertible but with a zero leading pivot: the non-pivoting scheme
	// reports ErrSingular.
	_, _, err = matrix.LU(mustFromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Known(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	want := mustFromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	require.True(t, entriesWithin(t, inv, want, 1e-14), "inverse =\n%swant\n%s", inv, want)

	// m·m⁻¹ ≈ I.
	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.True(t, entriesWithin(t, prod, id, 1e-12))
}

func TestInverse_IdentityIsFixedPoint(t *testing.T) {
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	inv, err := matrix.Inverse(id)
	require.NoError(t, err)
	require.True(t, inv.Equal(id))
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(mustFromRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// Rank-deficient: second pivot vanishes exactly.
	_, err = matrix.Inverse(mustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	// 1x1 zero matrix.
	_, err = matrix.Inverse(mustFromRows(t, [][]float64{{0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_AgainstGonum cross-checks the hand-rolled LU inverse against
// gonum's on a generic well-conditioned system.
func TestInverse_AgainstGonum(t *testing.T) {
	rows := [][]float64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 0, 4},
	}
	m := mustFromRows(t, rows)

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	gm := mat.NewDense(3, 3, []float64{2, 1, 1, 1, 3, 2, 1, 0, 4})
	var ginv mat.Dense
	require.NoError(t, ginv.Inverse(gm))

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, aerr := inv.At(i, j)
			require.NoError(t, aerr)
			require.InDelta(t, ginv.At(i, j), v, 1e-12, "entry (%d,%d)", i, j)
		}
	}
}
