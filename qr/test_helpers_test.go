package qr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/qr"
)

// implementedMethods lists every strategy Decompose can actually run.
var implementedMethods = []qr.Method{
	qr.ClassicalGramSchmidt,
	qr.ModifiedGramSchmidt,
	qr.Householder,
	qr.Givens,
}

// mustDense builds a Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// maxAbsDiff returns the largest element-wise |a(i,j) - b(i,j)|.
func maxAbsDiff(t testing.TB, a, b *matrix.Dense) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())

	diff := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			if d := math.Abs(av - bv); d > diff {
				diff = d
			}
		}
	}

	return diff
}

// gramError returns the largest deviation of QᵗQ from the identity.
func gramError(t testing.TB, q *matrix.Dense) float64 {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	gram, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)

	return maxAbsDiff(t, gram, id)
}
