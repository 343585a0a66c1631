package qr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/matrix"
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/qr"
)

// gonumFrom mirrors a row slice into a gonum matrix for oracle checks.
func gonumFrom(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat)
}

func TestSolve_Identity(t *testing.T) {
	eye := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, method := range implementedMethods {
		t.Run(method.String(), func(t *testing.T) {
			d, err := qr.New(mustDense(t, eye), qr.WithMethod(method))
			require.NoError(t, err)
			require.NoError(t, d.Decompose())

			b := mustDense(t, [][]float64{{1}, {2}, {3}})
			x, err := d.Solve(b)
			require.NoError(t, err)
			require.True(t, b.Equal(x))
		})
	}
}

func TestSolve_MatchesGonum(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		b    [][]float64
	}{
		{
			"square_3x3",
			[][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 4}},
			[][]float64{{4}, {5}, {6}},
		},
		{
			"least_squares_4x2",
			[][]float64{{1, 1}, {1, 2}, {1, 3}, {1, 4}},
			[][]float64{{6}, {5}, {7}, {10}},
		},
		{
			"multi_rhs_2x2",
			[][]float64{{4, -2}, {1, 3}},
			[][]float64{{10, 0}, {5, 7}},
		},
	}
	for _, tc := range cases {
		var oracle mat.Dense
		require.NoError(t, oracle.Solve(gonumFrom(tc.a), gonumFrom(tc.b)))

		for _, method := range implementedMethods {
			t.Run(tc.name+"/"+method.String(), func(t *testing.T) {
				d, err := qr.New(mustDense(t, tc.a), qr.WithMethod(method))
				require.NoError(t, err)
				require.NoError(t, d.Decompose())

				x, err := d.Solve(mustDense(t, tc.b))
				require.NoError(t, err)

				rows, cols := oracle.Dims()
				require.Equal(t, rows, x.Rows())
				require.Equal(t, cols, x.Cols())
				for i := 0; i < rows; i++ {
					for j := 0; j < cols; j++ {
						got, aerr := x.At(i, j)
						require.NoError(t, aerr)
						require.InDelta(t, oracle.At(i, j), got, 1e-8)
					}
				}
			})
		}
	}
}

func TestSolve_Underdetermined(t *testing.T) {
	// Two equations, three unknowns: the unknown beyond the pivot block
	// stays at zero and the leading triangle is solved exactly.
	a := [][]float64{{2, 0, 4}, {0, 1, 1}}
	b := [][]float64{{6}, {3}}
	want := [][]float64{{3}, {3}, {0}}

	for _, method := range implementedMethods {
		t.Run(method.String(), func(t *testing.T) {
			d, err := qr.New(mustDense(t, a), qr.WithMethod(method))
			require.NoError(t, err)
			require.NoError(t, d.Decompose())

			x, err := d.Solve(mustDense(t, b))
			require.NoError(t, err)
			require.True(t, mustDense(t, want).Equal(x))
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	d, err := qr.New(mustDense(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.NoError(t, d.Decompose())

	_, err = d.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = d.Solve(mustDense(t, [][]float64{{1}, {2}, {3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// The dependent column left R(1,1) = 0; only Solve treats that as a fault.
	_, err = d.Solve(mustDense(t, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestPseudoInverse_WellConditioned(t *testing.T) {
	rows := [][]float64{{4, 7}, {2, 6}}
	for _, method := range implementedMethods {
		t.Run(method.String(), func(t *testing.T) {
			a := mustDense(t, rows)
			d, err := qr.New(a, qr.WithMethod(method))
			require.NoError(t, err)
			require.NoError(t, d.Decompose())

			p, err := d.PseudoInverse()
			require.NoError(t, err)

			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			require.LessOrEqual(t, maxAbsDiff(t, p, inv), 1e-6)

			prod, err := matrix.Mul(p, a)
			require.NoError(t, err)
			id, err := matrix.NewIdentity(2)
			require.NoError(t, err)
			require.LessOrEqual(t, maxAbsDiff(t, prod, id), 1e-6)
		})
	}
}

func TestPseudoInverse_Tall(t *testing.T) {
	// m > n keeps R square, so the left inverse exists: P·A ≈ I.
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	d, err := qr.New(a)
	require.NoError(t, err)
	require.NoError(t, d.Decompose())

	p, err := d.PseudoInverse()
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 3, p.Cols())

	prod, err := matrix.Mul(p, a)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.LessOrEqual(t, maxAbsDiff(t, prod, id), 1e-6)
}

func TestPseudoInverse_Wide(t *testing.T) {
	d, err := qr.New(mustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}}))
	require.NoError(t, err)
	require.NoError(t, d.Decompose())

	_, err = d.PseudoInverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestPseudoInverse_RankDeficient(t *testing.T) {
	// The ridge keeps the triangle invertible where Solve would refuse;
	// entries blow up to the 1/Ridge scale but stay finite.
	d, err := qr.New(mustDense(t, [][]float64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	require.NoError(t, d.Decompose())

	p, err := d.PseudoInverse()
	require.NoError(t, err)
	for i := 0; i < p.Rows(); i++ {
		for j := 0; j < p.Cols(); j++ {
			v, aerr := p.At(i, j)
			require.NoError(t, aerr)
			require.False(t, math.IsNaN(v))
			require.False(t, math.IsInf(v, 0))
		}
	}
}
