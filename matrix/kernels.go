// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over Dense.
// All kernels validate first, allocate one fresh result, never mutate
// operands, and walk flat slices in fixed row-major order.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for substitution and dot loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation tags for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign·b for sign ∈ {+1, -1}.
// Shared validation and loop for Add/Sub.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r·c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b.
//
// Steps:
//  1. Validate operands non-nil and inner dimensions equal (O(1)).
//  2. Allocate the rows(a)×cols(b) result (O(r·c)).
//  3. Triple loop in i→k→j order so the inner walk is row-contiguous
//     for both a and b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·k·c), Memory O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		baseA := i * a.c
		baseO := i * b.c
		for k := 0; k < a.c; k++ {
			aik := a.data[baseA+k]
			baseB := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[baseO+j] += aik * b.data[baseB+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵗ.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix. Complexity: O(r·c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out, nil
}

// MatVec returns the matrix-vector product m·x as a fresh slice.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r·c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		sum := ZeroSum
		base := i * m.c
		for j := 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// LU performs the Doolittle decomposition m = L·U without pivoting:
// L unit lower triangular, U upper triangular.
//
// Steps:
//  1. Validate m non-nil and square (O(1)).
//  2. Allocate L (unit diagonal) and U (O(n²)).
//  3. For each i: fill U row i (j ≥ i), guard the pivot U[i][i],
//     then fill L column i (j > i).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular on an exact zero pivot
// (no pivoting means some invertible inputs with zero leading minors are
// rejected; the QR path handles those).
// Complexity: Time O(n³), Memory O(n²).
func LU(m *Dense) (l, u *Dense, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.r
	l = &Dense{r: n, c: n, data: make([]float64, n*n)}
	u = &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var sum float64
	for i := 0; i < n; i++ {
		baseI := i * n
		// U[i][j] for j >= i
		for j := i; j < n; j++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}
		pivot := u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L[j][i] for j > i
		for j := i + 1; j < n; j++ {
			baseJ := j * n
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse returns m⁻¹ via LU decomposition and per-column substitution.
//
// Steps:
//  1. Validate m non-nil and square (O(1)).
//  2. LU-decompose (O(n³)); ErrSingular propagates.
//  3. For each unit vector e_col: forward-substitute L·y = e_col, then
//     backward-substitute U·x = y, writing x into the result column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Memory O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	y := make([]float64, n)
	x := make([]float64, n)
	var sum, pivot float64
	for col := 0; col < n; col++ {
		// Forward substitution: L·y = e_col
		for i := 0; i < n; i++ {
			sum = ZeroSum
			baseI := i * n
			for k := 0; k < i; k++ {
				sum += l.data[baseI+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseI := i * n
			for k := i + 1; k < n; k++ {
				sum += u.data[baseI+k] * x[k]
			}
			pivot = u.data[baseI+i]
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
