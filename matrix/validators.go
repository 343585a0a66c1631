// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
// Shared fail-fast checks used by every kernel; each returns a bare sentinel
// so the kernel boundary can wrap it once with an operation tag.

package matrix

import "fmt"

// validatorErrorf adds a validator tag while preserving the sentinel for errors.Is.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape returns the first nil-violation or ErrDimensionMismatch
// when a and b differ in rows or columns.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("shape %dx%d vs %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("inner %d vs %d", a.c, b.r),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare returns ErrNonSquare when m is not square (nil-checked).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("shape %dx%d", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen returns ErrDimensionMismatch unless len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("vector length %d vs %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
