// Package qr implements the dense QR decomposition engine behind the
// constraint solver: A = Q·R with Q orthonormal and R upper triangular,
// plus least-squares solving and a regularized pseudo-inverse.
//
// A QR value is a small state machine over matrix.Dense:
//
//	qr.New(a)         // snapshots A (deep copy), state Uninitialized
//	d.Decompose()     // populates Q (m×min(m,n)) and R (min(m,n)×n)
//	d.Solve(b)        // Qᵗb followed by back-substitution
//	d.PseudoInverse() // (R + Ridge·I)⁻¹ · Qᵗ
//
// Decompose can be re-run at any time; it rebuilds Q and R from the stored A.
// Solve and PseudoInverse before a successful Decompose return
// ErrNotDecomposed.
//
// The factorization strategy is selected at construction:
//
//   - ClassicalGramSchmidt - projects each column against the original
//     columns; fastest to follow, least robust to near-dependence.
//   - ModifiedGramSchmidt (default) - normalizes then updates the remaining
//     working columns; markedly better orthogonality in floating point.
//   - Householder - reflector triangularization; orthonormal Q even for
//     rank-deficient input.
//   - Givens - plane-rotation triangularization; same robustness class as
//     Householder.
//   - IterativeGramSchmidt, BlockGramSchmidt, ReorderedGramSchmidt,
//     PivotedGramSchmidt - recognized strategy names that are not
//     implemented; Decompose reports ErrUnsupportedMethod instead of
//     silently doing nothing.
//
// Rank deficiency is not a fault: a column whose residual norm falls at or
// below RankTolerance yields R(i,i) = 0 and, for the Gram-Schmidt methods, a
// zero column of Q. The first operation that genuinely requires the missing
// rank (a zero diagonal during Solve's back-substitution, a singular
// regularized R in PseudoInverse) reports ErrSingular from the matrix layer.
//
// All computations are pure: no I/O, no logging, no global state. Diagnostics
// go through the A/Q/R accessors, which return deep copies.
//
// Complexity: Decompose O(m·n·min(m,n)), plus an O(m²·min(m,n)) rotation
// accumulation for Givens; Solve O(n²) per right-hand-side column after the
// O(m·n) projection; PseudoInverse O(n³).
package qr
