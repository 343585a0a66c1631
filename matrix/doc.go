// Package matrix provides the dense linear-algebra container and kernels
// backing the QR decomposition engine.
//
// Dense is a concrete row-major float64 matrix with value semantics: Clone
// deep-copies, every kernel allocates a fresh result, and operands are never
// mutated. There is no matrix interface; one concrete type keeps the
// ownership rules checkable and the kernels on the flat-slice fast path.
//
// Surface:
//
//   - Construction: NewDense (zeros), FromRows (copy ingestion), NewIdentity
//   - Element access: At, Set, Col, SetCol - all bounds-checked, returning
//     ErrOutOfRange instead of panicking
//   - Whole-matrix: Clone, Equal (exact element-wise), String
//   - Kernels: Add, Sub, Mul, Scale, Transpose, MatVec, LU (Doolittle,
//     no pivoting), Inverse (LU + forward/backward substitution)
//
// Error discipline: all failures are package sentinels (ErrBadShape,
// ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrNilMatrix,
// ErrSingular) matched with errors.Is; kernels wrap them with an operation
// tag ("Inverse: matrix: singular matrix"). No function panics on
// user-triggered conditions. Values are plain IEEE float64 - NaN and ±Inf
// flow through arithmetic unchecked, singularity is detected structurally
// as an exact zero pivot.
//
// Determinism: fixed loop orders everywhere, no randomness, no pivoting, so
// equal inputs produce bit-equal outputs.
//
// Complexity: element access O(1); Add/Sub/Scale/Transpose O(r·c);
// Mul O(r·k·c); LU and Inverse O(n³).
package matrix
