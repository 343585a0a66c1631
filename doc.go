// Package mathcore is the numeric foundation of the sketch solver: a small
// family of packages that turn geometric constraints into residual values
// and derivatives, and solve the resulting linear systems.
//
// The packages layer bottom-up:
//
//	expr/     — scalar unknowns (Var) and immutable differentiable
//	            expression trees with structural differentiation
//	residual/ — geometric constraint residuals (distances, parallelism,
//	            angles, circle relations) built as expression trees over
//	            Point/Section/Circle unknowns
//	matrix/   — dense row-major float64 matrices with the linear-algebra
//	            kernels the solver needs (Mul, Transpose, LU, Inverse)
//	qr/       — QR decomposition engine (Gram-Schmidt, Householder, Givens)
//	            with least-squares Solve and a regularized pseudo-inverse
//	graph/    — standalone generic graph container, independent of the
//	            numeric stack
//
// A typical iteration evaluates each residual and its derivatives at the
// current unknown values, assembles the Jacobian as a matrix.Dense, and
// computes a correction step through qr.Solve — see the Gauss-Newton
// example in package qr.
//
// Everything is deterministic and single-threaded: no goroutines, no locks,
// no I/O. Numerical edge cases surface as IEEE NaN/Inf during evaluation,
// while structural misuse (bad shapes, nil matrices, singular triangles)
// surfaces as wrapped sentinel errors checkable with errors.Is.
package mathcore
