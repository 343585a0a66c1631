// Package residual builds differentiable constraint residuals for 2-D
// geometric sketch entities (points, sections, circles).
//
// A Residual wraps one scalar expression tree measuring how far a geometric
// constraint is from being satisfied: the residual evaluates to 0 exactly
// when the constraint holds. Solvers stack residual values into error vectors
// and exact partial derivatives (Residual.Derivative) into Jacobian rows;
// assembling those matrices is the caller's job, not this package's.
//
// Constraint kinds:
//
//   - PointSectionDistance / PointOnSection   - distance from a point to a
//     section's carrier line, minus a target (0 for the On form)
//   - PointPointDistance / PointOnPoint       - Euclidean distance between
//     two points, minus a target (0 for the On form)
//   - SectionCircleDistance / SectionOnCircle - carrier-line distance from
//     the circle center, minus radius and target (tangency when 0)
//   - SectionInCircle                         - farthest endpoint distance
//     from the center, minus radius (both endpoints inside when ≤ 0)
//   - SectionSectionParallel                  - signed cross product of the
//     two direction vectors
//   - SectionSectionPerpendicular             - dot product of the two
//     direction vectors
//   - SectionSectionAngle                     - acos of the normalized dot
//     product, minus a target angle in radians
//   - PointCircleDistance / PointOnCircle     - center distance minus radius
//     and target (point on the circle when 0)
//
// The On/In specializations are zero-target conveniences of their general
// kind; Kind still reports the specialized name for diagnostics.
//
// Geometry is referenced through shared unknowns: a Point holds two *expr.Var
// coordinates owned by the caller, so several residuals constrained on the
// same point react to one Set. Construction never fails - degenerate
// configurations (zero-length sections, coincident points) surface as IEEE
// Inf/NaN during Evaluate or derivative evaluation, not as errors.
//
// Usage:
//
//	a := residual.Point{X: expr.NewVar("ax", 0), Y: expr.NewVar("ay", 0)}
//	b := residual.Point{X: expr.NewVar("bx", 3), Y: expr.NewVar("by", 4)}
//	r := residual.NewPointPointDistance(a, b, 1)
//	r.Evaluate()           // 4: the points are 5 apart, 1 was requested
//	g := r.Derivative(b.X) // ∂r/∂bx as a reusable expression tree
//	g.Evaluate()           // 0.6
//
// Cloning a residual is not supported (the tree exclusively owns its nodes
// and the unknown set is caller-shared state): Clone returns
// ErrCloneNotSupported, never a silent shallow copy.
package residual
