package residual

import (
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/expr"
)

// Tree-building helpers. Each call mints fresh leaves, so every constructed
// residual exclusively owns its nodes.

// diff returns (to - from) as an expression.
func diff(from, to *expr.Var) expr.Expr {
	return expr.Sub(expr.Ref(to), expr.Ref(from))
}

// distance returns the Euclidean distance ‖b - a‖.
func distance(a, b Point) expr.Expr {
	return expr.Sqrt(expr.Add(
		expr.Square(diff(a.X, b.X)),
		expr.Square(diff(a.Y, b.Y)),
	))
}

// length returns the section length ‖End - Begin‖.
func length(s Section) expr.Expr { return distance(s.Begin, s.End) }

// dirX and dirY return the components of the section direction End - Begin.
func dirX(s Section) expr.Expr { return diff(s.Begin.X, s.End.X) }
func dirY(s Section) expr.Expr { return diff(s.Begin.Y, s.End.Y) }

// lineDistance returns the distance from p to the carrier line of s:
// |(End-Begin) × (p-Begin)| / ‖End-Begin‖. Zero-length sections divide by
// zero and evaluate to NaN.
func lineDistance(p Point, s Section) expr.Expr {
	cross := expr.Sub(
		expr.Mul(dirX(s), diff(s.Begin.Y, p.Y)),
		expr.Mul(dirY(s), diff(s.Begin.X, p.X)),
	)

	return expr.Div(expr.Abs(cross), length(s))
}

// flatten concatenates unknown groups in argument order.
func flatten(groups ...[]*expr.Var) []*expr.Var {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]*expr.Var, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// NewPointSectionDistance constrains the distance from p to the carrier line
// of s to the target value.
func NewPointSectionDistance(p Point, s Section, target float64) *Residual {
	return &Residual{
		kind: PointSectionDistance,
		vars: flatten(p.vars(), s.vars()),
		fn:   expr.Sub(lineDistance(p, s), expr.Const(target)),
	}
}

// NewPointOnSection pins p onto the carrier line of s (zero distance).
func NewPointOnSection(p Point, s Section) *Residual {
	r := NewPointSectionDistance(p, s, 0)
	r.kind = PointOnSection

	return r
}

// NewPointPointDistance constrains the distance between a and b to the
// target value.
func NewPointPointDistance(a, b Point, target float64) *Residual {
	return &Residual{
		kind: PointPointDistance,
		vars: flatten(a.vars(), b.vars()),
		fn:   expr.Sub(distance(a, b), expr.Const(target)),
	}
}

// NewPointOnPoint makes a and b coincide (zero distance).
func NewPointOnPoint(a, b Point) *Residual {
	r := NewPointPointDistance(a, b, 0)
	r.kind = PointOnPoint

	return r
}

// NewSectionCircleDistance constrains the gap between the carrier line of s
// and the rim of c to the target value (measured from the near side).
func NewSectionCircleDistance(s Section, c Circle, target float64) *Residual {
	return &Residual{
		kind: SectionCircleDistance,
		vars: flatten(s.vars(), c.vars()),
		fn: expr.Sub(
			expr.Sub(lineDistance(c.Center, s), expr.Ref(c.R)),
			expr.Const(target),
		),
	}
}

// NewSectionOnCircle makes the carrier line of s tangent to c (zero gap).
func NewSectionOnCircle(s Section, c Circle) *Residual {
	r := NewSectionCircleDistance(s, c, 0)
	r.kind = SectionOnCircle

	return r
}

// NewSectionInCircle keeps both endpoints of s inside c: the residual is the
// distance from the center to the farther endpoint minus the radius, so it
// is ≤ 0 exactly when the whole section fits.
func NewSectionInCircle(s Section, c Circle) *Residual {
	return &Residual{
		kind: SectionInCircle,
		vars: flatten(s.vars(), c.vars()),
		fn: expr.Sub(
			expr.Max(distance(c.Center, s.Begin), distance(c.Center, s.End)),
			expr.Ref(c.R),
		),
	}
}

// NewSectionSectionParallel aligns the directions of s1 and s2. The residual
// is the signed cross product of the direction vectors: 0 for parallel (or
// anti-parallel) sections, and it scales with the direction lengths.
func NewSectionSectionParallel(s1, s2 Section) *Residual {
	return &Residual{
		kind: SectionSectionParallel,
		vars: flatten(s1.vars(), s2.vars()),
		fn: expr.Sub(
			expr.Mul(dirX(s1), dirY(s2)),
			expr.Mul(dirY(s1), dirX(s2)),
		),
	}
}

// NewSectionSectionPerpendicular makes the directions of s1 and s2
// orthogonal. The residual is the signed dot product of the directions.
func NewSectionSectionPerpendicular(s1, s2 Section) *Residual {
	return &Residual{
		kind: SectionSectionPerpendicular,
		vars: flatten(s1.vars(), s2.vars()),
		fn: expr.Add(
			expr.Mul(dirX(s1), dirX(s2)),
			expr.Mul(dirY(s1), dirY(s2)),
		),
	}
}

// NewSectionSectionAngle constrains the angle between s1 and s2 to the
// target value in radians. The residual is acos of the normalized dot
// product minus the target; zero-length sections evaluate to NaN.
func NewSectionSectionAngle(s1, s2 Section, angle float64) *Residual {
	dot := expr.Add(
		expr.Mul(dirX(s1), dirX(s2)),
		expr.Mul(dirY(s1), dirY(s2)),
	)

	return &Residual{
		kind: SectionSectionAngle,
		vars: flatten(s1.vars(), s2.vars()),
		fn: expr.Sub(
			expr.Acos(expr.Div(dot, expr.Mul(length(s1), length(s2)))),
			expr.Const(angle),
		),
	}
}

// NewPointCircleDistance constrains the gap between p and the rim of c to
// the target value (positive outside the circle, negative inside).
func NewPointCircleDistance(p Point, c Circle, target float64) *Residual {
	return &Residual{
		kind: PointCircleDistance,
		vars: flatten(p.vars(), c.vars()),
		fn: expr.Sub(
			expr.Sub(distance(c.Center, p), expr.Ref(c.R)),
			expr.Const(target),
		),
	}
}

// NewPointOnCircle pins p onto the rim of c (zero gap).
func NewPointOnCircle(p Point, c Circle) *Residual {
	r := NewPointCircleDistance(p, c, 0)
	r.kind = PointOnCircle

	return r
}
