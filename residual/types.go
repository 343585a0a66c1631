package residual

import (
	"errors"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/expr"
)

// ErrCloneNotSupported is returned by Residual.Clone: residuals share caller
// unknowns and exclusively own their trees, so no copy semantics exist.
var ErrCloneNotSupported = errors.New("residual: clone not supported")

// Kind identifies the constraint family a residual was built for.
type Kind int

const (
	// PointSectionDistance constrains the distance from a point to a
	// section's carrier line to a target value.
	PointSectionDistance Kind = iota

	// PointOnSection pins a point onto the carrier line (zero distance).
	PointOnSection

	// PointPointDistance constrains the distance between two points.
	PointPointDistance

	// PointOnPoint makes two points coincide (zero distance).
	PointOnPoint

	// SectionCircleDistance constrains the distance between a section's
	// carrier line and a circle's rim.
	SectionCircleDistance

	// SectionOnCircle makes the carrier line tangent to the circle.
	SectionOnCircle

	// SectionInCircle keeps both section endpoints inside the circle.
	SectionInCircle

	// SectionSectionParallel aligns two section directions.
	SectionSectionParallel

	// SectionSectionPerpendicular makes two section directions orthogonal.
	SectionSectionPerpendicular

	// SectionSectionAngle constrains the angle between two sections
	// to a target value in radians.
	SectionSectionAngle

	// PointCircleDistance constrains the distance from a point to a
	// circle's rim.
	PointCircleDistance

	// PointOnCircle pins a point onto the circle's rim (zero distance).
	PointOnCircle
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case PointSectionDistance:
		return "PointSectionDistance"
	case PointOnSection:
		return "PointOnSection"
	case PointPointDistance:
		return "PointPointDistance"
	case PointOnPoint:
		return "PointOnPoint"
	case SectionCircleDistance:
		return "SectionCircleDistance"
	case SectionOnCircle:
		return "SectionOnCircle"
	case SectionInCircle:
		return "SectionInCircle"
	case SectionSectionParallel:
		return "SectionSectionParallel"
	case SectionSectionPerpendicular:
		return "SectionSectionPerpendicular"
	case SectionSectionAngle:
		return "SectionSectionAngle"
	case PointCircleDistance:
		return "PointCircleDistance"
	case PointOnCircle:
		return "PointOnCircle"
	default:
		return "Unknown"
	}
}

// Point is a sketch point; both coordinates are caller-owned unknowns.
type Point struct {
	X, Y *expr.Var
}

// vars flattens the point coordinates in X, Y order.
func (p Point) vars() []*expr.Var { return []*expr.Var{p.X, p.Y} }

// Section is a line segment between two sketch points. Residuals built on
// sections constrain the carrier line through Begin and End unless the kind
// says otherwise (SectionInCircle uses the endpoints themselves).
type Section struct {
	Begin, End Point
}

// vars flattens the section unknowns in Begin, End order.
func (s Section) vars() []*expr.Var { return append(s.Begin.vars(), s.End.vars()...) }

// Circle is a sketch circle with an unknown center and radius.
type Circle struct {
	Center Point
	R      *expr.Var
}

// vars flattens the circle unknowns in Center, R order.
func (c Circle) vars() []*expr.Var { return append(c.Center.vars(), c.R) }
