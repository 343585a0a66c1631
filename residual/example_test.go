package residual_test

import (
	"fmt"

	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/expr"
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/residual"
)

// ExampleNewPointPointDistance constrains two sketch points to sit one unit
// apart and inspects the residual and one Jacobian entry.
func ExampleNewPointPointDistance() {
	a := residual.Point{X: expr.NewVar("ax", 0), Y: expr.NewVar("ay", 0)}
	b := residual.Point{X: expr.NewVar("bx", 3), Y: expr.NewVar("by", 4)}

	r := residual.NewPointPointDistance(a, b, 1)

	fmt.Println(r.Evaluate())
	fmt.Println(r.Derivative(b.X).Evaluate())
	fmt.Println(len(r.Vars()))

	// Output:
	// 4
	// 0.6
	// 4
}

// ExampleNewSectionSectionParallel shows the signed parallelism score of two
// sections and how it reacts to moving an endpoint.
func ExampleNewSectionSectionParallel() {
	s1 := residual.Section{
		Begin: residual.Point{X: expr.NewVar("ax", 0), Y: expr.NewVar("ay", 0)},
		End:   residual.Point{X: expr.NewVar("bx", 1), Y: expr.NewVar("by", 0)},
	}
	s2 := residual.Section{
		Begin: residual.Point{X: expr.NewVar("cx", 0), Y: expr.NewVar("cy", 1)},
		End:   residual.Point{X: expr.NewVar("dx", 1), Y: expr.NewVar("dy", 1)},
	}

	r := residual.NewSectionSectionParallel(s1, s2)
	fmt.Println(r.Evaluate())

	// Tilt the second section: the residual signs the deviation.
	s2.End.Y.Set(2)
	fmt.Println(r.Evaluate())

	// Output:
	// 0
	// 1
}
