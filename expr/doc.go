// Package expr provides scalar unknowns and differentiable expression trees,
// the building blocks of geometric constraint residuals.
//
// An expression is an immutable tree of arithmetic nodes over named unknowns
// (*Var). Every node implements the Expr interface:
//
//   - Evaluate   - compute the current value from live unknown values
//   - Derivative - build a new tree for the exact partial derivative w.r.t. one unknown
//   - Clone      - deep-copy the tree (unknown references are kept, not copied)
//   - String     - fully parenthesized rendering for diagnostics
//
// Derivatives are structural, not numeric: the sum, product, quotient and
// chain rules compose node by node, so the resulting tree can itself be
// evaluated at any configuration and differentiated again. Unknowns are
// matched by pointer identity; two variables with equal names are still
// distinct unknowns.
//
// Construction goes through smart constructors (Const, Ref, Add, Sub, Mul,
// Div, Neg, Sqrt, Abs, Acos, Square, Max) which fold constant identities
// (x+0, 1·x, 0/x, c₁+c₂, ...). Folding keeps derivative trees small and makes
// the derivative with respect to an unknown absent from a tree the literal
// constant 0, evaluating to 0 at every configuration.
//
// Every tree exclusively owns its children: constructors take ownership of
// their operands, and a caller reusing a subtree passes a Clone. Numerical
// degeneracy (√ at 0, |·| at 0, acos at ±1, division by zero) propagates as
// IEEE Inf/NaN values; no expression operation returns an error or panics.
//
// Usage:
//
//	x := expr.NewVar("x", 3)
//	y := expr.NewVar("y", 4)
//	// f = √(x² + y²)
//	f := expr.Sqrt(expr.Add(expr.Square(expr.Ref(x)), expr.Square(expr.Ref(y))))
//	f.Evaluate()          // 5
//	df := f.Derivative(x) // x / √(x² + y²), a new tree
//	df.Evaluate()         // 0.6
//	x.Set(0)              // trees read live unknown values
//	df.Evaluate()         // 0
//
// Complexity: Evaluate and Clone are O(n) in node count; Derivative builds a
// tree of size O(n) in O(n).
//
// Concurrency: expressions are immutable after construction but read unknown
// values without synchronization; callers sequence Set against Evaluate (the
// whole module is a synchronous computation core).
package expr
