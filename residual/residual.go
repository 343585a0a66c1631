package residual

import (
	"github.com/OurPaintTeam/Math-MinimizerOptimizer-Module/expr"
)

// Residual is one scalar constraint error function: zero when the constraint
// is satisfied, signed or unsigned elsewhere depending on the kind.
//
// A Residual exclusively owns its expression tree but shares the unknowns
// (*expr.Var) with the caller and with sibling residuals; updating an unknown
// re-points every residual built on it.
type Residual struct {
	kind Kind
	vars []*expr.Var
	fn   expr.Expr
}

// Kind reports the constraint family, including the zero-target
// specializations.
func (r *Residual) Kind() Kind { return r.kind }

// Evaluate computes the current residual value from the live unknowns.
// Degenerate geometry yields IEEE Inf/NaN, never an error.
func (r *Residual) Evaluate() float64 { return r.fn.Evaluate() }

// Derivative builds the exact partial derivative tree ∂r/∂v. For an unknown
// the residual does not depend on, the result is the constant 0.
func (r *Residual) Derivative(v *expr.Var) expr.Expr { return r.fn.Derivative(v) }

// Vars returns the unknowns the residual depends on, flattened in
// constructor-argument order (per point: X then Y; per section: Begin then
// End; per circle: Center then R). The slice is a copy; the *Var entries are
// the shared unknowns themselves.
func (r *Residual) Vars() []*expr.Var {
	out := make([]*expr.Var, len(r.vars))
	copy(out, r.vars)

	return out
}

// Clone always returns ErrCloneNotSupported. Residuals cannot be duplicated:
// the copy would either alias the tree (breaking exclusive ownership) or
// silently share solver-owned unknowns.
func (r *Residual) Clone() (*Residual, error) {
	return nil, ErrCloneNotSupported
}

// String renders the kind and the owned tree for diagnostics.
func (r *Residual) String() string {
	return r.kind.String() + ": " + r.fn.String()
}
