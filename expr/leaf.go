package expr

import "strconv"

// constant is a fixed scalar leaf.
type constant struct {
	v float64
}

// Const returns a constant-valued expression.
func Const(v float64) Expr { return constant{v: v} }

func (c constant) Evaluate() float64    { return c.v }
func (c constant) Derivative(*Var) Expr { return constant{} }
func (c constant) Clone() Expr          { return c }
func (c constant) String() string       { return strconv.FormatFloat(c.v, 'g', -1, 64) }

// varRef is a leaf reading the live value of one unknown.
type varRef struct {
	v *Var
}

// Ref returns an expression tracking the live value of the unknown v.
// Cloning a reference keeps the same *Var; identity is the contract.
func Ref(v *Var) Expr { return varRef{v: v} }

func (r varRef) Evaluate() float64 { return r.v.val }

// Derivative is 1 for the referenced unknown itself, 0 for any other.
func (r varRef) Derivative(x *Var) Expr {
	if r.v == x {
		return constant{v: 1}
	}

	return constant{}
}

func (r varRef) Clone() Expr    { return r }
func (r varRef) String() string { return r.v.name }
