package expr

import "math"

// neg is -u.
type neg struct{ u Expr }

// Neg returns -u. A constant folds in place and a double negation unwraps.
func Neg(u Expr) Expr {
	switch n := u.(type) {
	case constant:
		return constant{v: -n.v}
	case neg:
		return n.u
	}

	return neg{u: u}
}

func (n neg) Evaluate() float64 { return -n.u.Evaluate() }

// Derivative: (-u)' = -u'.
func (n neg) Derivative(x *Var) Expr { return Neg(n.u.Derivative(x)) }

func (n neg) Clone() Expr    { return neg{u: n.u.Clone()} }
func (n neg) String() string { return "(-" + n.u.String() + ")" }

// sqrt is √u.
type sqrt struct{ u Expr }

// Sqrt returns √u; a constant operand folds in place.
func Sqrt(u Expr) Expr {
	if c, ok := u.(constant); ok {
		return constant{v: math.Sqrt(c.v)}
	}

	return sqrt{u: u}
}

func (n sqrt) Evaluate() float64 { return math.Sqrt(n.u.Evaluate()) }

// Derivative: (√u)' = u' / (2·√u). Not defined at u = 0; the quotient then
// evaluates to ±Inf or NaN instead of faulting.
func (n sqrt) Derivative(x *Var) Expr {
	return Div(n.u.Derivative(x), Mul(Const(2), Sqrt(n.u.Clone())))
}

func (n sqrt) Clone() Expr    { return sqrt{u: n.u.Clone()} }
func (n sqrt) String() string { return "sqrt(" + n.u.String() + ")" }

// abs is |u|.
type abs struct{ u Expr }

// Abs returns |u|; a constant operand folds in place.
func Abs(u Expr) Expr {
	if c, ok := u.(constant); ok {
		return constant{v: math.Abs(c.v)}
	}

	return abs{u: u}
}

func (n abs) Evaluate() float64 { return math.Abs(n.u.Evaluate()) }

// Derivative: |u|' = u·u' / |u|, i.e. sign(u)·u'. Not defined at u = 0, where
// the quotient evaluates to NaN.
func (n abs) Derivative(x *Var) Expr {
	return Div(Mul(n.u.Clone(), n.u.Derivative(x)), Abs(n.u.Clone()))
}

func (n abs) Clone() Expr    { return abs{u: n.u.Clone()} }
func (n abs) String() string { return "abs(" + n.u.String() + ")" }

// acos is arccos(u).
type acos struct{ u Expr }

// Acos returns arccos(u); a constant operand folds in place.
func Acos(u Expr) Expr {
	if c, ok := u.(constant); ok {
		return constant{v: math.Acos(c.v)}
	}

	return acos{u: u}
}

func (n acos) Evaluate() float64 { return math.Acos(n.u.Evaluate()) }

// Derivative: (acos u)' = -u' / √(1 - u²). Not defined at u = ±1.
func (n acos) Derivative(x *Var) Expr {
	return Neg(Div(
		n.u.Derivative(x),
		Sqrt(Sub(Const(1), Square(n.u.Clone()))),
	))
}

func (n acos) Clone() Expr    { return acos{u: n.u.Clone()} }
func (n acos) String() string { return "acos(" + n.u.String() + ")" }
