package expr

// add is u + v.
type add struct{ u, v Expr }

// Add returns u + v, folding constant identities: two constants collapse and
// a zero operand vanishes.
func Add(u, v Expr) Expr {
	uc, uOK := u.(constant)
	vc, vOK := v.(constant)
	switch {
	case uOK && vOK:
		return constant{v: uc.v + vc.v}
	case uOK && uc.v == 0:
		return v
	case vOK && vc.v == 0:
		return u
	}

	return add{u: u, v: v}
}

func (n add) Evaluate() float64 { return n.u.Evaluate() + n.v.Evaluate() }

// Derivative: (u + v)' = u' + v'.
func (n add) Derivative(x *Var) Expr { return Add(n.u.Derivative(x), n.v.Derivative(x)) }

func (n add) Clone() Expr    { return add{u: n.u.Clone(), v: n.v.Clone()} }
func (n add) String() string { return "(" + n.u.String() + " + " + n.v.String() + ")" }

// sub is u - v.
type sub struct{ u, v Expr }

// Sub returns u - v, folding constant identities: two constants collapse,
// a zero subtrahend yields u and a zero minuend yields -v.
func Sub(u, v Expr) Expr {
	uc, uOK := u.(constant)
	vc, vOK := v.(constant)
	switch {
	case uOK && vOK:
		return constant{v: uc.v - vc.v}
	case vOK && vc.v == 0:
		return u
	case uOK && uc.v == 0:
		return Neg(v)
	}

	return sub{u: u, v: v}
}

func (n sub) Evaluate() float64 { return n.u.Evaluate() - n.v.Evaluate() }

// Derivative: (u - v)' = u' - v'.
func (n sub) Derivative(x *Var) Expr { return Sub(n.u.Derivative(x), n.v.Derivative(x)) }

func (n sub) Clone() Expr    { return sub{u: n.u.Clone(), v: n.v.Clone()} }
func (n sub) String() string { return "(" + n.u.String() + " - " + n.v.String() + ")" }

// mul is u · v.
type mul struct{ u, v Expr }

// Mul returns u · v, folding constant identities: two constants collapse, a
// unit factor vanishes and a zero factor collapses the whole product to the
// constant 0, discarding the other operand.
func Mul(u, v Expr) Expr {
	uc, uOK := u.(constant)
	vc, vOK := v.(constant)
	switch {
	case uOK && vOK:
		return constant{v: uc.v * vc.v}
	case uOK && uc.v == 0, vOK && vc.v == 0:
		return constant{}
	case uOK && uc.v == 1:
		return v
	case vOK && vc.v == 1:
		return u
	}

	return mul{u: u, v: v}
}

func (n mul) Evaluate() float64 { return n.u.Evaluate() * n.v.Evaluate() }

// Derivative: (u·v)' = u'·v + u·v'. Operands reused across the two product
// branches are cloned so each branch owns a disjoint tree.
func (n mul) Derivative(x *Var) Expr {
	return Add(
		Mul(n.u.Derivative(x), n.v.Clone()),
		Mul(n.u.Clone(), n.v.Derivative(x)),
	)
}

func (n mul) Clone() Expr    { return mul{u: n.u.Clone(), v: n.v.Clone()} }
func (n mul) String() string { return "(" + n.u.String() + " * " + n.v.String() + ")" }

// div is u / v.
type div struct{ u, v Expr }

// Div returns u / v, folding constant identities: two constants collapse
// (IEEE semantics, so 1/0 folds to +Inf), a zero numerator collapses to the
// constant 0 and a unit denominator vanishes.
func Div(u, v Expr) Expr {
	uc, uOK := u.(constant)
	vc, vOK := v.(constant)
	switch {
	case uOK && vOK:
		return constant{v: uc.v / vc.v}
	case uOK && uc.v == 0:
		return constant{}
	case vOK && vc.v == 1:
		return u
	}

	return div{u: u, v: v}
}

func (n div) Evaluate() float64 { return n.u.Evaluate() / n.v.Evaluate() }

// Derivative: (u/v)' = (u'·v - u·v') / v².
func (n div) Derivative(x *Var) Expr {
	return Div(
		Sub(
			Mul(n.u.Derivative(x), n.v.Clone()),
			Mul(n.u.Clone(), n.v.Derivative(x)),
		),
		Square(n.v.Clone()),
	)
}

func (n div) Clone() Expr    { return div{u: n.u.Clone(), v: n.v.Clone()} }
func (n div) String() string { return "(" + n.u.String() + " / " + n.v.String() + ")" }
