package expr

// Square returns u², built as u·clone(u) so each factor is exclusively owned.
func Square(u Expr) Expr { return Mul(u, u.Clone()) }

// Max returns max(u, v) as the algebraic composite (u + v + |u - v|) / 2,
// differentiable everywhere except at ties u = v.
func Max(u, v Expr) Expr {
	return Div(
		Add(Add(u, v), Abs(Sub(u.Clone(), v.Clone()))),
		Const(2),
	)
}
