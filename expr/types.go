package expr

// Var is a named scalar unknown.
//
// Unknowns are matched by pointer identity: Derivative(v) treats exactly the
// unknown v as varying and every other unknown as constant. The name is a
// diagnostic label and need not be unique.
//
// The caller owns the value. Set re-points every tree holding the reference;
// expressions store *Var, never a snapshot of its value.
type Var struct {
	name string
	val  float64
}

// NewVar returns a fresh unknown with a diagnostic name and an initial value.
func NewVar(name string, value float64) *Var {
	return &Var{name: name, val: value}
}

// Name returns the diagnostic name given at construction.
func (v *Var) Name() string { return v.name }

// Value returns the current value of the unknown.
func (v *Var) Value() float64 { return v.val }

// Set assigns a new value. Every expression referencing v observes it on the
// next Evaluate.
func (v *Var) Set(value float64) { v.val = value }

// Expr is one node of an immutable differentiable expression tree.
//
// Implementations are produced by the package constructors and guarantee:
//   - a tree exclusively owns its children (no shared subtrees, no cycles);
//   - Evaluate is pure - same unknown values, same result, no side effects;
//   - Derivative returns a brand-new tree and leaves the receiver intact;
//   - Clone deep-copies the structure while keeping *Var references intact.
type Expr interface {
	// Evaluate computes the node value from the live unknown values.
	Evaluate() float64

	// Derivative builds the exact partial derivative with respect to v.
	// For an unknown absent from the tree the result is the constant 0.
	Derivative(v *Var) Expr

	// Clone returns a structurally identical deep copy.
	Clone() Expr

	// String renders a fully parenthesized form for diagnostics.
	String() string
}
