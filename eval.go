package equation

import "math"

// Eval evaluates the expression in float64. The result is always finite; NaN
// and infinite intermediate values are reported as *NotFiniteError.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() (float64, error) {
	var r float64
	switch n.kind {
	case nodeNum:
		r = n.num
	case nodeConst:
		r = constants[n.name].f64
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		if n.fn.degrees {
			x = radians(x)
		}
		if r, err = n.fn.f64(x); err != nil {
			return 0, err
		}
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r = -x
	case nodeFact:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		if r, err = factorial(x); err != nil {
			return 0, err
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		x, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			r = l + x
		case nodeSub:
			r = l - x
		case nodeMul:
			r = l * x
		case nodeDiv:
			if x == 0 {
				return 0, &DivisionByZeroError{Dividend: l}
			}
			r = l / x
		case nodePow:
			r = math.Pow(l, x)
		}
	default:
		panic("equation: invalid AST node " + n.kind.String())
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &NotFiniteError{Op: n.op(), X: r}
	}
	return r, nil
}

// op names the operation a node performs, for error messages.
func (n *node) op() string {
	switch n.kind {
	case nodeNum:
		return "number " + n.name
	case nodeConst, nodeCall:
		return n.name
	case nodeNeg:
		return "-"
	case nodeFact:
		return "!"
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return binops[n.kind][1:2]
	default:
		return n.kind.String()
	}
}

// Eval is a shortcut to normalize, tokenize, parse and evaluate an equation.
func Eval(raw string) (float64, error) {
	e, err := ParseString(raw)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
