package equation

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision used by EvalBig when given a precision of 0.
const DefaultPrec = 64

// MaxFactorial is the largest argument EvalBig accepts for a factorial.
const MaxFactorial = 1 << 20

// EvalBig evaluates the expression with prec bits of precision. It follows the
// same rules as Eval, except that negative bases are allowed with integral
// exponents and factorials do not overflow. Trigonometric functions are
// computed to float64 precision.
func (e *Expr) EvalBig(prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	return e.n.evalbig(prec)
}

// evalbig computes the node's value in a new big.Float.
func (n *node) evalbig(prec uint) (*big.Float, error) {
	r := new(big.Float).SetPrec(prec)
	switch n.kind {
	case nodeNum:
		if _, _, err := r.Parse(n.name, 10); err != nil {
			panic("equation: invalid number: " + n.name + " (" + err.Error() + ")")
		}
	case nodeConst:
		constants[n.name].arb(r)
	case nodeCall:
		x, err := n.left.evalbig(prec)
		if err != nil {
			return nil, err
		}
		if n.fn.degrees {
			x.Mul(x, bigPi(new(big.Float).SetPrec(prec)))
			x.Quo(x, big.NewFloat(180))
		}
		if err := n.fn.callbig(r, x); err != nil {
			return nil, err
		}
	case nodeNeg:
		x, err := n.left.evalbig(prec)
		if err != nil {
			return nil, err
		}
		r.Neg(x)
	case nodeFact:
		x, err := n.left.evalbig(prec)
		if err != nil {
			return nil, err
		}
		if err := bigfactorial(r, x); err != nil {
			return nil, err
		}
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.evalbig(prec)
		if err != nil {
			return nil, err
		}
		x, err := n.right.evalbig(prec)
		if err != nil {
			return nil, err
		}
		switch n.kind {
		case nodeAdd:
			r.Add(l, x)
		case nodeSub:
			r.Sub(l, x)
		case nodeMul:
			r.Mul(l, x)
		case nodeDiv:
			if x.Sign() == 0 {
				return nil, &DivisionByZeroError{Dividend: f64(l)}
			}
			r.Quo(l, x)
		case nodePow:
			if err := bigpow(r, l, x); err != nil {
				return nil, err
			}
		}
	default:
		panic("equation: invalid AST node " + n.kind.String())
	}
	if r.IsInf() {
		return nil, &NotFiniteError{Op: n.op(), X: f64(r)}
	}
	return r, nil
}

// callbig calls the arbitrary-precision implementation of fn, converting
// big.ErrNaN panics into domain errors.
func (fn *function) callbig(z, x *big.Float) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		nan, ok := r.(big.ErrNaN)
		if !ok {
			panic(r)
		}
		err = &DomainError{Func: fn.name, X: f64(x), Reason: nan.Error()}
	}()
	return fn.arb(z, x)
}

// bigpow sets z to x^y. Negative bases are allowed only with integral
// exponents; otherwise the result would not be real. bigfloat.Pow does not
// always return its first argument, so z is set from its result.
func bigpow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
		return nil
	case x.Sign() == 0:
		if y.Sign() < 0 {
			return &NotFiniteError{Op: "^", X: math.Inf(1)}
		}
		z.SetInt64(0)
		return nil
	case x.Sign() > 0:
		z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), x, y))
		return nil
	case !y.IsInt():
		return &DomainError{Func: "^", X: f64(x), Reason: "negative base with fractional exponent"}
	}
	var ax big.Float
	ax.SetPrec(z.Prec()).Abs(x)
	z.Set(bigfloat.Pow(new(big.Float).SetPrec(z.Prec()), &ax, y))
	k, _ := y.Int(nil)
	if k.Bit(0) == 1 {
		z.Neg(z)
	}
	return nil
}

// bigfactorial sets z to x! by iterative product.
func bigfactorial(z, x *big.Float) error {
	if x.Sign() < 0 || !x.IsInt() {
		return &DomainError{Func: "!", X: f64(x), Reason: "factorial requires a non-negative integer"}
	}
	if x.Cmp(big.NewFloat(MaxFactorial)) > 0 {
		return &DomainError{Func: "!", X: f64(x), Reason: "factorial argument too large"}
	}
	n, _ := x.Int64()
	z.SetInt64(1)
	var k big.Float
	k.SetPrec(z.Prec())
	for i := int64(2); i <= n; i++ {
		z.Mul(z, k.SetInt64(i))
	}
	return nil
}

// EvalBig is a shortcut to normalize, tokenize, parse and evaluate an
// equation with prec bits of precision.
func EvalBig(raw string, prec uint) (*big.Float, error) {
	e, err := ParseString(raw)
	if err != nil {
		return nil, err
	}
	return e.EvalBig(prec)
}
