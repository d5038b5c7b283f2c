package equation

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// function is a named function of one real argument.
type function struct {
	name string
	// degrees indicates that the argument is an angle in degrees which the
	// call site converts to radians before calling f64.
	degrees bool
	// f64 computes the function in float64. It returns a *DomainError for
	// arguments outside the function's domain.
	f64 func(x float64) (float64, error)
	// arb sets z to the function of x, to the precision of z. It may panic
	// with big.ErrNaN for arguments outside the function's domain.
	arb func(z, x *big.Float) error
}

var funcs = map[string]*function{
	"sin": {name: "sin", degrees: true, f64: total(math.Sin), arb: widened(math.Sin)},
	"cos": {name: "cos", degrees: true, f64: total(math.Cos), arb: widened(math.Cos)},
	"tan": {name: "tan", degrees: true, f64: total(math.Tan), arb: widened(math.Tan)},
	"sqrt": {
		name: "sqrt",
		f64: func(x float64) (float64, error) {
			if x < 0 {
				return 0, &DomainError{Func: "sqrt", X: x, Reason: "sqrt of negative"}
			}
			return math.Sqrt(x), nil
		},
		arb: func(z, x *big.Float) error {
			if x.Sign() < 0 {
				return &DomainError{Func: "sqrt", X: f64(x), Reason: "sqrt of negative"}
			}
			z.Sqrt(x)
			return nil
		},
	},
	"log": {
		name: "log",
		f64: func(x float64) (float64, error) {
			if x <= 0 {
				return 0, &DomainError{Func: "log", X: x, Reason: "log of non-positive"}
			}
			return math.Log10(x), nil
		},
		arb: func(z, x *big.Float) error {
			if x.Sign() <= 0 {
				return &DomainError{Func: "log", X: f64(x), Reason: "log of non-positive"}
			}
			ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
			ln10 := bigfloat.Log(new(big.Float).SetPrec(z.Prec()), ten)
			z.Set(bigfloat.Log(new(big.Float).SetPrec(z.Prec()), x))
			z.Quo(z, ln10)
			return nil
		},
	},
	"ln": {
		name: "ln",
		f64: func(x float64) (float64, error) {
			if x <= 0 {
				return 0, &DomainError{Func: "ln", X: x, Reason: "log of non-positive"}
			}
			return math.Log(x), nil
		},
		arb: func(z, x *big.Float) error {
			if x.Sign() <= 0 {
				return &DomainError{Func: "ln", X: f64(x), Reason: "log of non-positive"}
			}
			z.Set(bigfloat.Log(new(big.Float).SetPrec(z.Prec()), x))
			return nil
		},
	},
	"abs": {
		name: "abs",
		f64:  total(math.Abs),
		arb: func(z, x *big.Float) error {
			z.Abs(x)
			return nil
		},
	},
}

// total wraps a function defined on all reals.
func total(f func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// widened computes a function in float64 and widens the result. Package
// bigfloat has no trigonometry, so results carry float64 precision.
func widened(f func(float64) float64) func(z, x *big.Float) error {
	return func(z, x *big.Float) error {
		r := f(f64(x))
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return &NotFiniteError{Op: "float64 approximation", X: r}
		}
		z.SetFloat64(r)
		return nil
	}
}

type constant struct {
	f64 float64
	// arb sets z to the constant to the precision of z.
	arb func(z *big.Float) *big.Float
}

var constants = map[string]constant{
	"pi": {f64: math.Pi, arb: bigPi},
	"e":  {f64: math.E, arb: bigE},
}

// bigPi and bigE set z to their constants. The bigfloat functions do not
// always store their results in their first arguments.
func bigPi(z *big.Float) *big.Float {
	return z.Set(bigfloat.Pi(new(big.Float).SetPrec(z.Prec())))
}

func bigE(z *big.Float) *big.Float {
	one := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
	return z.Set(bigfloat.Exp(new(big.Float).SetPrec(z.Prec()), one))
}

// factorial computes n! as an iterative product. Once the product overflows,
// it stays infinite, so the loop stops there.
func factorial(n float64) (float64, error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, &DomainError{Func: "!", X: n, Reason: "factorial requires a non-negative integer"}
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
		if math.IsInf(r, 1) {
			break
		}
	}
	return r, nil
}

// radians converts an angle in degrees to radians.
func radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// f64 is a shortcut to get the nearest float64 to x.
func f64(x *big.Float) float64 {
	r, _ := x.Float64()
	return r
}
