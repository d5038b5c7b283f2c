// Package display formats evaluation results for a calculator display.
//
// Large magnitudes are shown in exponential notation and long fractions are
// rounded, the same way the calculator's screen does: 1234567890123 shows as
// "1.23457e+12" and 1/3 shows as "0.3333333333".
package display

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Options controls formatting.
type Options struct {
	// ExpThreshold is the magnitude above which results use exponential
	// notation.
	ExpThreshold float64 `yaml:"exp_threshold"`
	// ExpDigits is the number of fractional digits of the mantissa in
	// exponential notation.
	ExpDigits int `yaml:"exp_digits"`
	// MaxFraction is the most fractional digits shown in plain notation.
	// Longer fractions are rounded and their trailing zeros trimmed.
	MaxFraction int `yaml:"max_fraction"`
}

// Default returns the options of the calculator's display.
func Default() Options {
	return Options{ExpThreshold: 1e9, ExpDigits: 5, MaxFraction: 10}
}

// Format formats x for display.
func Format(x float64, o Options) string {
	if x == 0 {
		// No negative zero on the display.
		return "0"
	}
	if math.Abs(x) > o.ExpThreshold {
		return shortexp(strconv.FormatFloat(x, 'e', o.ExpDigits, 64))
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if fraction(s) <= o.MaxFraction {
		return s
	}
	return trimzeros(strconv.FormatFloat(x, 'f', o.MaxFraction, 64))
}

// FormatBig formats x for display.
func FormatBig(x *big.Float, o Options) string {
	if x.Sign() == 0 {
		return "0"
	}
	var abs big.Float
	abs.Abs(x)
	if abs.Cmp(big.NewFloat(o.ExpThreshold)) > 0 {
		return shortexp(x.Text('e', o.ExpDigits))
	}
	s := x.Text('f', -1)
	if fraction(s) <= o.MaxFraction {
		return s
	}
	return trimzeros(x.Text('f', o.MaxFraction))
}

// fraction counts the digits after the decimal point in s.
func fraction(s string) int {
	k := strings.IndexByte(s, '.')
	if k < 0 {
		return 0
	}
	return len(s) - k - 1
}

// trimzeros removes trailing zeros from a fraction, and the decimal point if
// nothing is left after it.
func trimzeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// shortexp removes leading zeros from the exponent of s, so that 1e+09 is
// written 1e+9.
func shortexp(s string) string {
	k := strings.IndexByte(s, 'e')
	if k < 0 || k+2 >= len(s) {
		return s
	}
	exp := strings.TrimLeft(s[k+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return s[:k+2] + exp
}
