package display

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want string
	}{
		{"int", 14, "14"},
		{"zero", 0, "0"},
		{"negzero", math.Copysign(0, -1), "0"},
		{"short-fraction", 2.5, "2.5"},
		{"third", 1.0 / 3, "0.3333333333"},
		{"rounding", 0.1 + 0.2, "0.3"},
		{"tiny", 1.23e-7, "0.000000123"},
		{"below-resolution", 1.5e-300, "0"},
		{"neg-below-resolution", -1e-11, "0"},
		{"threshold", 1e9, "1000000000"},
		{"large", 1234567890123, "1.23457e+12"},
		{"neg-large", -1234567890123, "-1.23457e+12"},
		{"power", 1e10, "1.00000e+10"},
		{"huge", 7.257415615307994e306, "7.25742e+306"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Format(c.x, Default()))
		})
	}
}

func TestFormatOptions(t *testing.T) {
	o := Options{ExpThreshold: 1e3, ExpDigits: 2, MaxFraction: 3}
	assert.Equal(t, "1.23e+4", Format(12345, o))
	assert.Equal(t, "3.142", Format(math.Pi, o))
	assert.Equal(t, "999", Format(999, o))
	assert.Equal(t, "0.5", Format(0.5, o))
}

func TestFormatBig(t *testing.T) {
	third := new(big.Float).SetPrec(128).Quo(big.NewFloat(1), big.NewFloat(3))
	cases := []struct {
		name string
		x    *big.Float
		want string
	}{
		{"int", big.NewFloat(14), "14"},
		{"zero", new(big.Float), "0"},
		{"third", third, "0.3333333333"},
		{"fraction", big.NewFloat(0.25), "0.25"},
		{"large", big.NewFloat(1234567890123), "1.23457e+12"},
		{"neg-large", big.NewFloat(-1234567890123), "-1.23457e+12"},
		{"beyond-float64", new(big.Float).SetMantExp(big.NewFloat(1), 2000), "1.14813e+602"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatBig(c.x, Default()))
		})
	}
}

func TestFormatAgrees(t *testing.T) {
	for _, x := range []float64{1, -7.5, 1.0 / 7, 2e9, 123456.789, 1e-4} {
		assert.Equal(t, Format(x, Default()), FormatBig(big.NewFloat(x), Default()), "formatting %g", x)
	}
}

func TestShortexp(t *testing.T) {
	assert.Equal(t, "1e+9", shortexp("1e+09"))
	assert.Equal(t, "1.5e-7", shortexp("1.5e-07"))
	assert.Equal(t, "1e+0", shortexp("1e+00"))
	assert.Equal(t, "123", shortexp("123"))
}
