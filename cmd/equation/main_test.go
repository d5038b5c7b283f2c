package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/equation"
	"github.com/zephyrtronium/equation/display"
)

func testCalculator() *calculator {
	return &calculator{display: display.Default(), log: newLogger(io.Discard, false)}
}

func TestRun(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2+3×4", "14"},
		{"sin(30", "0.5"},
		{"1/3", "0.3333333333"},
		{"10^12+0.5", "1.00000e+12"},
		{"5!", "120"},
		{"-(3!)", "-6"},
	}
	for _, c := range cases {
		var b bytes.Buffer
		err := testCalculator().run(&b, c.src)
		require.NoError(t, err, "running %q", c.src)
		assert.Equal(t, c.want+"\n", b.String(), "running %q", c.src)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind error
		msg  string
	}{
		{"5/0", equation.ErrDivisionByZero, "Error: division by zero: 5 / 0\n"},
		{"sqrt(-4)", equation.ErrDomain, "Error: sqrt of negative: sqrt of -4\n"},
		{"()", equation.ErrSyntax, "Error: "},
		{"x", equation.ErrSyntax, "Error: "},
		{"10^400", equation.ErrNotFinite, "Error: "},
	}
	for _, c := range cases {
		var b bytes.Buffer
		err := testCalculator().run(&b, c.src)
		assert.ErrorIs(t, err, c.kind, "running %q", c.src)
		assert.True(t, strings.HasPrefix(b.String(), c.msg), "running %q gave %q", c.src, b.String())
	}
}

func TestRunBig(t *testing.T) {
	c := testCalculator()
	c.prec = 128
	var b bytes.Buffer
	require.NoError(t, c.run(&b, "25!"))
	require.NoError(t, c.run(&b, "171!"))
	require.NoError(t, c.run(&b, "(-2)^3"))
	assert.Equal(t, "1.55112e+25\n1.24102e+309\n-8\n", b.String())

	b.Reset()
	err := c.run(&b, "(-2)^0.5")
	assert.ErrorIs(t, err, equation.ErrDomain)
	assert.True(t, strings.HasPrefix(b.String(), "Error: "))
}

func TestRunRaw(t *testing.T) {
	c := testCalculator()
	c.raw = true
	var b bytes.Buffer
	require.NoError(t, c.run(&b, "1/3"))
	assert.Equal(t, "0.3333333333333333\n", b.String())
}

func TestRunEcho(t *testing.T) {
	c := testCalculator()
	c.echo = true
	var b bytes.Buffer
	require.NoError(t, c.run(&b, "1+2"))
	assert.Equal(t, "([1] + [2]) : 3\n", b.String())

	// Syntax errors have no tree to echo.
	b.Reset()
	assert.Error(t, c.run(&b, "1+"))
	assert.True(t, strings.HasPrefix(b.String(), "Error: "), "got %q", b.String())
}

func TestRunVerbose(t *testing.T) {
	var logs, out bytes.Buffer
	c := testCalculator()
	c.log = newLogger(&logs, true)
	require.NoError(t, c.run(&out, "2^10"))
	assert.Equal(t, "1024\n", out.String())
	for _, stage := range []string{"normalized", "tokenized", "parsed", "evaluated"} {
		assert.Contains(t, logs.String(), stage)
	}
}

func TestRunCountsFailures(t *testing.T) {
	c := testCalculator()
	var b bytes.Buffer
	require.NoError(t, c.lines(&b, strings.NewReader("2+2\n\n5/0\n  \nsqrt(-1)\n3!\n")))
	assert.Equal(t, 2, c.failed)
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "4", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Error: "), "got %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Error: "), "got %q", lines[2])
	assert.Equal(t, "6", lines[3])
}
