package equation

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is, except that ErrNotFinite errors also match ErrDomain.
var (
	// ErrSyntax classifies malformed input.
	ErrSyntax = errors.New("syntax error")
	// ErrDivisionByZero classifies division by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain classifies functions applied outside their domains.
	ErrDomain = errors.New("domain error")
	// ErrNotFinite classifies results which are NaN or infinite.
	ErrNotFinite = errors.New("result is not finite")
)

// SyntaxError is an error indicating an invalid token or a grammar
// violation. It implements InputError.
type SyntaxError struct {
	// Col is the 1-based rune column of the offending token, or the column
	// just past the end of the input if the input ended too soon.
	Col int
	// Index is the index of the offending token in the token sequence.
	Index int
	// Text is the offending token text, if any.
	Text string
	// Reason describes the problem.
	Reason string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+": "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// DivisionByZeroError is an error indicating a divisor which evaluated to
// zero.
type DivisionByZeroError struct {
	// Dividend is the value that was to be divided.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division by zero: " + fmtnum(err.Dividend) + " / 0"
}

func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// Func is a name identifying the function, e.g. "sqrt" or "!".
	Func string
	// X is the out-of-domain argument.
	X float64
	// Reason describes the domain that was violated.
	Reason string
}

func (err *DomainError) Error() string {
	return err.Reason + ": " + err.Func + " of " + fmtnum(err.X)
}

func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// NotFiniteError is an error indicating that an operation produced NaN or an
// infinity. It is a domain error as well.
type NotFiniteError struct {
	// Op identifies the operation which produced the value.
	Op string
	// X is the value.
	X float64
}

func (err *NotFiniteError) Error() string {
	if err.Op == "" {
		return "result is not finite: " + fmtnum(err.X)
	}
	return "result is not finite: " + err.Op + " gave " + fmtnum(err.X)
}

func (err *NotFiniteError) Is(target error) bool {
	return target == ErrNotFinite || target == ErrDomain
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)

	_ error = (*DivisionByZeroError)(nil)
	_ error = (*DomainError)(nil)
	_ error = (*NotFiniteError)(nil)
)
