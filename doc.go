// Package equation implements the equation mode of a pocket calculator.
//
// An equation is whatever the user typed: numbers, + - * / and ^, unary
// minus, the functions sin, cos, tan, sqrt, log, ln and abs, the constants π
// and e, and a postfix factorial. "2^3^2" is "2^(3^2)", and "-2^2" is
// "-(2^2)". Trigonometric functions take their arguments in degrees, so
// "sin(30)" is one half.
//
// Evaluation runs in four stages: Normalize rewrites calculator symbols and
// closes any parentheses the user left open, Tokenize scans the result, Parse
// builds an expression tree, and Expr.Eval computes it. Eval runs all four.
// Every stage is a pure function of its input, so expressions may be parsed
// and evaluated from any number of goroutines at once.
//
// Errors are classified by ErrSyntax, ErrDivisionByZero, ErrDomain and
// ErrNotFinite, which can be checked with errors.Is. A result is never NaN or
// infinite.
//
package equation
