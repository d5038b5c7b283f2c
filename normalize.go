package equation

import "strings"

// symbols rewrites calculator keys into the spellings Tokenize understands.
// π becomes the constant identifier pi. The power marker stays ^, which
// Tokenize keeps distinct from * so that exponentiation binds tighter and
// associates to the right.
var symbols = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"·", "*",
	"−", "-",
	"π", "pi",
	"**", "^",
)

// Normalize rewrites calculator symbols in raw into canonical ASCII and closes
// any parentheses left open by appending ) to the end. Excess close
// parentheses are left alone for the parser to report. Normalize is
// idempotent.
func Normalize(raw string) string {
	s := symbols.Replace(raw)
	open := strings.Count(s, "(") - strings.Count(s, ")")
	if open > 0 {
		s += strings.Repeat(")", open)
	}
	return s
}
