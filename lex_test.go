package equation

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
		// col is the column of the expected error, or 0 for none.
		col int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []Token{{Kind: TokenNum, Text: "0", Num: 0, Pos: 1}}, 0},
		{"9876543210", []Token{{Kind: TokenNum, Text: "9876543210", Num: 9876543210, Pos: 1}}, 0},
		{"1 0", []Token{{Kind: TokenNum, Text: "1", Num: 1, Pos: 1}, {Kind: TokenNum, Text: "0", Num: 0, Pos: 3}}, 0},
		{"1.5", []Token{{Kind: TokenNum, Text: "1.5", Num: 1.5, Pos: 1}}, 0},
		{".5", []Token{{Kind: TokenNum, Text: ".5", Num: 0.5, Pos: 1}}, 0},
		{"5.", []Token{{Kind: TokenNum, Text: "5.", Num: 5, Pos: 1}}, 0},
		{"-1", []Token{{Kind: TokenOp, Text: "-", Pos: 1}, {Kind: TokenNum, Text: "1", Num: 1, Pos: 2}}, 0},
		{"1.1.1", nil, 1},
		{"1..1", nil, 1},
		{"2+1.1.1", nil, 3},
		{".", nil, 1},
		{"1+0", []Token{{Kind: TokenNum, Text: "1", Num: 1, Pos: 1}, {Kind: TokenOp, Text: "+", Pos: 2}, {Kind: TokenNum, Text: "0", Num: 0, Pos: 3}}, 0},
		// identifiers
		{"e", []Token{{Kind: TokenConst, Text: "e", Pos: 1}}, 0},
		{"pi", []Token{{Kind: TokenConst, Text: "pi", Pos: 1}}, 0},
		{"sqrt(", []Token{{Kind: TokenFunc, Text: "sqrt", Pos: 1}, {Kind: TokenOpen, Text: "(", Pos: 5}}, 0},
		{"ln 2", []Token{{Kind: TokenFunc, Text: "ln", Pos: 1}, {Kind: TokenNum, Text: "2", Num: 2, Pos: 4}}, 0},
		{"2e", []Token{{Kind: TokenNum, Text: "2", Num: 2, Pos: 1}, {Kind: TokenConst, Text: "e", Pos: 2}}, 0},
		{"x", nil, 1},
		{"sine", nil, 1},
		{"SIN", nil, 1},
		{"2*x", nil, 3},
		{"π", nil, 1},
		// operators and postfix
		{"^", []Token{{Kind: TokenOp, Text: "^", Pos: 1}}, 0},
		{"*/", []Token{{Kind: TokenOp, Text: "*", Pos: 1}, {Kind: TokenOp, Text: "/", Pos: 2}}, 0},
		{"5!", []Token{{Kind: TokenNum, Text: "5", Num: 5, Pos: 1}, {Kind: TokenFactorial, Text: "!", Pos: 2}}, 0},
		{"!!", []Token{{Kind: TokenFactorial, Text: "!", Pos: 1}, {Kind: TokenFactorial, Text: "!", Pos: 2}}, 0},
		// brackets
		{"()", []Token{{Kind: TokenOpen, Text: "(", Pos: 1}, {Kind: TokenClose, Text: ")", Pos: 2}}, 0},
		// erroneous symbols
		{"$", nil, 1},
		{"1$", nil, 2},
		{"[1]", nil, 1},
		{"1,2", nil, 2},
		{"×", nil, 1},
	}

	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if c.col != 0 {
			if err == nil {
				t.Errorf("scanning %q: expected error at %d, got tokens %v", c.src, c.col, toks)
				continue
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("scanning %q: error %#v is not *SyntaxError", c.src, err)
				continue
			}
			if se.Col != c.col {
				t.Errorf("scanning %q: want error at %d, got %d: %v", c.src, c.col, se.Col, err)
			}
			if toks != nil {
				t.Errorf("scanning %q: got tokens %v with error", c.src, toks)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, toks)
			continue
		}
		for i, want := range c.tokens {
			if toks[i] != want {
				t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, toks[i])
			}
		}
	}
}

func TestLexErrorIndex(t *testing.T) {
	cases := []struct {
		src   string
		index int
	}{
		{"$", 0},
		{"1+$", 2},
		{"sin(1.2.3)", 2},
		{"(1) unknown", 3},
	}
	for _, c := range cases {
		_, err := Tokenize(c.src)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("scanning %q: error %#v is not *SyntaxError", c.src, err)
			continue
		}
		if se.Index != c.index {
			t.Errorf("scanning %q: want token index %d, got %d", c.src, c.index, se.Index)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("scanning %q: %v is not ErrSyntax", c.src, err)
		}
	}
}
