package equation

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of a normalized equation.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token. For operators it is the operator
	// rune, and for functions and constants it is the name.
	Text string
	// Num is the value of a TokenNum. It is zero for other kinds.
	Num float64
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a decimal number.
	TokenNum
	// TokenOp is one of the binary operators + - * / ^. A - may also be
	// negation; the parser decides from where it appears.
	TokenOp
	// TokenFunc is the name of a function: sin cos tan sqrt log ln abs.
	TokenFunc
	// TokenConst is the name of a constant: pi or e.
	TokenConst
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenFactorial is a postfix !.
	TokenFactorial
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenFunc:
		return "Func"
	case TokenConst:
		return "Const"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenFactorial:
		return "Factorial"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are lexed as operators.
const Operators = "+-*/^"

// identKinds maps each recognized identifier to its token kind.
var identKinds = map[string]TokenKind{
	"sin":  TokenFunc,
	"cos":  TokenFunc,
	"tan":  TokenFunc,
	"sqrt": TokenFunc,
	"log":  TokenFunc,
	"ln":   TokenFunc,
	"abs":  TokenFunc,
	"pi":   TokenConst,
	"e":    TokenConst,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	toks []Token
}

// Tokenize scans a normalized equation into tokens. Whitespace separates
// tokens and is otherwise ignored. The error, if any, is a *SyntaxError
// locating the first invalid token.
func Tokenize(s string) ([]Token, error) {
	l := lexer{src: strings.NewReader(s), rune: 1}
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.toks, nil
			}
			return nil, err
		}
		l.toks = append(l.toks, tok)
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		tok := Token{Pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(tok.Pos); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNum
			// Overlong literals parse to ±Inf with ErrRange. That is not a
			// lexical problem; evaluation rejects the infinity.
			tok.Num, _ = strconv.ParseFloat(tok.Text, 64)
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			l.scanIdent()
			tok.Text = l.buf.String()
			k, ok := identKinds[tok.Text]
			if !ok {
				return tok, l.error(tok.Pos, "unknown identifier")
			}
			tok.Kind = k
			return tok, nil
		case r == '(':
			tok.Text, tok.Kind = "(", TokenOpen
			return tok, nil
		case r == ')':
			tok.Text, tok.Kind = ")", TokenClose
			return tok, nil
		case r == '!':
			tok.Text, tok.Kind = "!", TokenFactorial
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Text, tok.Kind = string(r), TokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error(tok.Pos, "invalid character")
		}
	}
}

// scanNum scans a run of digits with at most one decimal point.
func (l *lexer) scanNum(start int) error {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			l.buf.WriteRune(r)
			if dot {
				return l.error(start, "second decimal point in number")
			}
			dot = true
			continue
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		dig = true
		l.buf.WriteRune(r)
	}
	if !dig {
		return l.error(start, "number without digits")
	}
	return nil
}

// scanIdent scans a run of letters.
func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(col int, reason string) error {
	return &SyntaxError{
		Col:    col,
		Index:  len(l.toks),
		Text:   l.buf.String(),
		Reason: reason,
	}
}
