package equation

import (
	"strings"
	"unicode/utf8"
)

// expr    = term { ('+' | '-') term }
// term    = unary { ('*' | '/') unary }
// unary   = '-' unary | power
// power   = postfix [ '^' unary ]
// postfix = primary { '!' }
// primary = num | const | func '(' expr ')' | '(' expr ')'

// Expr is a parsed expression. It is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

type parser struct {
	toks []Token
	// k is the index of the next token.
	k int
	// end is the column just past the last token.
	end int
}

// Parse parses a token sequence into an expression. The error, if any, is a
// *SyntaxError whose Index is the token at which parsing failed.
func Parse(tokens []Token) (*Expr, error) {
	p := parser{toks: tokens, end: 1}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		p.end = last.Pos + utf8.RuneCountInString(last.Text)
	}
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, p.itShouldNotHaveEndedThisWay(tok)
	}
	return &Expr{n: n}, nil
}

// ParseString normalizes, tokenizes and parses an equation.
func ParseString(raw string) (*Expr, error) {
	toks, err := Tokenize(Normalize(raw))
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// peek returns the next token without consuming it. ok is false at the end of
// the input.
func (p *parser) peek() (tok Token, ok bool) {
	if p.k >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.k], true
}

// at reports whether the token i places ahead of the next one has kind k.
func (p *parser) at(i int, k TokenKind) bool {
	return p.k+i < len(p.toks) && p.toks[p.k+i].Kind == k
}

// parseterm parses a sequence of unary terms joined by left-associative
// binary operators at least as binding as until.
func (p *parser) parseterm(until operator) (*node, error) {
	n, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOp {
			return n, nil
		}
		prec := binop(tok.Text)
		if prec.right || !prec.moreBinding(until) {
			// Exponents only follow postfix terms; parsepower has already
			// taken any that belong here.
			return n, nil
		}
		p.k++
		rhs, err := p.parseterm(operator{prec: prec.prec + 1})
		if err != nil {
			return nil, err
		}
		n = &node{kind: prec.op, left: n, right: rhs}
	}
}

// parseunary parses negations and the power they apply to.
func (p *parser) parseunary() (*node, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOp || tok.Text != "-" {
		n, err := p.parseprimary()
		if err != nil {
			return nil, err
		}
		return p.parsepower(p.parsepostfix(n))
	}
	p.k++
	if p.at(0, TokenNum) && p.at(1, TokenFactorial) {
		// -n! is the factorial of the signed operand -n, the way a
		// calculator's factorial key applies to the displayed number.
		num := p.toks[p.k]
		p.k++
		n := &node{kind: nodeNum, name: "-" + num.Text, num: -num.Num}
		return p.parsepower(p.parsepostfix(n))
	}
	rhs, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNeg, left: rhs}, nil
}

// parsepower parses an optional exponent of base. The exponent is a unary
// term, so exponentiation associates to the right.
func (p *parser) parsepower(base *node) (*node, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOp || binop(tok.Text).op != nodePow {
		return base, nil
	}
	p.k++
	exp, err := p.parseunary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: base, right: exp}, nil
}

// parsepostfix wraps n in a factorial for each ! that follows it.
func (p *parser) parsepostfix(n *node) *node {
	for p.at(0, TokenFactorial) {
		p.k++
		n = &node{kind: nodeFact, left: n}
	}
	return n
}

// parseprimary parses a number, constant, call, or parenthesized expression.
func (p *parser) parseprimary() (*node, error) {
	tok, ok := p.peek()
	if !ok {
		if len(p.toks) == 0 {
			return nil, p.error(tok, "empty expression")
		}
		return nil, p.error(tok, "missing operand at end")
	}
	switch tok.Kind {
	case TokenNum:
		p.k++
		return &node{kind: nodeNum, name: tok.Text, num: tok.Num}, nil
	case TokenConst:
		p.k++
		return &node{kind: nodeConst, name: tok.Text}, nil
	case TokenFunc:
		p.k++
		if !p.at(0, TokenOpen) {
			next, _ := p.peek()
			return nil, p.error(next, "function "+tok.Text+" without (")
		}
		arg, err := p.parsegroup()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.Text, fn: funcs[tok.Text], left: arg}, nil
	case TokenOpen:
		return p.parsegroup()
	case TokenClose:
		if p.k > 0 && p.toks[p.k-1].Kind == TokenOpen {
			return nil, p.error(tok, "empty parentheses")
		}
		return nil, p.error(tok, "missing operand before )")
	case TokenOp:
		return nil, p.error(tok, "missing operand before operator")
	case TokenFactorial:
		return nil, p.error(tok, "factorial without operand")
	default:
		panic("equation: unknown token: " + tok.String())
	}
}

// parsegroup parses a parenthesized expression. The next token must be (.
func (p *parser) parsegroup() (*node, error) {
	p.k++
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	end, ok := p.peek()
	if !ok || end.Kind != TokenClose {
		return nil, p.error(end, "missing )")
	}
	p.k++
	return n, nil
}

// itShouldNotHaveEndedThisWay returns an error for a token left over after a
// complete expression.
func (p *parser) itShouldNotHaveEndedThisWay(tok Token) error {
	switch tok.Kind {
	case TokenClose:
		return p.error(tok, ") with no matching (")
	case TokenFactorial:
		return p.error(tok, "misplaced factorial")
	default:
		return p.error(tok, "unexpected "+strings.ToLower(tok.Kind.String())+" after expression")
	}
}

// error creates a syntax error at tok, which is the next token. A zero tok
// means the end of the input.
func (p *parser) error(tok Token, reason string) error {
	col := tok.Pos
	if tok.Kind == tokenNone {
		col = p.end
	}
	return &SyntaxError{Col: col, Index: p.k, Text: tok.Text, Reason: reason}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

// Depth returns the nesting depth of the expression tree.
func (e *Expr) Depth() int {
	return e.n.depth()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	return p.prec >= than.prec
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
