package rpn

import (
	"strconv"
)

// Token is a single lexical element of an infix or RPN expression. Which
// fields are meaningful depends on Kind.
type Token struct {
	// Kind is the kind of token.
	Kind Kind
	// Num is the value of a KindNum token.
	Num float64
	// Op is the operator of a KindOp token.
	Op Op
	// Side is the side of a KindParen token.
	Side Side
	// Text is the source text of the token. It is empty for tokens built
	// with NumToken, OpToken, or ParenToken.
	Text string
	// Pos is the 1-based column of the token's first character, or 0 if the
	// token was not produced by Tokenize.
	Pos int
}

// Kind is the kind of a token.
type Kind int8

const (
	kindNone Kind = iota
	// KindNum is a number literal.
	KindNum
	// KindOp is a binary operator.
	KindOp
	// KindParen is an open or close parenthesis.
	KindParen
)

func (k Kind) String() string {
	switch k {
	case kindNone:
		return "none"
	case KindNum:
		return "num"
	case KindOp:
		return "op"
	case KindParen:
		return "paren"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Side distinguishes open and close parentheses.
type Side int8

const (
	sideNone Side = iota
	Open
	Close
)

func (s Side) String() string {
	switch s {
	case Open:
		return "("
	case Close:
		return ")"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// NumToken creates a number token with no source position.
func NumToken(v float64) Token {
	return Token{Kind: KindNum, Num: v}
}

// OpToken creates an operator token with no source position.
func OpToken(op Op) Token {
	return Token{Kind: KindOp, Op: op}
}

// ParenToken creates a parenthesis token with no source position.
func ParenToken(side Side) Token {
	return Token{Kind: KindParen, Side: side}
}

// text returns the token as it would appear in an expression.
func (t Token) text() string {
	switch t.Kind {
	case KindNum:
		if t.Text != "" {
			return t.Text
		}
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindOp:
		return t.Op.String()
	case KindParen:
		return t.Side.String()
	default:
		return "$"
	}
}

func (t Token) String() string {
	s := t.Kind.String() + ":" + t.text()
	if t.Pos > 0 {
		s += "@" + strconv.Itoa(t.Pos)
	}
	return s
}
