package rpn

import (
	"math/big"
	"strings"
)

// Expr is an expression compiled to RPN. It can be evaluated any number of
// times and is safe for concurrent use.
type Expr struct {
	rpn []Token
}

// Parse tokenizes an infix expression and converts it to RPN. The error, if
// any, is a *LexError or a *SyntaxError.
func Parse(text string) (*Expr, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	rpn, err := ToRPN(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return Eval(e.rpn)
}

// EvalBig evaluates the expression with the given precision in bits.
func (e *Expr) EvalBig(prec uint) (*big.Float, error) {
	return EvalBig(e.rpn, prec)
}

// RPN returns a copy of the expression's tokens in RPN order.
func (e *Expr) RPN() []Token {
	return append(([]Token)(nil), e.rpn...)
}

// String formats the expression in RPN, with tokens separated by spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text())
	}
	return b.String()
}

// EvalString is a shortcut to parse and evaluate an infix expression.
func EvalString(text string) (float64, error) {
	e, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
