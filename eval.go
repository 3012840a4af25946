package rpn

import (
	"math"
	"math/big"
)

// DefaultPrec is the precision EvalBig uses when given a precision of 0.
const DefaultPrec = 64

// Eval evaluates an RPN sequence. Each operator applies to the two values
// below it on the stack, the deeper value being the left operand, so
// "8 3 -" is 5. The error, if any, is an *EvalError.
func Eval(rpn []Token) (float64, error) {
	stack := make([]float64, 0, len(rpn)/2+1)
	for i, tok := range rpn {
		switch tok.Kind {
		case KindNum:
			stack = append(stack, tok.Num)
		case KindOp:
			if !tok.Op.valid() {
				return 0, &EvalError{Reason: BadToken, Index: i, Depth: len(stack), Token: tok}
			}
			if len(stack) < 2 {
				return 0, &EvalError{Reason: Underflow, Index: i, Depth: len(stack), Token: tok}
			}
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			r, ok := tok.Op.apply(b, a)
			if !ok {
				return 0, &EvalError{Reason: DivisionByZero, Index: i, Depth: len(stack), Token: tok}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = r
		default:
			return 0, &EvalError{Reason: BadToken, Index: i, Depth: len(stack), Token: tok}
		}
	}
	if len(stack) != 1 {
		return 0, &EvalError{Reason: Leftover, Index: len(rpn), Depth: len(stack)}
	}
	return stack[0], nil
}

// EvalBig evaluates an RPN sequence like Eval, but computes with big.Float
// values of the given precision in bits. If prec is 0, DefaultPrec is used.
// Numbers which carry their source text are parsed from it at full
// precision rather than converted from Num. If the text is not a decimal
// number, Num is used instead. Numbers that are infinite or NaN cannot be
// represented and are reported as BadToken.
func EvalBig(rpn []Token, prec uint) (*big.Float, error) {
	if prec == 0 {
		prec = DefaultPrec
	}
	stack := make([]*big.Float, 0, len(rpn)/2+1)
	for i, tok := range rpn {
		switch tok.Kind {
		case KindNum:
			v, ok := bignum(tok, prec)
			if !ok {
				return nil, &EvalError{Reason: BadToken, Index: i, Depth: len(stack), Token: tok}
			}
			stack = append(stack, v)
		case KindOp:
			if !tok.Op.valid() {
				return nil, &EvalError{Reason: BadToken, Index: i, Depth: len(stack), Token: tok}
			}
			if len(stack) < 2 {
				return nil, &EvalError{Reason: Underflow, Index: i, Depth: len(stack), Token: tok}
			}
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			if !tok.Op.applyBig(b, a) {
				return nil, &EvalError{Reason: DivisionByZero, Index: i, Depth: len(stack), Token: tok}
			}
			stack = stack[:len(stack)-1]
		default:
			return nil, &EvalError{Reason: BadToken, Index: i, Depth: len(stack), Token: tok}
		}
	}
	if len(stack) != 1 {
		return nil, &EvalError{Reason: Leftover, Index: len(rpn), Depth: len(stack)}
	}
	return stack[0], nil
}

// bignum creates a new big.Float holding a number token's value. The result
// is false if the value is not finite.
func bignum(tok Token, prec uint) (*big.Float, bool) {
	r := new(big.Float).SetPrec(prec)
	if tok.Text != "" {
		if _, ok := r.SetString(tok.Text); ok && !r.IsInf() {
			return r, true
		}
	}
	if math.IsNaN(tok.Num) || math.IsInf(tok.Num, 0) {
		return nil, false
	}
	return r.SetFloat64(tok.Num), true
}
