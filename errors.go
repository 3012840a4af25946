package rpn

import "strconv"

// SyntaxReason is the cause of a SyntaxError.
type SyntaxReason int8

const (
	// Empty means there were no tokens to convert.
	Empty SyntaxReason = iota + 1
	// Unopened means a close parenthesis had no matching open parenthesis.
	Unopened
	// Unclosed means an open parenthesis had no matching close parenthesis.
	Unclosed
)

// SyntaxError is an error converting infix tokens to RPN. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the offending parenthesis, or 1 for empty input.
	Col int
	// Reason is the cause of the error.
	Reason SyntaxReason
}

func (err *SyntaxError) Error() string {
	switch err.Reason {
	case Empty:
		return errpos(err.Col, "no expression")
	case Unopened:
		return errpos(err.Col, "close parenthesis with no open parenthesis")
	case Unclosed:
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	default:
		return errpos(err.Col, "syntax error")
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// EvalReason is the cause of an EvalError.
type EvalReason int8

const (
	// Underflow means an operator had fewer than two operands.
	Underflow EvalReason = iota + 1
	// DivisionByZero means the divisor of a division was zero.
	DivisionByZero
	// Leftover means evaluation did not finish with exactly one value.
	Leftover
	// BadToken means the RPN contained a token that is neither a number nor
	// an operator, an unknown operator, or a number EvalBig cannot represent.
	BadToken
)

// EvalError is an error evaluating an RPN sequence.
type EvalError struct {
	// Reason is the cause of the error.
	Reason EvalReason
	// Index is the index in the RPN sequence of the token being evaluated,
	// or the length of the sequence for Leftover.
	Index int
	// Depth is the number of values on the stack at the time of the error.
	Depth int
	// Token is the token being evaluated. It is the zero token for Leftover.
	Token Token
}

func (err *EvalError) Error() string {
	at := "token " + strconv.Itoa(err.Index)
	if err.Token.Pos > 0 {
		at = errpos(err.Token.Pos, at)
	}
	switch err.Reason {
	case Underflow:
		return at + ": operator " + err.Token.text() + " needs 2 operands, have " + strconv.Itoa(err.Depth)
	case DivisionByZero:
		return at + ": division by zero"
	case Leftover:
		return "malformed expression: " + strconv.Itoa(err.Depth) + " values remain after evaluation"
	case BadToken:
		return at + ": cannot evaluate " + err.Token.String()
	default:
		return at + ": evaluation error"
	}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. LexError and SyntaxError
// implement InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
