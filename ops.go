package rpn

import (
	"math/big"
	"strconv"
)

// Op is a binary arithmetic operator.
type Op int8

const (
	opNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Operators contains the characters which are lexed as operators.
const Operators = "+-*/"

// Assoc is the associativity of an operator.
type Assoc int8

const (
	// Left groups equal-precedence operators left to right: a-b-c = (a-b)-c.
	Left Assoc = iota
)

// opFor gets the operator for a character. If the character is not an
// operator, the result is opNone.
func opFor(c byte) Op {
	switch c {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		return opNone
	}
}

// valid reports whether op is one of the four arithmetic operators.
func (op Op) valid() bool {
	return OpAdd <= op && op <= OpDiv
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Prec returns the precedence of the operator. Higher is more binding.
func (op Op) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 2
	case OpMul, OpDiv:
		return 3
	default:
		panic("rpn: precedence of invalid operator " + op.String())
	}
}

// Assoc returns the associativity of the operator.
func (op Op) Assoc() Assoc {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return Left
	default:
		panic("rpn: associativity of invalid operator " + op.String())
	}
}

// outranks reports whether op, already on the operator stack, must be output
// before in is pushed.
func (op Op) outranks(in Op) bool {
	if op.Prec() != in.Prec() {
		return op.Prec() > in.Prec()
	}
	return in.Assoc() == Left
}

// apply computes b op a, where a is the operand pushed most recently. The
// second result is false if op is division and a is zero.
func (op Op) apply(b, a float64) (float64, bool) {
	switch op {
	case OpAdd:
		return b + a, true
	case OpSub:
		return b - a, true
	case OpMul:
		return b * a, true
	case OpDiv:
		if a == 0 {
			return 0, false
		}
		return b / a, true
	default:
		panic("rpn: apply invalid operator " + op.String())
	}
}

// applyBig sets b to b op a. The result is false if op is division and a is
// zero, in which case b is unchanged.
func (op Op) applyBig(b, a *big.Float) bool {
	switch op {
	case OpAdd:
		b.Add(b, a)
	case OpSub:
		b.Sub(b, a)
	case OpMul:
		b.Mul(b, a)
	case OpDiv:
		if a.Sign() == 0 {
			return false
		}
		b.Quo(b, a)
	default:
		panic("rpn: apply invalid operator " + op.String())
	}
	return true
}
