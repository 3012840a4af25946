// Package rpn implements a calculator for infix arithmetic by way of Reverse
// Polish Notation.
//
// Evaluation is a pipeline of three stages. Tokenize scans text like
// "(1.5 + 2) * 4" into tokens, ToRPN reorders the tokens with the
// shunting-yard algorithm into "1.5 2 + 4 *", and Eval runs the RPN on a
// stack to produce 14. Parse and EvalString chain the stages.
//
// Expressions contain unsigned decimal numbers, the binary operators + - * /,
// parentheses, and whitespace. Multiplication and division bind more tightly
// than addition and subtraction, and all operators are left-associative. There
// are no unary operators, so "-1" is not an expression.
//
package rpn
