package rpn

// ToRPN reorders infix tokens into Reverse Polish Notation using the
// shunting-yard algorithm. The result contains only number and operator
// tokens. The error, if any, is a *SyntaxError describing empty input or
// unbalanced parentheses.
//
// ToRPN checks only that parentheses balance. Other malformed input, e.g.
// "1 +", converts without error and fails when evaluated.
func ToRPN(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Col: 1, Reason: Empty}
	}
	out := make([]Token, 0, len(tokens))
	// ops holds operators and open parentheses, never close parentheses.
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case KindNum:
			out = append(out, tok)
		case KindOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != KindOp || !top.Op.outranks(tok.Op) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case KindParen:
			switch tok.Side {
			case Open:
				ops = append(ops, tok)
			case Close:
				for {
					if len(ops) == 0 {
						return nil, &SyntaxError{Col: tok.Pos, Reason: Unopened}
					}
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.Kind == KindParen {
						break
					}
					out = append(out, top)
				}
			default:
				panic("rpn: invalid parenthesis token " + tok.String())
			}
		default:
			panic("rpn: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == KindParen {
			return nil, &SyntaxError{Col: top.Pos, Reason: Unclosed}
		}
		out = append(out, top)
	}
	return out, nil
}
