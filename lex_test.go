package rpn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTokenize(t *testing.T) {
	num := func(v float64, text string, pos int) Token {
		return Token{Kind: KindNum, Num: v, Text: text, Pos: pos}
	}
	op := func(op Op, pos int) Token {
		return Token{Kind: KindOp, Op: op, Text: op.String(), Pos: pos}
	}
	paren := func(side Side, pos int) Token {
		return Token{Kind: KindParen, Side: side, Text: side.String(), Pos: pos}
	}
	cases := []struct {
		name string
		src  string
		toks []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", "   ", nil},
		{"whitespace", " \t\r\n ", nil},
		// numbers
		{"zero", "0", []Token{num(0, "0", 1)}},
		{"digits", "9876543210", []Token{num(9876543210, "9876543210", 1)}},
		{"frac", "1.5", []Token{num(1.5, "1.5", 1)}},
		{"long-frac", "3.14159", []Token{num(3.14159, "3.14159", 1)}},
		{"trailing-dot", "7.", []Token{num(7, "7.", 1)}},
		{"leading-zeros", "007.250", []Token{num(7.25, "007.250", 1)}},
		{"two-nums", "1 0", []Token{num(1, "1", 1), num(0, "0", 3)}},
		{"padded", "  42  ", []Token{num(42, "42", 3)}},
		// operators
		{"add", "12.5 + 3", []Token{num(12.5, "12.5", 1), op(OpAdd, 6), num(3, "3", 8)}},
		{"all-ops", "1+2-3*4/5", []Token{
			num(1, "1", 1), op(OpAdd, 2), num(2, "2", 3), op(OpSub, 4),
			num(3, "3", 5), op(OpMul, 6), num(4, "4", 7), op(OpDiv, 8), num(5, "5", 9),
		}},
		{"minus-is-op", "-1", []Token{op(OpSub, 1), num(1, "1", 2)}},
		{"double-op", "1--2", []Token{num(1, "1", 1), op(OpSub, 2), op(OpSub, 3), num(2, "2", 4)}},
		// parentheses
		{"parens", "(1)", []Token{paren(Open, 1), num(1, "1", 2), paren(Close, 3)}},
		{"empty-parens", "()", []Token{paren(Open, 1), paren(Close, 2)}},
		{"unbalanced", ")(", []Token{paren(Close, 1), paren(Open, 2)}},
		{"nested", "((2)*3)", []Token{
			paren(Open, 1), paren(Open, 2), num(2, "2", 3), paren(Close, 4),
			op(OpMul, 5), num(3, "3", 6), paren(Close, 7),
		}},
		{"num-at-end", "(2 * 30", []Token{paren(Open, 1), num(2, "2", 2), op(OpMul, 4), num(30, "30", 6)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: unexpected error %v", c.src, err)
			}
			if diff := cmp.Diff(c.toks, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("tokenizing %q: wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  LexError
	}{
		{"letter", "a", LexError{Text: "a", Col: 1}},
		{"after-num", "1 $", LexError{Text: "$", Col: 3}},
		{"unicode-op", "6 ÷ 2", LexError{Text: "÷", Col: 3}},
		{"after-unicode", "1+x", LexError{Text: "x", Col: 3}},
		{"exponent", "1e5", LexError{Text: "e", Col: 2}},
		{"bare-dot", ".5", LexError{Text: ".", Kind: "number", Col: 1}},
		{"second-dot", "1.5.2", LexError{Text: ".", Kind: "number", Col: 4}},
		{"bracket", "[1]", LexError{Text: "[", Col: 1}},
		{"comma", "1,2", LexError{Text: ",", Col: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q: expected error, got tokens %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("tokenizing %q: expected no tokens with error, got %v", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("tokenizing %q: error was %#v, not LexError", c.src, err)
			}
			if *lerr != c.err {
				t.Errorf("tokenizing %q: want error %+v, got %+v", c.src, c.err, *lerr)
			}
			var ierr InputError
			if !errors.As(err, &ierr) || ierr.Pos() != c.err.Col {
				t.Errorf("tokenizing %q: wrong InputError position from %v", c.src, err)
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	srcs := []string{
		"12.5 + 3",
		"(458.32 + 78 / 10) / (14.7898 - 32 * 7)",
		"1 - 2 - 3",
		"",
	}
	for _, src := range srcs {
		a, err := Tokenize(src)
		if err != nil {
			t.Fatalf("tokenizing %q: %v", src, err)
		}
		b, err := Tokenize(src)
		if err != nil {
			t.Fatalf("retokenizing %q: %v", src, err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("tokenizing %q twice gave different tokens (-first +second):\n%s", src, diff)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KindNum, Num: 12.5, Text: "12.5", Pos: 1}, "num:12.5@1"},
		{NumToken(0.25), "num:0.25"},
		{Token{Kind: KindOp, Op: OpDiv, Text: "/", Pos: 4}, "op:/@4"},
		{OpToken(OpSub), "op:-"},
		{ParenToken(Open), "paren:("},
		{Token{}, "none:$"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("wrong string for %#v: want %q, got %q", c.tok, c.want, got)
		}
	}
}
