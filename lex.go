package rpn

import (
	"strconv"
	"unicode/utf8"
)

// Tokenize scans an infix expression into tokens in source order. Numbers are
// unsigned decimal literals; a leading - is always the subtraction operator.
// Whitespace separates tokens and produces none, so an input of only
// whitespace yields no tokens and no error.
func Tokenize(text string) ([]Token, error) {
	l := lexer{src: text}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == kindNone {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// lexer holds the cursor for a single scan. It is not shared between calls.
type lexer struct {
	src string
	i   int
}

// next scans the next token. At end of input, the result is the zero token.
func (l *lexer) next() (Token, error) {
	l.skipSpace()
	if l.i >= len(l.src) {
		return Token{}, nil
	}
	c := l.src[l.i]
	switch {
	case isDigit(c):
		return l.scanNum(), nil
	case c == '(':
		return l.single(Token{Kind: KindParen, Side: Open}), nil
	case c == ')':
		return l.single(Token{Kind: KindParen, Side: Close}), nil
	}
	if op := opFor(c); op != opNone {
		return l.single(Token{Kind: KindOp, Op: op}), nil
	}
	if c == '.' {
		// A dot is only valid immediately following the digits of a number.
		return Token{}, l.error(".", "number")
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.i:])
	return Token{}, l.error(string(r), "")
}

// single consumes exactly one character as the given token.
func (l *lexer) single(tok Token) Token {
	tok.Text = l.src[l.i : l.i+1]
	tok.Pos = l.i + 1
	l.i++
	return tok
}

func (l *lexer) skipSpace() {
	for l.i < len(l.src) && isSpace(l.src[l.i]) {
		l.i++
	}
}

// scanNum scans a number. The cursor must be on a digit. The integer part is
// accumulated most significant digit first; the fractional part, if any, is
// accumulated with weights 0.1, 0.01, and so on.
func (l *lexer) scanNum() Token {
	start := l.i
	var v float64
	for l.i < len(l.src) && isDigit(l.src[l.i]) {
		v = v*10 + float64(l.src[l.i]-'0')
		l.i++
	}
	if l.i < len(l.src) && l.src[l.i] == '.' {
		l.i++
		w := 0.1
		for l.i < len(l.src) && isDigit(l.src[l.i]) {
			v += w * float64(l.src[l.i]-'0')
			w /= 10
			l.i++
		}
	}
	return Token{Kind: KindNum, Num: v, Text: l.src[start:l.i], Pos: start + 1}
}

func (l *lexer) error(text, kind string) error {
	return &LexError{
		Text: text,
		Kind: kind,
		Col:  utf8.RuneCountInString(l.src[:l.i]) + 1,
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Text is the invalid character.
	Text string
	// Kind is the type of token the character would have had to begin. This
	// is "number" for a dot with no digits before it and empty otherwise.
	Kind string
	// Col is the 1-based column of the invalid character.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" starting with "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
