// Package dsl implements the small command language of the qkangaroo REPL:
// call expressions over integers, rationals, q-monomials, and lists.
//
//	zeilberger(phi([q^-n, q^2], [q^3], q^(n+1)), 5, 1/3)
//	aqprod(q^1, 5, 20)
//	partitions(100)
//
// Powers of q may reference the free index n (as -n, n+1, ...), which turns
// the enclosing series into a family parameterized by n; operations that
// need a concrete series instantiate the family at their n argument.
package dsl

import "fmt"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLParen   // (
	TokenRParen   // )
	TokenLBracket // [
	TokenRBracket // ]
	TokenComma    // ,
	TokenSlash    // /
	TokenCaret    // ^
	TokenPlus     // +
	TokenMinus    // -
	TokenNumber   // 123
	TokenIdent    // zeilberger, phi, q, n
)

// Token is a single lexer token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, %d}", t.Type, t.Literal, t.Pos)
}

// Lexer tokenizes DSL input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
}

// NewLexer creates a lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		if l.ch == '#' {
			l.skipComment()
			continue
		}
		break
	}

	pos := l.pos
	single := func(t TokenType) Token {
		tok := Token{Type: t, Literal: string(l.ch), Pos: pos}
		l.readChar()
		return tok
	}

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Pos: pos}
	case l.ch == '(':
		return single(TokenLParen)
	case l.ch == ')':
		return single(TokenRParen)
	case l.ch == '[':
		return single(TokenLBracket)
	case l.ch == ']':
		return single(TokenRBracket)
	case l.ch == ',':
		return single(TokenComma)
	case l.ch == '/':
		return single(TokenSlash)
	case l.ch == '^':
		return single(TokenCaret)
	case l.ch == '+':
		return single(TokenPlus)
	case l.ch == '-':
		return single(TokenMinus)
	case isDigit(l.ch):
		return Token{Type: TokenNumber, Literal: l.readNumber(), Pos: pos}
	case isLetter(l.ch):
		return Token{Type: TokenIdent, Literal: l.readIdent(), Pos: pos}
	default:
		tok := Token{Type: TokenEOF, Literal: string(l.ch), Pos: pos}
		l.readChar()
		return tok
	}
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readIdent() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}
