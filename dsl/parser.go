package dsl

import (
	"fmt"
	"strconv"
)

// Node is a parsed expression.
type Node interface{ node() }

// CallNode is name(arg, ...).
type CallNode struct {
	Name string
	Args []Node
}

// NumberNode is an integer or rational literal a/b.
type NumberNode struct {
	Num int64
	Den int64
}

// MonoNode is a q-power q^(NCoeff*n + Const). A concrete power has
// NCoeff == 0; a nonzero NCoeff references the free family index n.
type MonoNode struct {
	NCoeff int64
	Const  int64
}

// ListNode is [item, ...].
type ListNode struct {
	Items []Node
}

// IdentNode is a bare identifier argument such as inf.
type IdentNode struct {
	Name string
}

func (CallNode) node()   {}
func (NumberNode) node() {}
func (MonoNode) node()   {}
func (ListNode) node()   {}
func (IdentNode) node()  {}

// Parser is a recursive-descent parser over the lexer's token stream.
type Parser struct {
	lex  *Lexer
	cur  Token
	peek Token
}

// NewParser creates a parser for the given input.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errf(format string, args ...any) error {
	return fmt.Errorf("parse error at %d: %s", p.cur.Pos, fmt.Sprintf(format, args...))
}

func (p *Parser) expect(t TokenType, what string) error {
	if p.cur.Type != t {
		return p.errf("expected %s, got %q", what, p.cur.Literal)
	}
	p.next()
	return nil
}

// Parse parses a single expression and requires the input to be consumed.
func (p *Parser) Parse() (Node, error) {
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, p.errf("unexpected trailing input %q", p.cur.Literal)
	}
	return n, nil
}

func (p *Parser) parseExpr() (Node, error) {
	switch p.cur.Type {
	case TokenMinus:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		num, ok := inner.(NumberNode)
		if !ok {
			return nil, p.errf("unary minus applies only to numbers")
		}
		return NumberNode{Num: -num.Num, Den: num.Den}, nil

	case TokenNumber:
		return p.parseNumber()

	case TokenLBracket:
		return p.parseList()

	case TokenIdent:
		if p.cur.Literal == "q" {
			return p.parseQPower()
		}
		if p.peek.Type == TokenLParen {
			return p.parseCall()
		}
		name := p.cur.Literal
		p.next()
		return IdentNode{Name: name}, nil

	default:
		return nil, p.errf("unexpected token %q", p.cur.Literal)
	}
}

func (p *Parser) parseNumber() (Node, error) {
	num, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		return nil, p.errf("bad integer %q", p.cur.Literal)
	}
	p.next()
	if p.cur.Type != TokenSlash {
		return NumberNode{Num: num, Den: 1}, nil
	}
	p.next()
	if p.cur.Type != TokenNumber {
		return nil, p.errf("expected denominator after /")
	}
	den, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil || den == 0 {
		return nil, p.errf("bad denominator %q", p.cur.Literal)
	}
	p.next()
	return NumberNode{Num: num, Den: den}, nil
}

func (p *Parser) parseList() (Node, error) {
	p.next() // [
	var items []Node
	if p.cur.Type == TokenRBracket {
		p.next()
		return ListNode{}, nil
	}
	for {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.cur.Type == TokenComma {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(TokenRBracket, "]"); err != nil {
		return nil, err
	}
	return ListNode{Items: items}, nil
}

func (p *Parser) parseCall() (Node, error) {
	name := p.cur.Literal
	p.next() // name
	p.next() // (
	var args []Node
	if p.cur.Type == TokenRParen {
		p.next()
		return CallNode{Name: name}, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == TokenComma {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(TokenRParen, ")"); err != nil {
		return nil, err
	}
	return CallNode{Name: name, Args: args}, nil
}

// parseQPower parses q, q^5, q^-n, q^(n+1), q^(-n+2).
func (p *Parser) parseQPower() (Node, error) {
	p.next() // q
	if p.cur.Type != TokenCaret {
		return MonoNode{Const: 1}, nil
	}
	p.next() // ^

	if p.cur.Type == TokenLParen {
		p.next()
		mono, err := p.parsePowerSum()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, ")"); err != nil {
			return nil, err
		}
		return mono, nil
	}

	return p.parsePowerAtom()
}

// parsePowerAtom parses a signed atom: 5, -5, n, -n.
func (p *Parser) parsePowerAtom() (MonoNode, error) {
	sign := int64(1)
	if p.cur.Type == TokenMinus {
		sign = -1
		p.next()
	}
	switch {
	case p.cur.Type == TokenNumber:
		v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return MonoNode{}, p.errf("bad exponent %q", p.cur.Literal)
		}
		p.next()
		return MonoNode{Const: sign * v}, nil
	case p.cur.Type == TokenIdent && p.cur.Literal == "n":
		p.next()
		return MonoNode{NCoeff: sign}, nil
	default:
		return MonoNode{}, p.errf("expected exponent, got %q", p.cur.Literal)
	}
}

// parsePowerSum parses atom ((+|-) atom)* inside parenthesized exponents.
func (p *Parser) parsePowerSum() (MonoNode, error) {
	acc, err := p.parsePowerAtom()
	if err != nil {
		return MonoNode{}, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		sign := int64(1)
		if p.cur.Type == TokenMinus {
			sign = -1
		}
		p.next()
		term, err := p.parsePowerAtom()
		if err != nil {
			return MonoNode{}, err
		}
		acc.NCoeff += sign * term.NCoeff
		acc.Const += sign * term.Const
	}
	return acc, nil
}
