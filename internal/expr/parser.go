// Package expr evaluates the infix arithmetic accepted by the calculator
// display: numbers, + - * /, unary sign and parentheses.
//
// Grammar:
//
//	expr   = term { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = ("+" | "-") unary | primary
//	primary = number | "(" expr ")"
package expr

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

type parser struct {
	lex lexer
	tok token
}

// Eval parses and evaluates src in one pass.
func Eval(src string) (Value, error) {
	if strings.TrimSpace(src) == "" {
		return Value{}, ErrEmpty
	}

	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return Value{}, err
	}

	v, err := p.expr()
	if err != nil {
		return Value{}, err
	}
	if p.tok.kind != tokEOF {
		return Value{}, p.unexpected()
	}
	return v, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) unexpected() error {
	return &SyntaxError{Pos: p.tok.pos, Msg: "unexpected " + p.tok.kind.String()}
}

func (p *parser) expr() (Value, error) {
	left, err := p.term()
	if err != nil {
		return Value{}, err
	}

	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		right, err := p.term()
		if err != nil {
			return Value{}, err
		}
		if op == tokPlus {
			left, err = add(left, right)
		} else {
			left, err = sub(left, right)
		}
		if err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

func (p *parser) term() (Value, error) {
	left, err := p.unary()
	if err != nil {
		return Value{}, err
	}

	for p.tok.kind == tokStar || p.tok.kind == tokSlash {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		right, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		if op == tokStar {
			left, err = mul(left, right)
		} else {
			left, err = div(left, right)
		}
		if err != nil {
			return Value{}, err
		}
	}
	return left, nil
}

func (p *parser) unary() (Value, error) {
	switch p.tok.kind {
	case tokPlus:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return p.unary()
	case tokMinus:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		v, err := p.unary()
		if err != nil {
			return Value{}, err
		}
		return v.neg(), nil
	}
	return p.primary()
}

func (p *parser) primary() (Value, error) {
	switch p.tok.kind {
	case tokNumber:
		v, err := literal(p.tok)
		if err != nil {
			return Value{}, err
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return v, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		v, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		if p.tok.kind != tokRParen {
			return Value{}, p.unexpected()
		}
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return v, nil
	}
	return Value{}, p.unexpected()
}

func literal(t token) (Value, error) {
	if !t.isFloat {
		n, ok := new(big.Int).SetString(t.text, 10)
		if !ok {
			return Value{}, &SyntaxError{Pos: t.pos, Msg: "malformed number"}
		}
		return Value{i: n}, nil
	}

	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		// Out-of-range literals saturate to ±Inf or 0.
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return Float(f), nil
		}
		return Value{}, &SyntaxError{Pos: t.pos, Msg: "malformed number"}
	}
	return Float(f), nil
}
