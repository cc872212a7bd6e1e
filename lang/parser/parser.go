// Package parser implements the recursive-descent parser that transforms Lox
// source code into an abstract syntax tree (AST).
package parser

import (
	"errors"

	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/scanner"
	"github.com/stevemarin/golox/lang/token"
)

// ParseChunk is a helper function that parses a single chunk of source and
// returns the list of top-level statements. The parser recovers from errors
// in panic mode and keeps parsing, so the returned statements are those that
// parsed cleanly. The error, if non-nil, is a scanner.ErrorList.
func ParseChunk(src []byte) ([]ast.Stmt, error) {
	var p parser
	p.init(src)

	var stmts []ast.Stmt
	for p.tok.Type != token.EOF {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

var errPanicMode = errors.New("panic")

// parser parses source and generates an AST.
type parser struct {
	scanner scanner.Scanner
	errors  scanner.ErrorList

	tok  token.Token // current token
	prev token.Token // most recently consumed token
}

func (p *parser) init(src []byte) {
	p.scanner.Init(src, p.errors.Add)
	p.advance()
}

// advance moves to the next token and returns the consumed one. Tokens the
// scanner already reported as illegal are skipped so they do not cascade
// into parse errors.
func (p *parser) advance() token.Token {
	p.prev = p.tok
	for {
		p.tok = p.scanner.Scan()
		if p.tok.Type != token.ILLEGAL {
			break
		}
	}
	return p.prev
}

func (p *parser) check(typ token.Type) bool { return p.tok.Type == typ }

// match consumes the current token if it is one of the given types.
func (p *parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.tok.Type == t {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes and returns the current token if it is of the expected
// type, otherwise it reports an error and panics with errPanicMode, which is
// recovered at the declaration level where the parser synchronizes.
func (p *parser) expect(typ token.Type, msg string) token.Token {
	if p.tok.Type == typ {
		return p.advance()
	}
	p.error(p.tok, msg)
	panic(errPanicMode)
}

func (p *parser) error(tok token.Token, msg string) {
	p.errors.AddToken(tok, msg)
}

// synchronize discards tokens until a likely statement boundary: just after
// a semicolon, or just before a statement-level keyword.
func (p *parser) synchronize() {
	for p.tok.Type != token.EOF {
		if p.prev.Type == token.SEMICOLON {
			return
		}
		switch p.tok.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
