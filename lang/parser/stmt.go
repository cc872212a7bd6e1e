package parser

import (
	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

// declaration parses a single declaration or statement. On a parse error the
// offending declaration is discarded and the parser resynchronizes at the
// next statement boundary, returning nil.
func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		if e := recover(); e != nil {
			if e != errPanicMode {
				panic(e)
			}
			p.synchronize()
			s = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDecl()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *parser) classDecl() ast.Stmt {
	name := p.expect(token.IDENT, "Expect class name.")

	var superclass *ast.VariableExpr
	if p.match(token.LT) {
		scName := p.expect(token.IDENT, "Expect superclass name.")
		superclass = &ast.VariableExpr{Name: scName}
	}

	p.expect(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		methods = append(methods, p.function("method"))
	}
	p.expect(token.RBRACE, "Expect '}' after class body.")

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// function parses a named function: a fun declaration (kind "function") or a
// method inside a class body (kind "method").
func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.expect(token.IDENT, "Expect "+kind+" name.")
	p.expect(token.LPAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= 255 {
				// report without aborting the parse
				p.error(p.tok, "Can't have more than 255 parameters.")
			}
			params = append(params, p.expect(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN, "Expect ')' after parameters.")

	p.expect(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.blockStmts()

	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *parser) varDecl() ast.Stmt {
	name := p.expect(token.IDENT, "Expect variable name.")

	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after variable declaration.")

	return &ast.VarStmt{Name: name, Init: init}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.BREAK):
		return p.breakStmt()
	case p.match(token.LBRACE):
		lbrace := p.prev
		return &ast.BlockStmt{LBrace: lbrace, Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

// forStmt desugars for (init; cond; incr) body into
// { init; while (cond) { body; incr; } } at parse time. An omitted condition
// becomes literal true and an omitted increment is dropped.
func (p *parser) forStmt() ast.Stmt {
	keyword := p.prev
	p.expect(token.LPAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	semi := p.expect(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.expect(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = &ast.BlockStmt{
			LBrace: keyword,
			Stmts:  []ast.Stmt{body, &ast.ExprStmt{Expr: incr}},
		}
	}
	if cond == nil {
		cond = &ast.LiteralExpr{
			Tok:   token.Token{Type: token.TRUE, Lexeme: "true", Line: semi.Line},
			Value: types.True,
		}
	}
	var loop ast.Stmt = &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
	if init != nil {
		loop = &ast.BlockStmt{LBrace: keyword, Stmts: []ast.Stmt{init, loop}}
	}
	return loop
}

func (p *parser) ifStmt() ast.Stmt {
	keyword := p.prev
	p.expect(token.LPAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return &ast.IfStmt{Keyword: keyword, Cond: cond, Then: then, Else: els}
}

func (p *parser) printStmt() ast.Stmt {
	keyword := p.prev
	expr := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after value.")
	return &ast.PrintStmt{Keyword: keyword, Expr: expr}
}

func (p *parser) returnStmt() ast.Stmt {
	keyword := p.prev
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.expect(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *parser) whileStmt() ast.Stmt {
	keyword := p.prev
	p.expect(token.LPAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.expect(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Keyword: keyword, Cond: cond, Body: body}
}

func (p *parser) breakStmt() ast.Stmt {
	keyword := p.prev
	p.expect(token.SEMICOLON, "Expect ';' after 'break'.")
	return &ast.BreakStmt{Keyword: keyword}
}

// blockStmts parses declarations up to the closing brace. The opening brace
// is already consumed.
func (p *parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE, "Expect '}' after block.")
	return stmts
}

func (p *parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}
