package parser

import (
	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses an r-value expression first, then, if an '=' follows,
// checks that the parsed expression is a valid assignment target: a variable
// reference becomes an assignment, a property access becomes a property set.
// Any other shape reports an error at the '=' without entering panic mode,
// since the right-hand side still parses cleanly.
func (p *parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQ) {
		eq := p.prev
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: e.Name, Value: value}
		case *ast.GetExpr:
			return &ast.SetExpr{Object: e.Object, Name: e.Name, Value: value}
		}
		p.error(eq, "Invalid assignment target.")
	}
	return expr
}

func (p *parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.prev
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: p.logicAnd()}
	}
	return expr
}

func (p *parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.prev
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: p.equality()}
	}
	return expr
}

func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANGEQ, token.EQEQ) {
		op := p.prev
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.comparison()}
	}
	return expr
}

func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GE, token.LT, token.LE) {
		op := p.prev
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.term()}
	}
	return expr
}

func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.prev
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.factor()}
	}
	return expr
}

func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.prev
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: p.unary()}
	}
	return expr
}

func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.prev
		return &ast.UnaryExpr{Op: op, Right: p.unary()}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.expect(token.IDENT, "Expect property name after '.'.")
			expr = &ast.GetExpr{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= 255 {
				// report without aborting the parse
				p.error(p.tok, "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	rparen := p.expect(token.RPAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, RParen: rparen, Args: args}
}

func (p *parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.LiteralExpr{Tok: p.prev, Value: types.False}
	case p.match(token.TRUE):
		return &ast.LiteralExpr{Tok: p.prev, Value: types.True}
	case p.match(token.NIL):
		return &ast.LiteralExpr{Tok: p.prev, Value: types.Nil}
	case p.match(token.NUMBER):
		return &ast.LiteralExpr{Tok: p.prev, Value: types.Number(p.prev.Num)}
	case p.match(token.STRING):
		return &ast.LiteralExpr{Tok: p.prev, Value: types.String(p.prev.Str)}

	case p.match(token.SUPER):
		keyword := p.prev
		p.expect(token.DOT, "Expect '.' after 'super'.")
		method := p.expect(token.IDENT, "Expect superclass method name.")
		return &ast.SuperExpr{Keyword: keyword, Method: method}

	case p.match(token.THIS):
		return &ast.ThisExpr{Keyword: p.prev}

	case p.match(token.IDENT):
		return &ast.VariableExpr{Name: p.prev}

	case p.match(token.LPAREN):
		lparen := p.prev
		expr := p.expression()
		p.expect(token.RPAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{LParen: lparen, Expr: expr}
	}

	p.error(p.tok, "Expect expression.")
	panic(errPanicMode)
}
