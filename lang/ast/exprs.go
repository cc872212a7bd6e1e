package ast

import (
	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

type (
	// LiteralExpr represents a literal value: a number, a string, true,
	// false or nil. The value is decoded at parse time.
	LiteralExpr struct {
		Tok   token.Token
		Value types.Value
	}

	// VariableExpr represents a reference to a variable, e.g. x.
	VariableExpr struct {
		Name token.Token
	}

	// AssignExpr represents an assignment to a variable, e.g. x = y.
	AssignExpr struct {
		Name  token.Token
		Value Expr
	}

	// UnaryExpr represents a unary operation, e.g. !x or -x.
	UnaryExpr struct {
		Op    token.Token
		Right Expr
	}

	// BinaryExpr represents a binary operation, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// LogicalExpr represents a short-circuiting binary operation, e.g.
	// x and y.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression, e.g. (x).
	GroupingExpr struct {
		LParen token.Token
		Expr   Expr
	}

	// CallExpr represents a call, e.g. f(x, y). RParen is kept as the token
	// blamed by call-related runtime errors.
	CallExpr struct {
		Callee Expr
		RParen token.Token
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. obj.name.
	GetExpr struct {
		Object Expr
		Name   token.Token
	}

	// SetExpr represents a property assignment, e.g. obj.name = v.
	SetExpr struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr represents the this keyword inside a method body.
	ThisExpr struct {
		Keyword token.Token
	}

	// SuperExpr represents a superclass method access, e.g. super.name.
	SuperExpr struct {
		Keyword token.Token
		Method  token.Token
	}
)

var (
	_ Expr = (*LiteralExpr)(nil)
	_ Expr = (*VariableExpr)(nil)
	_ Expr = (*AssignExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*LogicalExpr)(nil)
	_ Expr = (*GroupingExpr)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*GetExpr)(nil)
	_ Expr = (*SetExpr)(nil)
	_ Expr = (*ThisExpr)(nil)
	_ Expr = (*SuperExpr)(nil)
)

func (e *LiteralExpr) Line() int { return e.Tok.Line }
func (e *LiteralExpr) Walk(_ Visitor) {}
func (e *LiteralExpr) expr() {}

func (e *VariableExpr) Line() int { return e.Name.Line }
func (e *VariableExpr) Walk(_ Visitor) {}
func (e *VariableExpr) expr() {}

func (e *AssignExpr) Line() int { return e.Name.Line }
func (e *AssignExpr) Walk(v Visitor) {
	Walk(v, e.Value)
}
func (e *AssignExpr) expr() {}

func (e *UnaryExpr) Line() int { return e.Op.Line }
func (e *UnaryExpr) Walk(v Visitor) {
	Walk(v, e.Right)
}
func (e *UnaryExpr) expr() {}

func (e *BinaryExpr) Line() int { return e.Left.Line() }
func (e *BinaryExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}
func (e *BinaryExpr) expr() {}

func (e *LogicalExpr) Line() int { return e.Left.Line() }
func (e *LogicalExpr) Walk(v Visitor) {
	Walk(v, e.Left)
	Walk(v, e.Right)
}
func (e *LogicalExpr) expr() {}

func (e *GroupingExpr) Line() int { return e.LParen.Line }
func (e *GroupingExpr) Walk(v Visitor) {
	Walk(v, e.Expr)
}
func (e *GroupingExpr) expr() {}

func (e *CallExpr) Line() int { return e.Callee.Line() }
func (e *CallExpr) Walk(v Visitor) {
	Walk(v, e.Callee)
	for _, a := range e.Args {
		Walk(v, a)
	}
}
func (e *CallExpr) expr() {}

func (e *GetExpr) Line() int { return e.Object.Line() }
func (e *GetExpr) Walk(v Visitor) {
	Walk(v, e.Object)
}
func (e *GetExpr) expr() {}

func (e *SetExpr) Line() int { return e.Object.Line() }
func (e *SetExpr) Walk(v Visitor) {
	Walk(v, e.Object)
	Walk(v, e.Value)
}
func (e *SetExpr) expr() {}

func (e *ThisExpr) Line() int { return e.Keyword.Line }
func (e *ThisExpr) Walk(_ Visitor) {}
func (e *ThisExpr) expr() {}

func (e *SuperExpr) Line() int { return e.Keyword.Line }
func (e *SuperExpr) Walk(_ Visitor) {}
func (e *SuperExpr) expr() {}
