// Package interp implements the tree-walking evaluator of Lox. It walks the
// resolved AST, evaluating statements against a chain of environments, with
// first-class functions and closures, single-inheritance classes with method
// binding, and non-local return via unwinding.
package interp

import (
	"fmt"
	"io"

	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

// Interp evaluates a resolved AST. It holds the root globals environment,
// the current environment, and the resolver's side table of scope depths. A
// single Interp may run several chunks in sequence (the REPL does), sharing
// the globals across runs.
type Interp struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	stdout  io.Writer
}

// New returns an interpreter with the universe bindings defined in its
// globals, writing print output to stdout.
func New(stdout io.Writer) *Interp {
	globals := NewEnvironment(nil)
	for name, v := range Universe {
		globals.Define(name, v)
	}
	return &Interp{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		stdout:  stdout,
	}
}

// Interpret evaluates the program statements in order, with locals the side
// table produced by the resolver for these statements. It returns the first
// runtime error, which aborts the run; the error is a *RuntimeError.
func (it *Interp) Interpret(stmts []ast.Stmt, locals map[ast.Expr]int) error {
	// merge instead of replace: a REPL session accumulates side tables
	// across successive resolved chunks
	for e, d := range locals {
		it.locals[e] = d
	}
	for _, s := range stmts {
		if err := it.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) exec(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		_, err := it.eval(stmt.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.eval(stmt.Expr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(it.stdout, v.String())
		return err

	case *ast.VarStmt:
		var v types.Value = types.Nil
		if stmt.Init != nil {
			var err error
			if v, err = it.eval(stmt.Init); err != nil {
				return err
			}
		}
		it.env.Define(stmt.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return it.execBlock(stmt.Stmts, NewEnvironment(it.env))

	case *ast.IfStmt:
		cond, err := it.eval(stmt.Cond)
		if err != nil {
			return err
		}
		if cond.Truth() {
			return it.exec(stmt.Then)
		}
		if stmt.Else != nil {
			return it.exec(stmt.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.eval(stmt.Cond)
			if err != nil {
				return err
			}
			if !cond.Truth() {
				return nil
			}
			if err := it.exec(stmt.Body); err != nil {
				if _, ok := err.(*breakSignal); ok {
					return nil
				}
				return err
			}
		}

	case *ast.BreakStmt:
		return &breakSignal{}

	case *ast.FunctionStmt:
		it.env.Define(stmt.Name.Lexeme, &Function{decl: stmt, closure: it.env})
		return nil

	case *ast.ReturnStmt:
		var v types.Value = types.Nil
		if stmt.Value != nil {
			var err error
			if v, err = it.eval(stmt.Value); err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	case *ast.ClassStmt:
		return it.execClass(stmt)

	default:
		panic(fmt.Sprintf("unexpected stmt %T", stmt))
	}
}

// execBlock evaluates the statements with env as the current environment,
// restoring the previous one on every exit path, including return unwinds
// and runtime errors.
func (it *Interp) execBlock(stmts []ast.Stmt, env *Environment) error {
	prev := it.env
	it.env = env
	defer func() { it.env = prev }()

	for _, s := range stmts {
		if err := it.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interp) execClass(stmt *ast.ClassStmt) error {
	var superclass *Class
	if stmt.Superclass != nil {
		v, err := it.eval(stmt.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return &RuntimeError{Tok: stmt.Superclass.Name, Msg: "Superclass must be a class."}
		}
		superclass = sc
	}

	// define the name first so methods may reference the class itself
	it.env.Define(stmt.Name.Lexeme, types.Nil)

	env := it.env
	if superclass != nil {
		// the methods close over an extra environment holding super
		env = NewEnvironment(env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name.Lexeme] = &Function{
			decl:    m,
			closure: env,
			isInit:  m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: stmt.Name.Lexeme, Superclass: superclass, Methods: methods}
	return it.env.Assign(stmt.Name, class)
}

func (it *Interp) eval(expr ast.Expr) (types.Value, error) {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		return expr.Value, nil

	case *ast.GroupingExpr:
		return it.eval(expr.Expr)

	case *ast.UnaryExpr:
		return it.evalUnary(expr)

	case *ast.BinaryExpr:
		return it.evalBinary(expr)

	case *ast.LogicalExpr:
		left, err := it.eval(expr.Left)
		if err != nil {
			return nil, err
		}
		// short-circuit: the result is the original operand value, never a
		// coerced boolean
		if expr.Op.Type == token.OR {
			if left.Truth() {
				return left, nil
			}
		} else if !left.Truth() {
			return left, nil
		}
		return it.eval(expr.Right)

	case *ast.VariableExpr:
		return it.lookUpVariable(expr.Name, expr)

	case *ast.AssignExpr:
		v, err := it.eval(expr.Value)
		if err != nil {
			return nil, err
		}
		if depth, ok := it.locals[expr]; ok {
			it.env.AssignAt(depth, expr.Name.Lexeme, v)
		} else if err := it.globals.Assign(expr.Name, v); err != nil {
			return nil, err
		}
		return v, nil

	case *ast.CallExpr:
		return it.evalCall(expr)

	case *ast.GetExpr:
		obj, err := it.eval(expr.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Tok: expr.Name, Msg: "Only instances have properties."}
		}
		return inst.Get(expr.Name)

	case *ast.SetExpr:
		obj, err := it.eval(expr.Object)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, &RuntimeError{Tok: expr.Name, Msg: "Only instances have fields."}
		}
		v, err := it.eval(expr.Value)
		if err != nil {
			return nil, err
		}
		inst.Set(expr.Name, v)
		return v, nil

	case *ast.ThisExpr:
		return it.lookUpVariable(expr.Keyword, expr)

	case *ast.SuperExpr:
		// the resolver guarantees super at its depth and this one
		// environment closer
		depth := it.locals[expr]
		superclass := it.env.GetAt(depth, "super").(*Class)
		inst := it.env.GetAt(depth-1, "this").(*Instance)

		method := superclass.FindMethod(expr.Method.Lexeme)
		if method == nil {
			return nil, &RuntimeError{Tok: expr.Method, Msg: "Undefined property '" + expr.Method.Lexeme + "'."}
		}
		return method.Bind(inst), nil

	default:
		panic(fmt.Sprintf("unexpected expr %T", expr))
	}
}

// lookUpVariable reads a variable through the resolver side table when the
// reference is local, falling back to the globals otherwise.
func (it *Interp) lookUpVariable(name token.Token, expr ast.Expr) (types.Value, error) {
	if depth, ok := it.locals[expr]; ok {
		return it.env.GetAt(depth, name.Lexeme), nil
	}
	return it.globals.Get(name)
}

func (it *Interp) evalUnary(expr *ast.UnaryExpr) (types.Value, error) {
	right, err := it.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case token.MINUS:
		n, ok := right.(types.Number)
		if !ok {
			return nil, &RuntimeError{Tok: expr.Op, Msg: "Operand must be a number."}
		}
		return -n, nil
	case token.BANG:
		return types.Bool(!right.Truth()), nil
	}
	panic(fmt.Sprintf("unexpected unary operator %v", expr.Op.Type))
}

func (it *Interp) evalBinary(expr *ast.BinaryExpr) (types.Value, error) {
	left, err := it.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case token.EQEQ:
		return types.Bool(types.Equal(left, right)), nil
	case token.BANGEQ:
		return types.Bool(!types.Equal(left, right)), nil

	case token.PLUS:
		if ln, ok := left.(types.Number); ok {
			if rn, ok := right.(types.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(types.String); ok {
			if rs, ok := right.(types.String); ok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Tok: expr.Op, Msg: "Operands must be two numbers or two strings."}
	}

	// the remaining operators require two numbers
	ln, lok := left.(types.Number)
	rn, rok := right.(types.Number)
	if !lok || !rok {
		return nil, &RuntimeError{Tok: expr.Op, Msg: "Operands must be numbers."}
	}

	switch expr.Op.Type {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		return ln / rn, nil
	case token.GT:
		return types.Bool(ln > rn), nil
	case token.GE:
		return types.Bool(ln >= rn), nil
	case token.LT:
		return types.Bool(ln < rn), nil
	case token.LE:
		return types.Bool(ln <= rn), nil
	}
	panic(fmt.Sprintf("unexpected binary operator %v", expr.Op.Type))
}

func (it *Interp) evalCall(expr *ast.CallExpr) (types.Value, error) {
	callee, err := it.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]types.Value, 0, len(expr.Args))
	for _, a := range expr.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Tok: expr.RParen, Msg: "Can only call functions and classes."}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{
			Tok: expr.RParen,
			Msg: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)),
		}
	}
	return callable.Call(it, args)
}
