// Package resolver implements the static resolution pass that runs between
// parsing and interpretation. It walks the AST and computes, for every local
// variable reference, the number of enclosing scopes between the reference
// and the scope where the name is defined. References that resolve to no
// surrounding scope are left out of the side table and bind to the globals at
// runtime, which preserves the rule that globals may be referenced before
// definition inside function bodies but locals may not.
//
// The pass also rejects constructs that are only detectable with the scope
// context at hand: reading a local in its own initializer, redeclaring a name
// in the same scope, return outside a function, returning a value from an
// initializer, this/super outside a class, super without a superclass, a
// class inheriting from itself, and break outside a loop.
package resolver

import (
	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/scanner"
	"github.com/stevemarin/golox/lang/token"
)

// ResolveChunk resolves the parsed statements and returns the side table
// mapping each local reference to its scope depth. An AST that resulted in
// errors in the parse phase should never be passed to the resolver, the
// behavior is undefined. The returned error, if non-nil, is a
// scanner.ErrorList; resolution continues past errors so that as many as
// possible are reported in one pass.
func ResolveChunk(stmts []ast.Stmt) (map[ast.Expr]int, error) {
	r := resolver{locals: make(map[ast.Expr]int)}
	for _, s := range stmts {
		r.stmt(s)
	}
	r.errors.Sort()
	return r.locals, r.errors.Err()
}

// funcType tracks what kind of function body, if any, the resolver is
// currently inside of.
type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcInitializer
	funcMethod
)

// classType tracks what kind of class body, if any, the resolver is
// currently inside of.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

type resolver struct {
	errors scanner.ErrorList

	// scopes is the stack of lexical scopes, innermost last. Each scope maps
	// a declared name to whether its initializer has completed (declared
	// false, defined true). The global scope is implicit and not represented.
	scopes []map[string]bool

	// locals is the side table handed to the interpreter.
	locals map[ast.Expr]int

	curFunc  funcType
	curClass classType
	loops    int
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks the name as existing but not yet usable in the innermost
// scope. Declarations at the global scope are unchecked.
func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errors.AddToken(name, "Already a variable with this name in this scope.")
		return
	}
	scope[name.Lexeme] = false
}

// define marks the name as fully initialized and usable.
func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scopes from innermost outward and records the
// depth of the first scope containing the name. If no scope contains it, the
// reference is left for the runtime global lookup.
func (r *resolver) resolveLocal(e ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[e] = len(r.scopes) - 1 - i
			return
		}
	}
}

// function resolves a function or method body with its parameters bound in a
// fresh scope.
func (r *resolver) function(fn *ast.FunctionStmt, typ funcType) {
	enclosing := r.curFunc
	r.curFunc = typ

	// a loop does not extend into the functions declared in its body
	enclosingLoops := r.loops
	r.loops = 0

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	for _, s := range fn.Body {
		r.stmt(s)
	}
	r.endScope()

	r.loops = enclosingLoops
	r.curFunc = enclosing
}

func (r *resolver) stmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		for _, s := range stmt.Stmts {
			r.stmt(s)
		}
		r.endScope()

	case *ast.VarStmt:
		// declare before resolving the initializer so that reading the name
		// inside its own initializer is caught
		r.declare(stmt.Name)
		if stmt.Init != nil {
			r.expr(stmt.Init)
		}
		r.define(stmt.Name)

	case *ast.FunctionStmt:
		// define eagerly so the function may recursively refer to itself
		r.declare(stmt.Name)
		r.define(stmt.Name)
		r.function(stmt, funcFunction)

	case *ast.ExprStmt:
		r.expr(stmt.Expr)

	case *ast.PrintStmt:
		r.expr(stmt.Expr)

	case *ast.IfStmt:
		r.expr(stmt.Cond)
		r.stmt(stmt.Then)
		if stmt.Else != nil {
			r.stmt(stmt.Else)
		}

	case *ast.WhileStmt:
		r.expr(stmt.Cond)
		r.loops++
		r.stmt(stmt.Body)
		r.loops--

	case *ast.BreakStmt:
		if r.loops == 0 {
			r.errors.AddToken(stmt.Keyword, "Can't use 'break' outside of a for or while loop.")
		}

	case *ast.ReturnStmt:
		if r.curFunc == funcNone {
			r.errors.AddToken(stmt.Keyword, "Can't return from top-level code.")
		}
		if stmt.Value != nil {
			if r.curFunc == funcInitializer {
				r.errors.AddToken(stmt.Keyword, "Can't return a value from an initializer.")
			}
			r.expr(stmt.Value)
		}

	case *ast.ClassStmt:
		enclosing := r.curClass
		r.curClass = classClass

		r.declare(stmt.Name)
		r.define(stmt.Name)

		if stmt.Superclass != nil {
			if stmt.Name.Lexeme == stmt.Superclass.Name.Lexeme {
				r.errors.AddToken(stmt.Superclass.Name, "A class can't inherit from itself.")
			}
			r.curClass = classSubclass
			r.expr(stmt.Superclass)

			// the scope that holds super, enclosing the methods
			r.beginScope()
			r.scopes[len(r.scopes)-1]["super"] = true
		}

		// the scope that holds this, so method bodies resolve this at depth 1
		// and super at depth 2 from their innermost scope
		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = true

		for _, m := range stmt.Methods {
			typ := funcMethod
			if m.Name.Lexeme == "init" {
				typ = funcInitializer
			}
			r.function(m, typ)
		}

		r.endScope()
		if stmt.Superclass != nil {
			r.endScope()
		}
		r.curClass = enclosing
	}
}

func (r *resolver) expr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.LiteralExpr:
		// nothing to do

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !defined {
				r.errors.AddToken(expr.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(expr, expr.Name)

	case *ast.AssignExpr:
		r.expr(expr.Value)
		r.resolveLocal(expr, expr.Name)

	case *ast.UnaryExpr:
		r.expr(expr.Right)

	case *ast.BinaryExpr:
		r.expr(expr.Left)
		r.expr(expr.Right)

	case *ast.LogicalExpr:
		r.expr(expr.Left)
		r.expr(expr.Right)

	case *ast.GroupingExpr:
		r.expr(expr.Expr)

	case *ast.CallExpr:
		r.expr(expr.Callee)
		for _, a := range expr.Args {
			r.expr(a)
		}

	case *ast.GetExpr:
		// the property name is looked up dynamically, only the object resolves
		r.expr(expr.Object)

	case *ast.SetExpr:
		r.expr(expr.Value)
		r.expr(expr.Object)

	case *ast.ThisExpr:
		if r.curClass == classNone {
			r.errors.AddToken(expr.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(expr, expr.Keyword)

	case *ast.SuperExpr:
		switch r.curClass {
		case classNone:
			r.errors.AddToken(expr.Keyword, "Can't use 'super' outside of a class.")
			return
		case classClass:
			r.errors.AddToken(expr.Keyword, "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(expr, expr.Keyword)
	}
}
