package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/parser"
	"github.com/stevemarin/golox/lang/resolver"
	"github.com/stevemarin/golox/lang/scanner"
)

func resolve(t *testing.T, src string) (map[ast.Expr]int, []ast.Stmt, error) {
	t.Helper()
	stmts, err := parser.ParseChunk([]byte(src))
	require.NoError(t, err)
	locals, rerr := resolver.ResolveChunk(stmts)
	return locals, stmts, rerr
}

func errorStrings(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	el, ok := err.(scanner.ErrorList)
	require.True(t, ok)
	msgs := make([]string, len(el))
	for i, e := range el {
		msgs[i] = e.Error()
	}
	return msgs
}

func TestDepths(t *testing.T) {
	// x is read two scopes below its declaration scope
	locals, stmts, err := resolve(t, "{ var x = 1; { { print x; } } }")
	require.NoError(t, err)

	outer := stmts[0].(*ast.BlockStmt)
	mid := outer.Stmts[1].(*ast.BlockStmt)
	inner := mid.Stmts[0].(*ast.BlockStmt)
	ref := inner.Stmts[0].(*ast.PrintStmt).Expr

	d, ok := locals[ref]
	require.True(t, ok)
	require.Equal(t, 2, d)
}

func TestDepthZeroSameScope(t *testing.T) {
	locals, stmts, err := resolve(t, "{ var x = 1; print x; }")
	require.NoError(t, err)

	blk := stmts[0].(*ast.BlockStmt)
	ref := blk.Stmts[1].(*ast.PrintStmt).Expr
	d, ok := locals[ref]
	require.True(t, ok)
	require.Equal(t, 0, d)
}

func TestGlobalsUnannotated(t *testing.T) {
	// a global reference, even from inside a function body, is not in the
	// side table: it binds to the globals at runtime, so globals may be
	// referenced before definition
	locals, stmts, err := resolve(t, "fun f() { print g; } var g = 1;")
	require.NoError(t, err)

	fn := stmts[0].(*ast.FunctionStmt)
	ref := fn.Body[0].(*ast.PrintStmt).Expr
	_, ok := locals[ref]
	require.False(t, ok)
}

func TestDepthsDeterministic(t *testing.T) {
	const src = `
{
  var a = 1;
  fun f(b) {
    { print a + b; }
  }
}
`
	depths := func() map[int]int {
		locals, _, err := resolve(t, src)
		require.NoError(t, err)
		counts := make(map[int]int)
		for _, d := range locals {
			counts[d]++
		}
		return counts
	}
	first := depths()
	for i := 0; i < 3; i++ {
		require.Equal(t, first, depths())
	}
}

func TestThisAndSuperDepths(t *testing.T) {
	// method bodies resolve this at depth 1 and super at depth 2 from their
	// innermost scope
	const src = `
class A { say() { print "A"; } }
class B < A {
  test() {
    print this;
    super.say();
  }
}
`
	locals, stmts, err := resolve(t, src)
	require.NoError(t, err)

	b := stmts[1].(*ast.ClassStmt)
	test := b.Methods[0]
	thisRef := test.Body[0].(*ast.PrintStmt).Expr
	superRef := test.Body[1].(*ast.ExprStmt).Expr.(*ast.CallExpr).Callee

	require.Equal(t, 1, locals[thisRef])
	require.Equal(t, 2, locals[superRef])
}

func TestReadInOwnInitializer(t *testing.T) {
	_, _, err := resolve(t, "{ var a = a; }")
	msgs := errorStrings(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "[line 1] Error at 'a': Can't read local variable in its own initializer.", msgs[0])
}

func TestRedeclareInSameScope(t *testing.T) {
	_, _, err := resolve(t, "{ var a = 1; var a = 2; }")
	msgs := errorStrings(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Already a variable with this name in this scope.")

	// redeclaring at the global scope is allowed
	_, _, err = resolve(t, "var a = 1; var a = 2;")
	require.NoError(t, err)

	// shadowing in a child scope is allowed
	_, _, err = resolve(t, "{ var a = 1; { var a = 2; } }")
	require.NoError(t, err)
}

func TestReturnContext(t *testing.T) {
	_, _, err := resolve(t, "return 1;")
	msgs := errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't return from top-level code.")

	_, _, err = resolve(t, "class Foo { init() { return 1; } }")
	msgs = errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't return a value from an initializer.")

	// a bare return inside an initializer is fine
	_, _, err = resolve(t, "class Foo { init() { return; } }")
	require.NoError(t, err)

	// returning a value from a method is fine
	_, _, err = resolve(t, "class Foo { bar() { return 1; } }")
	require.NoError(t, err)
}

func TestClassContext(t *testing.T) {
	_, _, err := resolve(t, "print this;")
	msgs := errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't use 'this' outside of a class.")

	_, _, err = resolve(t, "fun notAMethod() { print this; }")
	msgs = errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't use 'this' outside of a class.")

	_, _, err = resolve(t, "super.foo();")
	msgs = errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't use 'super' outside of a class.")

	_, _, err = resolve(t, "class Foo { bar() { super.bar(); } }")
	msgs = errorStrings(t, err)
	assert.Contains(t, msgs[0], "Can't use 'super' in a class with no superclass.")

	_, _, err = resolve(t, "var Bad = 1; class Oops < Oops {}")
	msgs = errorStrings(t, err)
	assert.Contains(t, msgs[0], "A class can't inherit from itself.")
}

func TestBreakContext(t *testing.T) {
	_, _, err := resolve(t, "fun f(a) { break; }")
	msgs := errorStrings(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "[line 1] Error at 'break': Can't use 'break' outside of a for or while loop.", msgs[0])

	_, _, err = resolve(t, "while (true) { break; }")
	require.NoError(t, err)

	_, _, err = resolve(t, "for (;;) break;")
	require.NoError(t, err)

	// a break inside a function nested in a loop is outside the loop
	_, _, err = resolve(t, "while (true) { fun f() { break; } }")
	msgs = errorStrings(t, err)
	require.Len(t, msgs, 1)
}
