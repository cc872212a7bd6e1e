package interp

import (
	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/types"
)

// A Callable value may be the operand of a call expression: user functions,
// classes and native builtins.
type Callable interface {
	types.Value

	// Arity returns the number of arguments the callable accepts.
	Arity() int

	// Call invokes the callable with already-evaluated arguments. The
	// interpreter checks the arity before calling.
	Call(it *Interp, args []types.Value) (types.Value, error)
}

// Function is a user-defined function together with the environment captured
// at its declaration.
type Function struct {
	decl    *ast.FunctionStmt
	closure *Environment
	isInit  bool
}

var (
	_ types.Value = (*Function)(nil)
	_ Callable    = (*Function)(nil)
)

func (f *Function) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truth() bool    { return true }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// Call executes the function body in a fresh environment enclosing the
// closure, with each parameter bound to the corresponding argument. A return
// unwind caught here produces the function result; with no return the result
// is nil. An initializer always returns the bound this, whatever the body
// does.
func (f *Function) Call(it *Interp, args []types.Value) (types.Value, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	if err := it.execBlock(f.decl.Body, env); err != nil {
		ret, ok := err.(*returnSignal)
		if !ok {
			return nil, err
		}
		if f.isInit {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.value, nil
	}

	if f.isInit {
		return f.closure.GetAt(0, "this"), nil
	}
	return types.Nil, nil
}

// Bind returns a fresh Function sharing the declaration but with this
// pre-bound to the instance in a new environment enclosing the closure.
func (f *Function) Bind(inst *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", inst)
	return &Function{decl: f.decl, closure: env, isInit: f.isInit}
}
