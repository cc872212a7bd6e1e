package interp

import (
	"github.com/dolthub/swiss"

	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

// An Environment maps variable names to values and chains to the enclosing
// lexical scope. The root environment of an interpreter holds the globals.
// Environments are created per block and per function call; closures keep a
// reference to their defining environment, so later definitions and
// assignments in that environment are observed by the closure.
type Environment struct {
	enclosing *Environment
	vars      *swiss.Map[string, types.Value]
}

// NewEnvironment returns an empty environment chained to enclosing, which is
// nil for the root.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		enclosing: enclosing,
		vars:      swiss.NewMap[string, types.Value](8),
	}
}

// Define unconditionally binds name to v in this environment, shadowing any
// binding of the same name in enclosing scopes.
func (e *Environment) Define(name string, v types.Value) {
	e.vars.Put(name, v)
}

// Get returns the value bound to the name, walking outward through the
// enclosing environments. An unbound name is a runtime error.
func (e *Environment) Get(name token.Token) (types.Value, error) {
	if v, ok := e.vars.Get(name.Lexeme); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Tok: name, Msg: "Undefined variable '" + name.Lexeme + "'."}
}

// Assign updates the existing binding of the name, walking outward through
// the enclosing environments. Assigning to an unbound name is a runtime
// error; assignment never creates a binding.
func (e *Environment) Assign(name token.Token, v types.Value) error {
	if e.vars.Has(name.Lexeme) {
		e.vars.Put(name.Lexeme, v)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return &RuntimeError{Tok: name, Msg: "Undefined variable '" + name.Lexeme + "'."}
}

// Ancestor returns the environment exactly depth hops up the enclosing
// chain. The resolver guarantees the chain is at least that long.
func (e *Environment) Ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads the name directly from the ancestor at the given depth, with
// no outward walk and no fallback. The resolver guarantees presence.
func (e *Environment) GetAt(depth int, name string) types.Value {
	v, _ := e.Ancestor(depth).vars.Get(name)
	return v
}

// AssignAt writes the name directly into the ancestor at the given depth.
func (e *Environment) AssignAt(depth int, name string, v types.Value) {
	e.Ancestor(depth).vars.Put(name, v)
}
