package interp

import (
	"github.com/dolthub/swiss"

	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

// Class is a runtime class value. Calling a class constructs an instance,
// running its init method if the class or any superclass defines one.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

var (
	_ types.Value = (*Class)(nil)
	_ Callable    = (*Class)(nil)
)

func (c *Class) String() string { return c.Name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truth() bool    { return true }

// Arity of a class is the arity of its init method, or 0 if none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(it *Interp, args []types.Value) (types.Value, error) {
	inst := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(inst).Call(it, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FindMethod returns the named method, searching the superclass chain from
// this class upward, or nil if no class in the chain defines it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Instance is an instance of a Class with its own field table. Fields shadow
// methods of the same name.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, types.Value]
}

var _ types.Value = (*Instance)(nil)

// NewInstance returns a fresh instance of the class with no fields.
func NewInstance(class *Class) *Instance {
	return &Instance{
		class:  class,
		fields: swiss.NewMap[string, types.Value](8),
	}
}

func (i *Instance) String() string { return i.class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truth() bool    { return true }

// Get returns the named field if present, else the named method of the class
// chain bound to this instance. Method binding always produces a fresh
// Function value with this pre-bound.
func (i *Instance) Get(name token.Token) (types.Value, error) {
	if v, ok := i.fields.Get(name.Lexeme); ok {
		return v, nil
	}
	if m := i.class.FindMethod(name.Lexeme); m != nil {
		return m.Bind(i), nil
	}
	return nil, &RuntimeError{Tok: name, Msg: "Undefined property '" + name.Lexeme + "'."}
}

// Set writes the named field, creating it if needed.
func (i *Instance) Set(name token.Token, v types.Value) {
	i.fields.Put(name.Lexeme, v)
}
