package interp

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/stevemarin/golox/lang/types"
)

// Builtin is a native function implemented in Go.
type Builtin struct {
	name  string
	arity int
	fn    func(it *Interp, args []types.Value) (types.Value, error)
}

var (
	_ types.Value = (*Builtin)(nil)
	_ Callable    = (*Builtin)(nil)
)

func (b *Builtin) String() string { return "<native fn>" }
func (b *Builtin) Type() string   { return "builtin" }
func (b *Builtin) Truth() bool    { return true }
func (b *Builtin) Arity() int     { return b.arity }

func (b *Builtin) Call(it *Interp, args []types.Value) (types.Value, error) {
	return b.fn(it, args)
}

// Universe defines the native bindings predeclared in the global environment
// of every interpreter. This should not be modified.
var Universe = map[string]types.Value{
	"clock": &Builtin{
		name: "clock",
		fn: func(_ *Interp, _ []types.Value) (types.Value, error) {
			return types.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	},
}

// IsUniverse returns true if name is a universal binding.
func IsUniverse(name string) bool {
	_, ok := Universe[name]
	return ok
}

// Names returns the sorted names of the universe bindings.
func Names() []string {
	names := maps.Keys(Universe)
	slices.Sort(names)
	return names
}
