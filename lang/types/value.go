// Package types defines the runtime value model of Lox. The primitive values
// (nil, booleans, numbers, strings) live here; callable values (functions,
// classes, natives) and instances are defined in the interp package, which
// implements the same Value interface.
package types

import "strconv"

// Value is the interface implemented by any value manipulated by the
// interpreter.
type Value interface {
	// String returns the print representation of the value.
	String() string

	// Type returns a short string describing the value's type.
	Type() string

	// Truth returns the truth value of the value. Only nil and false are
	// falsy.
	Truth() bool
}

// NilType is the type of Nil. Its only legal value is Nil. (We represent it
// as a number, not struct{}, so that Nil may be constant.)
type NilType byte

// Nil is the Lox nil value.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }
func (NilType) Truth() bool    { return false }

// Bool is the type of Lox booleans.
type Bool bool

// The two Bool values.
const (
	True  = Bool(true)
	False = Bool(false)
)

var _ Value = False

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Type() string { return "boolean" }
func (b Bool) Truth() bool  { return bool(b) }

// Number is the type of Lox numbers, double-precision floats.
type Number float64

var _ Value = Number(0)

// String renders the number with the shortest decimal representation that
// round-trips; integral values print without a fractional part (3.0 prints
// as "3").
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
func (n Number) Type() string { return "number" }
func (n Number) Truth() bool  { return true }

// String is the type of Lox strings. The print representation is the string
// itself, without quotes.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() bool    { return true }

// Equal reports whether two Lox values are equal. Equality is same-type-and-
// equal-payload: values of different types are never equal, and object values
// (functions, classes, instances) compare by identity.
func Equal(x, y Value) bool {
	switch x := x.(type) {
	case NilType:
		_, ok := y.(NilType)
		return ok
	case Bool:
		yb, ok := y.(Bool)
		return ok && x == yb
	case Number:
		yn, ok := y.(Number)
		return ok && x == yn
	case String:
		ys, ok := y.(String)
		return ok && x == ys
	default:
		// object values are all pointer types, interface equality is identity
		return x == y
	}
}
