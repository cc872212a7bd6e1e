// Package ast defines the types to represent the abstract syntax tree (AST)
// of a Lox program. Nodes keep the tokens that name or introduce them, so
// that diagnostics can point at the originating line.
//
// Node values have stable identity for the lifetime of the program: the
// resolver keys its side table of scope depths by expression pointer.
package ast

// Node represents any node in the AST.
type Node interface {
	// Line reports the 1-based source line where the node begins.
	Line() int

	// Walk enters each node inside itself to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents an expression in the AST.
type Expr interface {
	Node
	expr()
}

// Stmt represents a statement in the AST.
type Stmt interface {
	Node
	stmt()
}

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

// List of visit directions.
const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor defines the method to implement for a Visitor, which gets called
// for each participating node in the call to Walk. A node's children can be
// skipped by returning a nil visitor from the call to Visit.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// Walk visits each node with Visitor v starting with the provided node. It
// first calls Visit with the node in VisitEnter direction, and if that call
// returns a non-nil Visitor, it recursively walks the children of this node
// and calls Visit again with the node and VisitExit direction when it exits
// the node (after all children have been visited).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}
