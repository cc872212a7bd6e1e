// The ErrorList implementation is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/errors.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"fmt"
	"io"
	"sort"

	"github.com/stevemarin/golox/lang/token"
)

// An Error represents a single diagnostic produced while processing Lox
// source. It renders in the reference suite's format:
//
//	[line N] Error at 'lexeme': message
//
// Where is " at 'lexeme'", " at end" or empty for scan errors that have no
// associated token.
type Error struct {
	Line  int
	Where string
	Msg   string
}

func (e Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Msg)
}

// An ErrorList is a list of *Errors. The zero value for an ErrorList is an
// empty ErrorList ready to use.
type ErrorList []*Error

// Add appends an Error with the given line and message to the list.
func (l *ErrorList) Add(line int, msg string) {
	*l = append(*l, &Error{Line: line, Msg: msg})
}

// AddToken appends an Error locating the problem at the given token.
func (l *ErrorList) AddToken(tok token.Token, msg string) {
	where := " at '" + tok.Lexeme + "'"
	if tok.Type == token.EOF {
		where = " at end"
	}
	*l = append(*l, &Error{Line: tok.Line, Where: where, Msg: msg})
}

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l ErrorList) Less(i, j int) bool { return l[i].Line < l[j].Line }

// Sort sorts the list by line number, preserving the reporting order of
// errors on the same line.
func (l ErrorList) Sort() { sort.Stable(l) }

// An ErrorList implements the error interface.
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Err returns an error equivalent to this error list. If the list is empty,
// Err returns nil.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// PrintError is a utility function that prints a list of errors to w, one
// error per line, if the err parameter is an ErrorList. Otherwise it prints
// the err string.
func PrintError(w io.Writer, err error) {
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			fmt.Fprintf(w, "%s\n", e)
		}
	} else if err != nil {
		fmt.Fprintf(w, "%s\n", err)
	}
}
