package interp

import (
	"fmt"

	"github.com/stevemarin/golox/lang/token"
	"github.com/stevemarin/golox/lang/types"
)

// RuntimeError is an error raised during evaluation, carrying the token
// whose evaluation triggered it. It aborts the program run.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Tok.Line)
}

// returnSignal unwinds the evaluation of a function body when a return
// statement executes. It flows through the error returns of statement
// evaluation and is caught exactly at the enclosing function-call boundary;
// it never surfaces to the user.
type returnSignal struct {
	value types.Value
}

func (*returnSignal) Error() string { return "return" }

// breakSignal unwinds to the nearest enclosing loop. The resolver rejects
// break statements outside a loop, so it always gets caught.
type breakSignal struct{}

func (*breakSignal) Error() string { return "break" }
