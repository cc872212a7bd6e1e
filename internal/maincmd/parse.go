package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/parser"
	"github.com/stevemarin/golox/lang/scanner"
)

// Parse executes the parser phase and prints the resulting AST.
func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, args...)
}

// ParseFiles is a helper function that parses the source files and prints
// the resulting ASTs. Statements that parsed cleanly are printed even when
// the file has errors. The error, if non-nil, is a scanner.ErrorList.
func ParseFiles(_ context.Context, stdio mainer.Stdio, files ...string) error {
	printer := ast.Printer{Output: stdio.Stdout}

	var el scanner.ErrorList
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			el.Add(0, err.Error())
			continue
		}

		stmts, perr := parser.ParseChunk(b)
		if err := printer.Print(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		appendErrors(&el, perr)
	}
	err := el.Err()
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}

// appendErrors merges an ErrorList-typed error into el; a nil err is a
// no-op.
func appendErrors(el *scanner.ErrorList, err error) {
	if list, ok := err.(scanner.ErrorList); ok {
		*el = append(*el, list...)
	}
}
