package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/ast"
	"github.com/stevemarin/golox/lang/parser"
	"github.com/stevemarin/golox/lang/resolver"
	"github.com/stevemarin/golox/lang/scanner"
)

// Resolve executes the parser and resolver phases and prints the AST with
// variable resolution depths.
func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFiles(ctx, stdio, args...)
}

// ResolveFiles is a helper function that parses and resolves the source
// files and prints the ASTs annotated with the resolved scope depth of each
// variable reference. A file that fails to parse is not resolved. The error,
// if non-nil, is a scanner.ErrorList.
func ResolveFiles(_ context.Context, stdio mainer.Stdio, files ...string) error {
	var el scanner.ErrorList
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			el.Add(0, err.Error())
			continue
		}

		stmts, perr := parser.ParseChunk(b)
		if perr != nil {
			// cannot resolve an AST that failed to parse
			appendErrors(&el, perr)
			continue
		}

		locals, rerr := resolver.ResolveChunk(stmts)
		printer := ast.Printer{Output: stdio.Stdout, Depths: locals}
		if err := printer.Print(stmts); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		appendErrors(&el, rerr)
	}
	err := el.Err()
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
