package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/interp"
	"github.com/stevemarin/golox/lang/parser"
	"github.com/stevemarin/golox/lang/resolver"
	"github.com/stevemarin/golox/lang/scanner"
)

// Run executes a Lox script file. It is also the implicit command when golox
// is invoked with a bare path.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return RunSource(ctx, stdio, interp.New(stdio.Stdout), b)
}

// RunSource scans, parses, resolves and interprets a single chunk of source
// on the provided interpreter. Diagnostics are printed to stdio.Stderr.
// Compile-time errors suppress the later stages and are returned as a
// scanner.ErrorList; a runtime error aborts the run and is returned as a
// *interp.RuntimeError.
func RunSource(_ context.Context, stdio mainer.Stdio, it *interp.Interp, src []byte) error {
	stmts, err := parser.ParseChunk(src)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	locals, err := resolver.ResolveChunk(stmts)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	if err := it.Interpret(stmts, locals); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
