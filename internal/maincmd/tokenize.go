package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/scanner"
	"github.com/stevemarin/golox/lang/token"
)

// Tokenize executes the scanner phase and prints the resulting tokens.
func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, args...)
}

// TokenizeFiles is a helper function that tokenizes the source files and
// prints one token per line with its source line number. The error, if
// non-nil, is a scanner.ErrorList.
func TokenizeFiles(_ context.Context, stdio mainer.Stdio, files ...string) error {
	var el scanner.ErrorList
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			el.Add(0, err.Error())
			continue
		}

		var s scanner.Scanner
		s.Init(b, el.Add)
		for {
			tok := s.Scan()
			fmt.Fprintf(stdio.Stdout, "%3d: %s", tok.Line, tok.Type)
			if lit := tok.Literal(); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
			if tok.Type == token.EOF {
				break
			}
		}
	}
	el.Sort()
	err := el.Err()
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
