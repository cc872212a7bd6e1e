package maincmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/interp"
)

// repl runs the interactive mode: it reads a complete source block until
// end-of-input, runs it on a shared interpreter so globals persist across
// blocks, clears the compile-time error state, and loops. An empty block
// ends the session.
func (c *Cmd) repl(ctx context.Context, stdio mainer.Stdio) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	if !cfg.Quiet {
		fmt.Fprintf(stdio.Stderr, "%s %s (natives: %s)\n", binName, c.BuildVersion,
			strings.Join(interp.Names(), ", "))
		fmt.Fprintln(stdio.Stderr, "enter a program, end input (^D) to run it, empty input exits")
	}

	it := interp.New(stdio.Stdout)
	for {
		fmt.Fprint(stdio.Stderr, cfg.Prompt)
		b, err := io.ReadAll(stdio.Stdin)
		if err != nil {
			return err
		}
		src := strings.TrimSpace(string(b))
		if src == "" {
			return nil
		}

		// errors never end the session: each block starts with a clean
		// error state, and the next block runs on the same globals
		_ = RunSource(ctx, stdio, it, []byte(src))
	}
}
