// Package maincmd implements the golox command-line tool: it dispatches the
// run, tokenize, parse and resolve commands, runs the interactive mode when
// invoked without arguments, and maps pipeline errors to the exit codes the
// reference Lox suite expects.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"

	"github.com/stevemarin/golox/lang/interp"
	"github.com/stevemarin/golox/lang/scanner"
)

const binName = "golox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<command>] [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<command>] [<path>...]
       %[1]s <script>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language. With a script
path and no command, the script is run; without any argument, an
interactive session starts that reads a complete source block until
end-of-input, runs it, and loops.

The <command> can be one of:
       run                       Run the script file.
       tokenize                  Execute the scanner phase and print the
                                 resulting tokens.
       parse                     Execute the parser phase and print the
                                 resulting abstract syntax tree (AST).
       resolve                   Execute the resolver phase and print the
                                 AST with variable resolution depths.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

The interactive mode reads the GOLOX_PROMPT and GOLOX_QUIET environment
variables.
`, binName)
)

// Exit codes compatible with the reference Lox suite: 65 for compile-time
// (scan, parse, resolve) errors, 70 for runtime errors.
const (
	CompileErrCode mainer.ExitCode = 65
	RuntimeErrCode mainer.ExitCode = 70
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	flags map[string]bool
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		// interactive mode
		c.cmdFn = func(ctx context.Context, stdio mainer.Stdio, _ []string) error {
			return c.repl(ctx, stdio)
		}
		return nil
	}

	commands := buildCmds(c)
	cmdName := c.args[0]
	if fn := commands[cmdName]; fn != nil {
		c.cmdFn = fn
		c.args = c.args[1:]
	} else {
		// a bare path runs as a script
		cmdName = "run"
		c.cmdFn = commands[cmdName]
	}

	switch cmdName {
	case "run":
		if len(c.args) != 1 {
			return errors.New("run: a single script file must be provided")
		}
	default:
		if len(c.args) == 0 {
			return fmt.Errorf("%s: at least one file must be provided", cmdName)
		}
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return exitCode(c.cmdFn(ctx, stdio, c.args))
}

// exitCode maps a pipeline error to the process exit code: errors are
// already printed by the command that produced them.
func exitCode(err error) mainer.ExitCode {
	if err == nil {
		return mainer.Success
	}
	var el scanner.ErrorList
	if errors.As(err, &el) {
		return CompileErrCode
	}
	var re *interp.RuntimeError
	if errors.As(err, &re) {
		return RuntimeErrCode
	}
	return mainer.Failure
}

// valid commands are those that take a context, a mainer.Stdio and a slice
// of strings as input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
