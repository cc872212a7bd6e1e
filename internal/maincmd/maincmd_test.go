package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevemarin/golox/internal/maincmd"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func runMain(t *testing.T, stdin string, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()
	var out, ebuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &ebuf,
	}
	c := maincmd.Cmd{BuildVersion: "0.0", BuildDate: "2026-01-01"}
	code := c.Main(append([]string{"golox"}, args...), stdio)
	return code, out.String(), ebuf.String()
}

func TestRunFileSuccess(t *testing.T) {
	path := writeScript(t, `print 1 + 1;`)
	code, out, _ := runMain(t, "", path)
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "2\n", out)
}

func TestRunFileExplicitCommand(t *testing.T) {
	path := writeScript(t, `print "ok";`)
	code, out, _ := runMain(t, "", "run", path)
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "ok\n", out)
}

func TestRunFileCompileError(t *testing.T) {
	path := writeScript(t, `print this;`)
	code, out, diags := runMain(t, "", path)
	require.Equal(t, maincmd.CompileErrCode, code)
	assert.Empty(t, out)
	assert.Contains(t, diags, "Can't use 'this' outside of a class.")
}

func TestRunFileRuntimeError(t *testing.T) {
	path := writeScript(t, "123.foo;")
	code, out, diags := runMain(t, "", path)
	require.Equal(t, maincmd.RuntimeErrCode, code)
	assert.Empty(t, out)
	assert.Contains(t, diags, "Only instances have properties.")
	assert.Contains(t, diags, "[line 1]")
}

func TestTokenizeCommand(t *testing.T) {
	path := writeScript(t, `var x = 1;`)
	code, out, _ := runMain(t, "", "tokenize", path)
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "  1: var\n  1: identifier x\n  1: =\n  1: number literal 1\n  1: ;\n  1: end of file\n", out)
}

func TestParseCommand(t *testing.T) {
	path := writeScript(t, `print "hi";`)
	code, out, _ := runMain(t, "", "parse", path)
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "  1: print\n  1:   literal \"hi\"\n", out)
}

func TestResolveCommand(t *testing.T) {
	path := writeScript(t, `{ var x = 1; print x; }`)
	code, out, _ := runMain(t, "", "resolve", path)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out, "variable x [depth=0]")
}

func TestResolveCommandGlobal(t *testing.T) {
	path := writeScript(t, `var x = 1; print x;`)
	code, out, _ := runMain(t, "", "resolve", path)
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out, "variable x [global]")
}

func TestReplRunsBlocks(t *testing.T) {
	t.Setenv("GOLOX_QUIET", "true")
	code, out, _ := runMain(t, "var a = 2; print a * 3;")
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "6\n", out)
}

func TestReplEmptyInputExits(t *testing.T) {
	t.Setenv("GOLOX_QUIET", "true")
	code, out, _ := runMain(t, "")
	require.Equal(t, mainer.Success, code)
	require.Empty(t, out)
}

func TestVersion(t *testing.T) {
	code, out, _ := runMain(t, "", "-v")
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "golox 0.0 2026-01-01\n", out)
}

func TestMissingFile(t *testing.T) {
	code, _, diags := runMain(t, "", filepath.Join(t.TempDir(), "nope.lox"))
	require.Equal(t, mainer.Failure, code)
	assert.NotEmpty(t, diags)
}
