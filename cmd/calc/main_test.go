package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBatchStdin(t *testing.T) {
	out, _, err := execute(t, "1+(2+3)\n\n65/4\n1/0\n5 *    9\n")
	require.NoError(t, err)
	require.Equal(t, "= 6\n= 16.25\nError: divide by zero\n= 5\n", out)
}

func TestSkipSpaceFlag(t *testing.T) {
	out, _, err := execute(t, "5 *    9\n", "--skip-space")
	require.NoError(t, err)
	require.Equal(t, "= 45\n", out)
}

func TestExprFlag(t *testing.T) {
	out, _, err := execute(t, "", "-e", "2+3*4", "2^10")
	require.NoError(t, err)
	require.Equal(t, "= 14\n= 1024\n", out)

	out, _, err = execute(t, "", "-e", "(1+5", "1")
	require.ErrorIs(t, err, errFailed)
	require.Equal(t, "Error: unmatched parenthesis\n= 1\n", out)

	_, _, err = execute(t, "", "-e")
	require.Error(t, err)
}

func TestRPNFlag(t *testing.T) {
	out, _, err := execute(t, "", "--rpn", "-e", "2+3*4")
	require.NoError(t, err)
	require.Equal(t, "  2 3 4 * +\n= 14\n", out)
}

func TestFileArg(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "exprs.calc")
	require.NoError(t, os.WriteFile(fn, []byte("8-3-2\n15*8/\n"), 0644))

	out, _, err := execute(t, "", fn)
	require.NoError(t, err)
	require.Equal(t, "= 3\nError: too many operations\n", out)

	_, _, err = execute(t, "", filepath.Join(t.TempDir(), "missing.calc"))
	require.Error(t, err)

	_, _, err = execute(t, "", fn, fn)
	require.Error(t, err)
}

func TestVerboseAndLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "trace.json")

	out, stderr, err := execute(t, "2*3\n", "-v", "--log-file", logFile)
	require.NoError(t, err)
	require.Equal(t, "= 6\n", out)
	require.Contains(t, stderr, `postfix="2 3 *"`)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(b), `"postfix":"2 3 *"`)
	require.Contains(t, string(b), `"result":6`)
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "2*3\n")
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestHelpDescribesBlankLines(t *testing.T) {
	out, _, err := execute(t, "", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "An empty line ends the\nprompt")
	require.Contains(t, out, "skipping blank\nlines")
}
