package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	res := cliResult{code, stdout.String(), stderr.String()}
	t.Logf("exit %v\nstderr: %s", res.code, res.stderr)
	return res
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_run_usage(t *testing.T) {
	res := runCLI(t, "")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "usage: gobf [flags] PROGRAM")

	res = runCLI(t, "", "a.bf", "b.bf")
	assert.Equal(t, exitUsage, res.code, "expected exactly one program")

	res = runCLI(t, "", "-nope", "a.bf")
	assert.Equal(t, exitUsage, res.code, "expected unknown flag rejected")
}

func Test_run_unreadable(t *testing.T) {
	res := runCLI(t, "", filepath.Join(t.TempDir(), "missing.bf"))
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "cannot read program")
	assert.Empty(t, res.stdout)
}

func Test_run_hello(t *testing.T) {
	path := writeFile(t, "hello.bf", "say hello\n"+helloProgram+"\n")
	res := runCLI(t, "", path)
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "Hello", res.stdout)
	assert.Empty(t, res.stderr)
}

func Test_run_echo(t *testing.T) {
	path := writeFile(t, "cat.bf", ",[.,]")
	res := runCLI(t, "abc", path)
	assert.Equal(t, exitError, res.code, "expected input to run out")
	assert.Equal(t, "abc", res.stdout, "expected output flushed before the error")
	assert.Contains(t, res.stderr, "input failed: EOF")
}

func Test_run_compileError(t *testing.T) {
	path := writeFile(t, "bad.bf", "+[\n]]")
	res := runCLI(t, "", path)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "bad.bf:2:2: unbalanced brackets: unmatched ]")
}

func Test_run_runtimeError(t *testing.T) {
	path := writeFile(t, "under.bf", "+<")
	res := runCLI(t, "", path)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "@1 < dp=0: data pointer underflow")
}

func Test_run_timeout(t *testing.T) {
	path := writeFile(t, "forever.bf", "+[]")
	res := runCLI(t, "", "-timeout", "20ms", path)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "time limit 20ms exceeded: context deadline exceeded")
}

func Test_run_traceAndDump(t *testing.T) {
	path := writeFile(t, "echo.bf", ",.")
	logPath := filepath.Join(t.TempDir(), "run.log")
	res := runCLI(t, "Z", "-trace", "-dump", "-log-file", logPath, path)
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "Z", res.stdout)
	assert.Contains(t, res.stderr, `level=DEBUG msg="@0 , dp=0 cell=0"`)
	assert.Contains(t, res.stderr, `level=DEBUG msg="@1 . dp=0 cell=90"`)
	assert.Contains(t, res.stderr, `msg="# VM Dump"`)
	assert.Contains(t, res.stderr, `msg="  @0 90 'Z' <-- dp"`)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"@0 , dp=0 cell=0"`, "expected json trace in log file")
}

func Test_run_config(t *testing.T) {
	path := writeFile(t, "echo.bf", ",.")
	cfgPath := writeFile(t, "bf.toml", "trace = true\n[log]\nlevel = \"warn\"\n")

	res := runCLI(t, "Q", "-config", cfgPath, path)
	assert.Equal(t, exitOK, res.code)
	assert.Equal(t, "Q", res.stdout)
	assert.Contains(t, res.stderr, "level=DEBUG", "expected trace to lower the log level")

	res = runCLI(t, "Q", "-config", cfgPath, "-trace=false", path)
	assert.Equal(t, exitOK, res.code)
	assert.Empty(t, res.stderr, "expected flag to override config")

	badPath := writeFile(t, "bad.toml", "trace = \"yes\"\n")
	res = runCLI(t, "", "-config", badPath, path)
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "parse error in "+badPath)
}
