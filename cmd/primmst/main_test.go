package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primweight/logger"
)

const diamond = "4 5\n0 1 1\n0 2 4\n1 2 2\n1 3 5\n2 3 1\n"

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, diamond)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "4\n", out)
}

func TestRun_NotConnected(t *testing.T) {
	code, out, _ := runCLI(t, "3 1\n0 1 3\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "not connected\n", out)
}

func TestRun_SingleVertex(t *testing.T) {
	code, out, _ := runCLI(t, "1 0\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "0\n", out)
}

func TestRun_FileAndKruskal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(diamond), 0o644))

	code, out, _ := runCLI(t, "", "--method", "kruskal", "--symmetric", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "4\n", out)
}

func TestRun_StartAndSymmetric(t *testing.T) {
	// Only 1→0 is listed: unreachable from 0 unless mirrored.
	code, out, _ := runCLI(t, "2 1\n1 0 6\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "not connected\n", out)

	code, out, _ = runCLI(t, "2 1\n1 0 6\n", "--start", "1")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6\n", out)

	code, out, _ = runCLI(t, "2 1\n1 0 6\n", "--symmetric")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6\n", out)
}

func TestRun_Logging(t *testing.T) {
	code, _, errOut := runCLI(t, diamond, "--log-level", "debug", "--log-format", "json")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, `"msg":"input read"`)
	assert.Contains(t, errOut, `"msg":"prim finished"`)
	assert.Contains(t, errOut, `"component":"primmst"`)
}

func TestRun_InstallsProcessLogger(t *testing.T) {
	prev := logger.L()
	t.Cleanup(func() { logger.Set(prev) })

	var errOut bytes.Buffer
	code := run([]string{"--log-format", "json"}, strings.NewReader(diamond), &bytes.Buffer{}, &errOut)
	require.Equal(t, exitOK, code)

	errOut.Reset()
	logger.L().Info("after run")
	assert.Contains(t, errOut.String(), `"msg":"after run"`)
}

func TestRun_NegativeWeightLineSkipped(t *testing.T) {
	code, out, _ := runCLI(t, "2 2\n0 1 -3\n0 1 4\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "4\n", out)
}

func TestRun_Metrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primmst.prom")
	code, out, _ := runCLI(t, diamond, "--metrics", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "4\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `primweight_runs_total{method="prim",outcome="connected"} 1`)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primmst.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mst:\n  start_vertex: 1\n"), 0o644))

	code, out, _ := runCLI(t, "2 1\n1 0 6\n", "--config", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "6\n", out)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  int
	}{
		{"unknown flag", diamond, []string{"--bogus"}, exitUsage},
		{"bad method", diamond, []string{"--method", "boruvka"}, exitUsage},
		{"missing config", diamond, []string{"--config", "/nonexistent/primmst.yaml"}, exitUsage},
		{"missing input file", "", []string{"/nonexistent/graph.txt"}, exitError},
		{"bad header", "x\n", nil, exitError},
		{"start out of range", diamond, []string{"--start", "9"}, exitError},
		{"endpoint out of range", "2 1\n0 7 1\n", nil, exitError},
		{"total overflows", "3 2\n0 1 9223372036854775806\n1 2 9223372036854775806\n", []string{"--symmetric"}, exitError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.want, code)
			assert.Empty(t, out)
		})
	}
}
