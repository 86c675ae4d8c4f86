package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

func writeBoard(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

const tinyBoard = `
grid {
  layout = "S.T"
}
playback {
  algorithm = bfs
  speed     = 100
}
`

func TestRun_FinalFrame(t *testing.T) {
	t.Parallel()
	path := writeBoard(t, tinyBoard)
	var out, logs bytes.Buffer

	require.NoError(t, run(context.Background(), &out, &logs, []string{"-config", path}))
	assert.Equal(t, "S*T\n\nalgorithm=bfs explored=1 path=1 found=true\n", out.String())
	assert.Contains(t, logs.String(), "Run computed.")
}

func TestRun_EveryFrame(t *testing.T) {
	t.Parallel()
	path := writeBoard(t, tinyBoard)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, []string{"-config", path, "-frames"}))
	want := "step 0 explored (0,1)\nS+T\n\n" +
		"step 1 path (0,1)\nS*T\n\n" +
		"algorithm=bfs explored=1 path=1 found=true\n"
	assert.Equal(t, want, out.String())
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()
	path := writeBoard(t, `
grid {
  layout = "S#T"
}
`)
	var out, logs bytes.Buffer

	err := run(context.Background(), &out, &logs,
		[]string{"-config", path, "-algo", "DFS", "-speed", "100", "-log-format", "json", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "S#T\n\nalgorithm=dfs explored=0 path=0 found=false\n", out.String())
	assert.Contains(t, logs.String(), `"msg":"Configuration loaded."`)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), &out, &bytes.Buffer{}, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_BadArguments(t *testing.T) {
	t.Parallel()
	cases := [][]string{
		{"-log-format", "xml"},
		{"-log-level", "trace"},
		{"-algo", "astar"},
		{"-speed", "101"},
		{"-nope"},
		{"extra"},
	}
	for _, args := range cases {
		err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, "%v", args)
		assert.Equal(t, 2, exitErr.Code, "%v", args)
	}
}

func TestRun_BadConfig(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing.hcl")
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", missing})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	path := writeBoard(t, `grid { obstacles = [[0, 99]] }`)
	err = run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", path})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, &bytes.Buffer{}, &bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
