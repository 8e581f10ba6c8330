package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/getcord/importfix/internal/domain"
	domainmocks "github.com/getcord/importfix/internal/domain/mocks"
	m "github.com/getcord/importfix/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf
	t.Cleanup(func() { workflow = originalWorkflow })
}

func TestRootCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Paths) == 0 &&
			!args.Mode.Compatible &&
			args.Threads == 1 &&
			args.ShardIndex == 0 &&
			args.TotalShardCount == 1 &&
			!args.Summary
	})).Return(nil).Once()

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"server/src/a.ts", "common"}, args.Paths) &&
			assert.ObjectsAreEqual([]string{"_test", "generated/"}, args.Exclude) &&
			args.Mode.Compatible &&
			args.Threads == 4 &&
			args.ShardIndex == 1 &&
			args.TotalShardCount == 3 &&
			args.Summary
	})).Return(nil).Once()

	cmd.SetArgs([]string{
		"--compatible", "--summary",
		"-p", "4", "--shard", "1/3",
		"-x", "_test", "--exclude", "generated/",
		"server/src/a.ts", "common",
	})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidParallel(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--parallel", "0"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--parallel")
	mockWorkflow.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	boom := errors.New("failed to read x.ts: permission denied")
	mockWorkflow.On("Run", mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs([]string{"x.ts"})
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_RewritesRepository(t *testing.T) {
	withWorkflow(t, nil)

	root := t.TempDir()
	src := filepath.Join(root, "server", "src", "x.ts")
	writeTestFile(t, filepath.Join(root, "server", "src", "util", "email.ts"), "export {};\n")
	writeTestFile(t, src, "import * as pg from 'pg';\nimport { send } from 'server/src/util/email';\nimport { y } from './missing';\n")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--root", root})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "import pg from 'pg';\nimport { send } from 'server/src/util/email.ts';\nimport { y } from './missing';\n", string(got))
	assert.Equal(t, "Could not resolve import: ./missing\n", out.String())
}

func TestParseShardFlag(t *testing.T) {
	tests := []struct {
		shard     string
		wantIndex int
		wantTotal int
	}{
		{shard: "", wantIndex: 0, wantTotal: 1},
		{shard: "0/3", wantIndex: 0, wantTotal: 3},
		{shard: "2/3", wantIndex: 2, wantTotal: 3},
		{shard: "3/3", wantIndex: 0, wantTotal: 1},
		{shard: "-1/3", wantIndex: 0, wantTotal: 1},
		{shard: "1/0", wantIndex: 0, wantTotal: 1},
		{shard: "abc", wantIndex: 0, wantTotal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.shard, func(t *testing.T) {
			index, total := parseShardFlag(tt.shard)

			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestParsePaths(t *testing.T) {
	assert.Empty(t, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.ts", "dir"}, parsePaths([]string{"a.ts", "dir"}))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
