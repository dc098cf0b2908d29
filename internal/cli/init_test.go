package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplkit/toolsync/internal/domain"
	"github.com/tmplkit/toolsync/internal/testutil"
)

func TestInitCommand_ChecksOutSubmodule(t *testing.T) {
	root := t.TempDir()
	var buf bytes.Buffer
	exec := testutil.NewMockExecutor()
	git := &testutil.MockGit{Submodules: []*domain.SubmoduleInfo{{Path: "tools"}}}
	c := newTestContainer(exec, git, root, &buf)
	cmd := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	require.NoError(t, err)
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, exec.Commands[0].Args)
	assert.Contains(t, out.String(), "Initialized tools")
}

func TestInitCommand_AlreadyCheckedOut(t *testing.T) {
	root := t.TempDir()
	markToolsCheckedOut(t, root)
	git := &testutil.MockGit{Submodules: []*domain.SubmoduleInfo{{Path: "tools"}}}
	c := newTestContainer(testutil.NewMockExecutor(), git, root, &bytes.Buffer{})
	cmd := NewRootCommand(c, "test-version")
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}

func TestInitCommand_OutsideRepo(t *testing.T) {
	c := newTestContainer(testutil.NewMockExecutor(), nil, t.TempDir(), &bytes.Buffer{})
	c.Git = nil
	cmd := NewRootCommand(c, "test-version")
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	require.ErrorIs(t, err, domain.ErrNotGitRepository)
}
