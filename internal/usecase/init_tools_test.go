package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplkit/toolsync/internal/domain"
	"github.com/tmplkit/toolsync/internal/testutil"
)

func TestInitTools_Execute_Success(t *testing.T) {
	// Setup - .gitmodules declares tools, marker absent
	root := t.TempDir()
	exec := testutil.NewMockExecutor()
	git := &testutil.MockGit{Submodules: []*domain.SubmoduleInfo{{Path: "tools"}}}
	var buf bytes.Buffer
	uc := NewInitTools(exec, git, &testutil.MockConfigLoader{}, root, &buf)

	// Execute
	out, err := uc.Execute(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "tools", out.Path)
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, exec.Commands[0].Args)
	assert.Equal(t, "Running: git submodule update --init --recursive\n", buf.String())
}

func TestInitTools_Execute_AlreadyCheckedOut(t *testing.T) {
	// Setup - marker already present
	root := t.TempDir()
	writeMarker(t, root, "tools")
	exec := testutil.NewMockExecutor()
	git := &testutil.MockGit{Submodules: []*domain.SubmoduleInfo{{Path: "tools"}}}
	uc := NewInitTools(exec, git, &testutil.MockConfigLoader{}, root, io.Discard)

	// Execute
	_, err := uc.Execute(context.Background())

	// Assert
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
	assert.Empty(t, exec.Commands)
}

func TestInitTools_Execute_NoGitmodulesEntry(t *testing.T) {
	// Setup - nothing declared in .gitmodules
	root := t.TempDir()
	exec := testutil.NewMockExecutor()
	uc := NewInitTools(exec, &testutil.MockGit{}, &testutil.MockConfigLoader{}, root, io.Discard)

	// Execute
	_, err := uc.Execute(context.Background())

	// Assert
	require.ErrorIs(t, err, domain.ErrNoGitmodulesEntry)
	assert.Empty(t, exec.Commands)
}

func TestInitTools_Execute_CommandFailure_PropagatesUnwrapped(t *testing.T) {
	// Setup
	root := t.TempDir()
	exec := testutil.NewMockExecutor()
	failure := errors.New("exit status 1")
	exec.RunErr = failure
	git := &testutil.MockGit{Submodules: []*domain.SubmoduleInfo{{Path: "tools"}}}
	uc := NewInitTools(exec, git, &testutil.MockConfigLoader{}, root, io.Discard)

	// Execute
	_, err := uc.Execute(context.Background())

	// Assert
	require.Error(t, err)
	assert.Same(t, failure, err)
}
