package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmplkit/toolsync/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	// No config files anywhere
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "tools", cfg.Tools.Dir)
	require.NotNil(t, cfg.Update.Remote)
	assert.True(t, *cfg.Update.Remote)
	require.NotNil(t, cfg.Update.Merge)
	assert.True(t, *cfg.Update.Merge)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_Load_RepoOverridesGlobal(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[tools]\ndir = \"global-tools\"\n\n[log]\nlevel = \"debug\"\n")
	writeConfig(t, repoRoot, "[tools]\ndir = \"repo-tools\"\n")
	loader := NewLoaderWithGlobalDir(repoRoot, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "repo-tools", cfg.Tools.Dir, "repo config wins")
	assert.Equal(t, "debug", cfg.Log.Level, "global value survives when repo is silent")
}

func TestLoader_Load_UpdateFlags(t *testing.T) {
	repoRoot := t.TempDir()
	writeConfig(t, repoRoot, "[update]\nmerge = false\n")
	loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	require.NotNil(t, cfg.Update.Merge)
	assert.False(t, *cfg.Update.Merge)
	require.NotNil(t, cfg.Update.Remote)
	assert.True(t, *cfg.Update.Remote, "unset flag keeps the default")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	repoRoot := t.TempDir()
	writeConfig(t, repoRoot, "not toml [")
	loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir())

	_, err := loader.Load()

	require.Error(t, err)
}

func TestLoader_Load_NoGlobalDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "tools", cfg.Tools.Dir)
}
