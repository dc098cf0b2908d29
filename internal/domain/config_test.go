package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_UpdateCommand_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	cmd := cfg.UpdateCommand("/repo")

	assert.Equal(t, "git", cmd.Program)
	assert.Equal(t, "/repo", cmd.Dir)
	assert.Equal(t, []string{"submodule", "update", "--remote", "--merge"}, cmd.Args)
	assert.Equal(t, "git submodule update --remote --merge", cmd.String())
}

func TestConfig_UpdateCommand_FlagsDisabled(t *testing.T) {
	f := false
	cfg := NewDefaultConfig()
	cfg.Update.Remote = &f
	cfg.Update.Merge = &f

	cmd := cfg.UpdateCommand("/repo")

	assert.Equal(t, []string{"submodule", "update"}, cmd.Args)
}

func TestConfig_UpdateCommand_WithPaths(t *testing.T) {
	cfg := NewDefaultConfig()

	cmd := cfg.UpdateCommand("/repo", "extras/lint")

	assert.Equal(t, []string{"submodule", "update", "--remote", "--merge", "extras/lint"}, cmd.Args)
}

func TestConfig_InitCommand(t *testing.T) {
	cmd := NewDefaultConfig().InitCommand("/repo")

	assert.Equal(t, []string{"submodule", "update", "--init", "--recursive"}, cmd.Args)
}

func TestConfig_Merge_LaterTakesPrecedence(t *testing.T) {
	f := false
	base := NewDefaultConfig()
	over := &Config{
		Tools:  ToolsConfig{Dir: "vendor-tools"},
		Update: UpdateConfig{Merge: &f},
		Log:    LogConfig{Level: "debug"},
	}

	merged := base.Merge(over)

	assert.Equal(t, "vendor-tools", merged.Tools.Dir)
	require.NotNil(t, merged.Update.Remote)
	assert.True(t, *merged.Update.Remote, "unset field keeps the base value")
	require.NotNil(t, merged.Update.Merge)
	assert.False(t, *merged.Update.Merge)
	assert.Equal(t, "debug", merged.Log.Level)
}

func TestConfig_Merge_Nil(t *testing.T) {
	base := NewDefaultConfig()

	merged := base.Merge(nil)

	assert.Equal(t, "tools", merged.Tools.Dir)
}
