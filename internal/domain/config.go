package domain

// ConfigFileName is the name of the toolsync configuration file.
const ConfigFileName = ".toolsync.toml"

// Config is the toolsync configuration.
// Defaults reproduce the template helper's stock behavior; overrides come
// from the global and repository config files.
type Config struct {
	Tools  ToolsConfig  `toml:"tools"`
	Update UpdateConfig `toml:"update"`
	Log    LogConfig    `toml:"log"`
}

// ToolsConfig configures where the tools submodule lives.
type ToolsConfig struct {
	// Dir is the submodule directory relative to the repository root.
	Dir string `toml:"dir"`
}

// UpdateConfig configures the submodule update command.
type UpdateConfig struct {
	// Remote updates to the remote tracking branch (--remote).
	Remote *bool `toml:"remote"`
	// Merge merges the fetched commit into the current branch (--merge).
	Merge *bool `toml:"merge"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// NewDefaultConfig returns the stock configuration: update the "tools"
// submodule with --remote --merge.
func NewDefaultConfig() *Config {
	t := true
	return &Config{
		Tools:  ToolsConfig{Dir: "tools"},
		Update: UpdateConfig{Remote: &t, Merge: &t},
		Log:    LogConfig{Level: "info"},
	}
}

// Merge overlays non-zero fields of other onto c and returns the result.
// Later sources take precedence.
func (c *Config) Merge(other *Config) *Config {
	merged := *c
	if other == nil {
		return &merged
	}
	if other.Tools.Dir != "" {
		merged.Tools.Dir = other.Tools.Dir
	}
	if other.Update.Remote != nil {
		merged.Update.Remote = other.Update.Remote
	}
	if other.Update.Merge != nil {
		merged.Update.Merge = other.Update.Merge
	}
	if other.Log.Level != "" {
		merged.Log.Level = other.Log.Level
	}
	return &merged
}

// UpdateCommand builds the submodule update command for the given
// submodule paths. With no paths and stock flags this is exactly
// "git submodule update --remote --merge".
func (c *Config) UpdateCommand(dir string, paths ...string) *ExecCommand {
	args := []string{"submodule", "update"}
	if c.Update.Remote == nil || *c.Update.Remote {
		args = append(args, "--remote")
	}
	if c.Update.Merge == nil || *c.Update.Merge {
		args = append(args, "--merge")
	}
	args = append(args, paths...)
	return &ExecCommand{Program: "git", Dir: dir, Args: args}
}

// InitCommand builds the first-time checkout command.
func (c *Config) InitCommand(dir string) *ExecCommand {
	return &ExecCommand{
		Program: "git",
		Dir:     dir,
		Args:    []string{"submodule", "update", "--init", "--recursive"},
	}
}
