package domain

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Run runs the command and returns its combined output.
	Run(cmd *ExecCommand) ([]byte, error)

	// RunInherited runs a command with stdin/stdout/stderr connected
	// to the caller's terminal. A non-zero exit is returned as the
	// underlying *exec.ExitError so callers can inspect the status.
	RunInherited(cmd *ExecCommand) error
}

// Git provides repository-level git operations.
type Git interface {
	// HasGitmodulesEntry checks whether .gitmodules declares a
	// submodule at the given path.
	HasGitmodulesEntry(path string) (bool, error)

	// SubmoduleStatus returns the recorded state of the submodule at path.
	SubmoduleStatus(path string) (*SubmoduleInfo, error)

	// SubmoduleStatuses returns the recorded state of all submodules.
	SubmoduleStatuses() ([]*SubmoduleInfo, error)
}

// SubmoduleInfo describes one submodule as recorded in the repository.
type SubmoduleInfo struct {
	Path     string // Path relative to the repository root
	URL      string // Remote URL from .gitmodules
	Branch   string // Tracking branch from .gitmodules ("" = remote HEAD)
	Expected string // Commit SHA recorded in the index
	Current  string // Commit SHA checked out in the worktree ("" = not checked out)
}

// InSync reports whether the checked-out commit matches the recorded one.
func (s *SubmoduleInfo) InSync() bool {
	return s.Current != "" && s.Current == s.Expected
}

// ConfigLoader loads the merged toolsync configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- repo).
	Load() (*Config, error)
}

// ManifestLoader loads the optional tools manifest.
type ManifestLoader interface {
	// Load returns the manifest, or nil if no manifest file exists.
	Load() (*Manifest, error)
}
