package domain

import (
	"os"
	"path/filepath"
)

// ManifestFileName is the name of the optional tools manifest.
const ManifestFileName = "manifest.yaml"

// ToolsyncDirName is the per-repository toolsync directory.
const ToolsyncDirName = ".toolsync"

// MarkerPath returns the submodule marker path (<toolsDir>/.git) under root.
// Its presence indicates the submodule is checked out. Note that git
// materializes .git inside a submodule as a gitlink file, not a directory.
func MarkerPath(root, toolsDir string) string {
	return filepath.Join(root, toolsDir, ".git")
}

// MarkerExists reports whether the submodule marker is present.
// Any stat-able entry counts; the helper never distinguishes file from
// directory so that both gitlink checkouts and plain clones match.
func MarkerExists(root, toolsDir string) bool {
	_, err := os.Stat(MarkerPath(root, toolsDir))
	return err == nil
}

// ManifestPath returns the manifest location under root.
func ManifestPath(root string) string {
	return filepath.Join(root, ToolsyncDirName, ManifestFileName)
}

// GlobalConfigDir returns the toolsync directory under the given config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "toolsync")
}
