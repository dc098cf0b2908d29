package domain

// Manifest lists additional submodules to update alongside the tools
// submodule. It is optional; most template repositories only carry "tools".
type Manifest struct {
	Tools []ManifestEntry `yaml:"tools"`
}

// ManifestEntry names one managed submodule.
type ManifestEntry struct {
	Path   string `yaml:"path"`
	Branch string `yaml:"branch,omitempty"`
}

// Paths returns the submodule paths in manifest order, skipping blanks.
func (m *Manifest) Paths() []string {
	if m == nil {
		return nil
	}
	var paths []string
	for _, e := range m.Tools {
		if e.Path != "" {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
