// Package manifest loads the optional tools manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmplkit/toolsync/internal/domain"
)

// Ensure Loader implements domain.ManifestLoader.
var _ domain.ManifestLoader = (*Loader)(nil)

// Loader loads the tools manifest from .toolsync/manifest.yaml.
type Loader struct {
	repoRoot string
}

// NewLoader creates a new manifest Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{repoRoot: repoRoot}
}

// Load returns the manifest, or nil if no manifest file exists.
func (l *Loader) Load() (*domain.Manifest, error) {
	path := domain.ManifestPath(l.repoRoot)
	data, err := os.ReadFile(path) // #nosec G304 - path is derived from repo root
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m domain.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
