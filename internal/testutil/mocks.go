// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/tmplkit/toolsync/internal/domain"
)

// MockExecutor is a test double for domain.CommandExecutor.
// It records every command and returns the configured error.
type MockExecutor struct {
	Commands []*domain.ExecCommand
	Output   []byte
	RunErr   error
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// Run records the command and returns the configured output and error.
func (m *MockExecutor) Run(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	return m.Output, m.RunErr
}

// RunInherited records the command and returns the configured error.
func (m *MockExecutor) RunInherited(cmd *domain.ExecCommand) error {
	m.Commands = append(m.Commands, cmd)
	return m.RunErr
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	Submodules []*domain.SubmoduleInfo
	StatusErr  error
}

// HasGitmodulesEntry reports whether a configured submodule matches path.
func (m *MockGit) HasGitmodulesEntry(path string) (bool, error) {
	if m.StatusErr != nil {
		return false, m.StatusErr
	}
	for _, sub := range m.Submodules {
		if sub.Path == path {
			return true, nil
		}
	}
	return false, nil
}

// SubmoduleStatus returns the configured submodule at path.
func (m *MockGit) SubmoduleStatus(path string) (*domain.SubmoduleInfo, error) {
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	for _, sub := range m.Submodules {
		if sub.Path == path {
			return sub, nil
		}
	}
	return nil, domain.ErrSubmoduleNotFound
}

// SubmoduleStatuses returns all configured submodules.
func (m *MockGit) SubmoduleStatuses() ([]*domain.SubmoduleInfo, error) {
	if m.StatusErr != nil {
		return nil, m.StatusErr
	}
	return m.Submodules, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, defaulting to the stock configuration.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockManifestLoader is a test double for domain.ManifestLoader.
type MockManifestLoader struct {
	Manifest *domain.Manifest
	LoadErr  error
}

// Load returns the configured manifest.
func (m *MockManifestLoader) Load() (*domain.Manifest, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Manifest, nil
}

// Interface checks.
var (
	_ domain.CommandExecutor = (*MockExecutor)(nil)
	_ domain.Git             = (*MockGit)(nil)
	_ domain.ConfigLoader    = (*MockConfigLoader)(nil)
	_ domain.ManifestLoader  = (*MockManifestLoader)(nil)
)
