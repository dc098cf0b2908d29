// Package git provides git repository operations.
package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/tmplkit/toolsync/internal/domain"
)

// Client provides submodule inspection for a repository.
type Client struct {
	repoRoot string // Repository root (toplevel of the current worktree)
}

// NewClient creates a new git client by detecting the repository root
// from the given directory. Detection shells out through the executor.
func NewClient(dir string, executor domain.CommandExecutor) (*Client, error) {
	repoRoot, err := findRepoRoot(dir, executor)
	if err != nil {
		return nil, err
	}
	return &Client{repoRoot: repoRoot}, nil
}

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// HasGitmodulesEntry checks whether .gitmodules declares a submodule at path.
func (c *Client) HasGitmodulesEntry(path string) (bool, error) {
	infos, err := c.SubmoduleStatuses()
	if err != nil {
		return false, err
	}
	for _, info := range infos {
		if info.Path == path {
			return true, nil
		}
	}
	return false, nil
}

// SubmoduleStatus returns the recorded state of the submodule at path.
func (c *Client) SubmoduleStatus(path string) (*domain.SubmoduleInfo, error) {
	infos, err := c.SubmoduleStatuses()
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if info.Path == path {
			return info, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSubmoduleNotFound, path)
}

// SubmoduleStatuses returns the recorded state of all submodules.
func (c *Client) SubmoduleStatuses() ([]*domain.SubmoduleInfo, error) {
	repo, err := gogit.PlainOpen(c.repoRoot)
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	subs, err := wt.Submodules()
	if err != nil {
		return nil, fmt.Errorf("list submodules: %w", err)
	}

	infos := make([]*domain.SubmoduleInfo, 0, len(subs))
	for _, sub := range subs {
		cfg := sub.Config()
		info := &domain.SubmoduleInfo{
			Path:   cfg.Path,
			URL:    cfg.URL,
			Branch: cfg.Branch,
		}
		status, err := sub.Status()
		if err != nil {
			return nil, fmt.Errorf("submodule status %s: %w", cfg.Path, err)
		}
		if !status.Expected.IsZero() {
			info.Expected = status.Expected.String()
		}
		if !status.Current.IsZero() {
			info.Current = status.Current.String()
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// findRepoRoot resolves the toplevel of the worktree containing dir.
func findRepoRoot(dir string, executor domain.CommandExecutor) (string, error) {
	out, err := executor.Run(&domain.ExecCommand{
		Program: "git",
		Dir:     dir,
		Args:    []string{"rev-parse", "--show-toplevel"},
	})
	if err != nil {
		return "", domain.ErrNotGitRepository
	}
	return strings.TrimSpace(string(out)), nil
}
