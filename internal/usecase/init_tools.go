package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/tmplkit/toolsync/internal/domain"
)

// InitToolsOutput contains the result of a first-time checkout.
type InitToolsOutput struct {
	Path string // Submodule path that was initialized
}

// InitTools is the use case for the first-time submodule checkout.
type InitTools struct {
	executor domain.CommandExecutor
	git      domain.Git
	configs  domain.ConfigLoader
	root     string
	out      io.Writer
}

// NewInitTools creates a new InitTools use case.
func NewInitTools(
	executor domain.CommandExecutor,
	git domain.Git,
	configs domain.ConfigLoader,
	root string,
	out io.Writer,
) *InitTools {
	return &InitTools{
		executor: executor,
		git:      git,
		configs:  configs,
		root:     root,
		out:      out,
	}
}

// Execute checks out the tools submodule for the first time by running
// `git submodule update --init --recursive`. It fails when the submodule
// is already checked out or when .gitmodules has no entry for it.
func (uc *InitTools) Execute(_ context.Context) (*InitToolsOutput, error) {
	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if domain.MarkerExists(uc.root, cfg.Tools.Dir) {
		return nil, domain.ErrAlreadyInitialized
	}

	declared, err := uc.git.HasGitmodulesEntry(cfg.Tools.Dir)
	if err != nil {
		return nil, fmt.Errorf("check .gitmodules: %w", err)
	}
	if !declared {
		return nil, fmt.Errorf("%w (path %q)", domain.ErrNoGitmodulesEntry, cfg.Tools.Dir)
	}

	cmd := cfg.InitCommand(uc.root)
	fmt.Fprintf(uc.out, "Running: %s\n", cmd)
	// Returned unwrapped so the child's exit status survives to main.
	if err := uc.executor.RunInherited(cmd); err != nil {
		return nil, err
	}
	return &InitToolsOutput{Path: cfg.Tools.Dir}, nil
}
