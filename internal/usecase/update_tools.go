package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tmplkit/toolsync/internal/domain"
)

// NoSubmoduleMessage is printed when the tools submodule is not checked out.
const NoSubmoduleMessage = "No tools submodule found."

// UpdateToolsInput contains the parameters for updating the tools submodule.
type UpdateToolsInput struct {
	// Dir overrides the repository root. Empty means the root the use
	// case was constructed with (the process working directory).
	Dir string
}

// UpdateToolsOutput contains the result of an update run.
type UpdateToolsOutput struct {
	Updated []string // Submodule paths that were updated
	Skipped []string // Manifest paths skipped because their marker is absent
}

// UpdateTools is the use case for syncing the tools submodule with its remote.
type UpdateTools struct {
	executor  domain.CommandExecutor
	configs   domain.ConfigLoader
	manifests domain.ManifestLoader
	logger    *slog.Logger
	root      string
	out       io.Writer
}

// NewUpdateTools creates a new UpdateTools use case.
func NewUpdateTools(
	executor domain.CommandExecutor,
	configs domain.ConfigLoader,
	manifests domain.ManifestLoader,
	logger *slog.Logger,
	root string,
	out io.Writer,
) *UpdateTools {
	return &UpdateTools{
		executor:  executor,
		configs:   configs,
		manifests: manifests,
		logger:    logger,
		root:      root,
		out:       out,
	}
}

// Execute updates the tools submodule by:
// 1. Probing the <tools>/.git marker
// 2. Running `git submodule update --remote --merge` with inherited stdio
// 3. Repeating for any manifest-listed submodules that are checked out
//
// When the marker is absent it prints a notice and succeeds without
// spawning anything. A child process failure is returned unwrapped so the
// caller can mirror the child's exit status.
func (uc *UpdateTools) Execute(_ context.Context, in UpdateToolsInput) (*UpdateToolsOutput, error) {
	root := uc.root
	if in.Dir != "" {
		root = in.Dir
	}

	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if !domain.MarkerExists(root, cfg.Tools.Dir) {
		uc.logger.Debug("marker absent", "path", domain.MarkerPath(root, cfg.Tools.Dir))
		fmt.Fprintln(uc.out, NoSubmoduleMessage)
		return &UpdateToolsOutput{}, nil
	}

	out := &UpdateToolsOutput{}
	if err := uc.run(cfg.UpdateCommand(root)); err != nil {
		return nil, err
	}
	out.Updated = append(out.Updated, cfg.Tools.Dir)

	extra, err := uc.manifestPaths(cfg.Tools.Dir)
	if err != nil {
		return nil, err
	}
	for _, path := range extra {
		if !domain.MarkerExists(root, path) {
			uc.logger.Debug("manifest entry not checked out", "path", path)
			out.Skipped = append(out.Skipped, path)
			continue
		}
		if err := uc.run(cfg.UpdateCommand(root, path)); err != nil {
			return nil, err
		}
		out.Updated = append(out.Updated, path)
	}
	return out, nil
}

// run prints the banner and spawns the command with inherited stdio.
// The error is returned as-is; wrapping it would hide the *exec.ExitError
// that carries the child's exit status.
func (uc *UpdateTools) run(cmd *domain.ExecCommand) error {
	fmt.Fprintf(uc.out, "Running: %s\n", cmd)
	return uc.executor.RunInherited(cmd)
}

// manifestPaths returns manifest entries excluding the primary tools dir.
func (uc *UpdateTools) manifestPaths(toolsDir string) ([]string, error) {
	if uc.manifests == nil {
		return nil, nil
	}
	m, err := uc.manifests.Load()
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	var paths []string
	for _, path := range m.Paths() {
		if path != toolsDir {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
