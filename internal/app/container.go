// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/tmplkit/toolsync/internal/domain"
	"github.com/tmplkit/toolsync/internal/infra/config"
	"github.com/tmplkit/toolsync/internal/infra/executor"
	"github.com/tmplkit/toolsync/internal/infra/git"
	"github.com/tmplkit/toolsync/internal/infra/logging"
	"github.com/tmplkit/toolsync/internal/infra/manifest"
	"github.com/tmplkit/toolsync/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor     domain.CommandExecutor
	Git          domain.Git
	ConfigLoader domain.ConfigLoader
	Manifests    domain.ManifestLoader

	// Pointer fields
	Logger *slog.Logger

	// Root is the invocation working directory. The marker probe, the
	// update command, and the config and manifest lookups are all
	// anchored here, never at the enclosing repository's toplevel.
	Root string

	// Out receives user-facing output. Defaults to os.Stdout.
	Out io.Writer
}

// New creates a new Container rooted at the given directory.
// The update path only needs the marker probe and a process spawn, so a
// directory outside any git repository is still accepted; only the
// status and init surfaces require repository detection.
func New(dir string) (*Container, error) {
	exec := executor.NewClient()

	var gitClient domain.Git
	if client, err := git.NewClient(dir, exec); err == nil {
		gitClient = client
	}

	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Executor:     exec,
		Git:          gitClient,
		ConfigLoader: configLoader,
		Manifests:    manifest.NewLoader(dir),
		Logger:       logger,
		Root:         dir,
		Out:          os.Stdout,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	exec domain.CommandExecutor,
	gitClient domain.Git,
	configs domain.ConfigLoader,
	manifests domain.ManifestLoader,
	logger *slog.Logger,
	root string,
	out io.Writer,
) *Container {
	return &Container{
		Executor:     exec,
		Git:          gitClient,
		ConfigLoader: configs,
		Manifests:    manifests,
		Logger:       logger,
		Root:         root,
		Out:          out,
	}
}

// UseCase factory methods

// UpdateToolsUseCase returns a new UpdateTools use case.
func (c *Container) UpdateToolsUseCase() *usecase.UpdateTools {
	return usecase.NewUpdateTools(c.Executor, c.ConfigLoader, c.Manifests, c.Logger, c.Root, c.Out)
}

// ToolsStatusUseCase returns a new ToolsStatus use case.
func (c *Container) ToolsStatusUseCase() *usecase.ToolsStatus {
	return usecase.NewToolsStatus(c.Git, c.ConfigLoader)
}

// InitToolsUseCase returns a new InitTools use case.
func (c *Container) InitToolsUseCase() *usecase.InitTools {
	return usecase.NewInitTools(c.Executor, c.Git, c.ConfigLoader, c.Root, c.Out)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}
