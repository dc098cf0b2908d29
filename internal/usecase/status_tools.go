package usecase

import (
	"context"
	"fmt"

	"github.com/tmplkit/toolsync/internal/domain"
)

// ToolsStatusOutput contains the recorded state of all submodules.
type ToolsStatusOutput struct {
	Submodules []*domain.SubmoduleInfo
}

// ToolsStatus is the use case for inspecting submodule state.
type ToolsStatus struct {
	git     domain.Git
	configs domain.ConfigLoader
}

// NewToolsStatus creates a new ToolsStatus use case.
func NewToolsStatus(git domain.Git, configs domain.ConfigLoader) *ToolsStatus {
	return &ToolsStatus{git: git, configs: configs}
}

// Execute returns the recorded state of every submodule, with the
// configured tools submodule first.
func (uc *ToolsStatus) Execute(_ context.Context) (*ToolsStatusOutput, error) {
	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	infos, err := uc.git.SubmoduleStatuses()
	if err != nil {
		return nil, fmt.Errorf("submodule statuses: %w", err)
	}

	// Put the tools submodule at the top of the report.
	ordered := make([]*domain.SubmoduleInfo, 0, len(infos))
	for _, info := range infos {
		if info.Path == cfg.Tools.Dir {
			ordered = append(ordered, info)
		}
	}
	for _, info := range infos {
		if info.Path != cfg.Tools.Dir {
			ordered = append(ordered, info)
		}
	}
	return &ToolsStatusOutput{Submodules: ordered}, nil
}
