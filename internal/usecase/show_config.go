package usecase

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/tmplkit/toolsync/internal/domain"
)

// ShowConfigOutput contains the rendered effective configuration.
type ShowConfigOutput struct {
	TOML string
}

// ShowConfig is the use case for printing the effective configuration.
type ShowConfig struct {
	configs domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configs domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{configs: configs}
}

// Execute renders the merged configuration as TOML.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return &ShowConfigOutput{TOML: string(data)}, nil
}
