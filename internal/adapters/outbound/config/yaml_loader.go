package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pds-go/skeleton/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the per-root config file.
const FileName = ".pds-skeleton.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .pds-skeleton.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .pds-skeleton.yaml from root.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(root string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays explicit values on top of the defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Output != "" {
		result.Output = override.Output
	}
	if len(override.Ignore) > 0 {
		result.Ignore = override.Ignore
	}
	if len(override.Generate.Skip) > 0 {
		result.Generate.Skip = override.Generate.Skip
	}

	return result
}
