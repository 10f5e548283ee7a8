package domain

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// OutputFormat selects how validate renders a report.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
)

// ValidOutputFormats enumerates all recognized output formats.
var ValidOutputFormats = []OutputFormat{OutputText, OutputTable, OutputJSON}

// ProjectConfig holds project-level configuration loaded from .pds-skeleton.yaml.
// The rule table itself is not configurable.
type ProjectConfig struct {
	Output   OutputFormat   `yaml:"output"   json:"output,omitempty"`
	Ignore   []string       `yaml:"ignore"   json:"ignore,omitempty"`
	Generate GenerateConfig `yaml:"generate" json:"generate,omitempty"`
}

// GenerateConfig tunes the scaffolder.
type GenerateConfig struct {
	// Skip lists category slugs that are never scaffolded.
	Skip []string `yaml:"skip" json:"skip,omitempty"`
}

// DefaultConfig returns the config used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Output: OutputText}
}

// SkippedCategories resolves Generate.Skip to categories. Unknown slugs are
// dropped; Validate reports them.
func (c ProjectConfig) SkippedCategories() []Category {
	var out []Category
	for _, slug := range c.Generate.Skip {
		if cat, ok := CategoryBySlug(slug); ok {
			out = append(out, cat)
		}
	}
	return out
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Output != "" && !isValidOutput(c.Output) {
		return fmt.Errorf("unknown output %q (valid: text, table, json)", c.Output)
	}

	for _, p := range c.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	for _, slug := range c.Generate.Skip {
		if _, ok := CategoryBySlug(slug); !ok {
			return fmt.Errorf("unknown category %q in generate.skip", slug)
		}
	}

	return nil
}

func isValidOutput(f OutputFormat) bool {
	for _, v := range ValidOutputFormats {
		if f == v {
			return true
		}
	}
	return false
}
