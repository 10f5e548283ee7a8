package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/camelcase"
)

// Category identifies one of the fixed package layout conventions.
type Category string

const (
	CategoryCommandLineExecutables Category = "CommandLineExecutables"
	CategoryConfigurationFiles     Category = "ConfigurationFiles"
	CategoryDocumentationFiles     Category = "DocumentationFiles"
	CategoryPublicWebServerFiles   Category = "PublicWebServerFiles"
	CategoryOtherResourceFiles     Category = "OtherResourceFiles"
	CategorySourceFiles            Category = "SourceFiles"
	CategoryTests                  Category = "Tests"
	CategoryChangelog              Category = "Changelog"
	CategoryContributionGuide      Category = "ContributionGuide"
	CategoryLicense                Category = "License"
	CategoryReadme                 Category = "Readme"
)

// Slug returns the kebab-case key used in config files and MCP arguments,
// e.g. "command-line-executables".
func (c Category) Slug() string {
	words := camelcase.Split(string(c))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// CategoryBySlug resolves a slug back to its category.
func CategoryBySlug(slug string) (Category, bool) {
	for _, r := range rules {
		if r.Category.Slug() == slug {
			return r.Category, true
		}
	}
	return "", false
}

// State classifies a category after matching. The numeric values are fixed
// (1 through 4) and must not be reordered.
type State int

const (
	StateOptionalNotPresent State = iota + 1
	StateCorrectPresent
	StateRecommendedNotPresent
	StateIncorrectPresent
)

var stateNames = map[State]string{
	StateOptionalNotPresent:    "optional_not_present",
	StateCorrectPresent:        "correct_present",
	StateRecommendedNotPresent: "recommended_not_present",
	StateIncorrectPresent:      "incorrect_present",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// IsAbsent reports whether the state means nothing matched.
func (s State) IsAbsent() bool {
	return s == StateOptionalNotPresent || s == StateRecommendedNotPresent
}

func (s State) MarshalText() ([]byte, error) {
	name, ok := stateNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown state %d", int(s))
	}
	return []byte(name), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for st, name := range stateNames {
		if name == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", string(text))
}

// CategoryResult is the outcome of matching one rule against a listing.
type CategoryResult struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	State    State    `json:"state"`
	Expected string   `json:"expected"`
	Actual   string   `json:"actual,omitempty"`
}

// Violates reports whether the result counts against compliance: an
// incorrectly named item, or a recommended item that is missing.
func (r CategoryResult) Violates() bool {
	if r.Expected == r.Actual {
		return false
	}
	return r.State == StateIncorrectPresent || r.State == StateRecommendedNotPresent
}

// Report is the outcome of one validation run.
type Report struct {
	Root       string           `json:"root,omitempty"`
	CommitHash string           `json:"commit_hash,omitempty"`
	Timestamp  time.Time        `json:"timestamp,omitzero"`
	Compliant  bool             `json:"compliant"`
	Results    []CategoryResult `json:"results"`
}

// Lookup returns the result keyed by its canonical name (e.g. "tests/").
func (r *Report) Lookup(expected string) (CategoryResult, bool) {
	for _, res := range r.Results {
		if res.Expected == expected {
			return res, true
		}
	}
	return CategoryResult{}, false
}

// ResultFor returns the result for a category.
func (r *Report) ResultFor(c Category) (CategoryResult, bool) {
	for _, res := range r.Results {
		if res.Category == c {
			return res, true
		}
	}
	return CategoryResult{}, false
}

// Violations returns the results that make the report non-compliant.
func (r *Report) Violations() []CategoryResult {
	var out []CategoryResult
	for _, res := range r.Results {
		if res.Violates() {
			out = append(out, res)
		}
	}
	return out
}
