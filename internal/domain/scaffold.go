package domain

import (
	"fmt"
	"strings"
)

// ScaffoldTarget is a placeholder the scaffolder should create.
type ScaffoldTarget struct {
	Category Category `json:"category"`
	Kind     Kind     `json:"kind"`
	// Path is relative to the package root: "bin" for directories,
	// "LICENSE.md" for files.
	Path string `json:"path"`
}

// Artifact is a placeholder that was created on disk.
type Artifact struct {
	Category Category `json:"category"`
	Kind     Kind     `json:"kind"`
	Path     string   `json:"path"`
}

// ArtifactFailure records a target the scaffolder could not create.
type ArtifactFailure struct {
	Target ScaffoldTarget `json:"target"`
	Error  string         `json:"error"`
}

// GenerateOptions controls a scaffold run.
type GenerateOptions struct {
	DryRun bool `json:"dry_run"`
}

// GenerateResult is the outcome of a scaffold run.
type GenerateResult struct {
	Root     string            `json:"root"`
	DryRun   bool              `json:"dry_run"`
	Planned  []ScaffoldTarget  `json:"planned"`
	Created  []Artifact        `json:"created"`
	Failures []ArtifactFailure `json:"failures,omitempty"`
	Before   *Report           `json:"before"`
	After    *Report           `json:"after,omitempty"`
}

// PlaceholderPath maps a canonical name to the artifact the scaffolder
// writes: directories lose their trailing "/", files get a ".md" extension.
func PlaceholderPath(rule Rule) string {
	if rule.IsDirectory() {
		return strings.TrimSuffix(rule.Canonical, "/")
	}
	return rule.Canonical + ".md"
}

// ScaffoldTargets selects every absent category, optional or recommended,
// except the skipped ones. Present categories, correct or not, are never
// touched.
func ScaffoldTargets(report *Report, skip []Category) []ScaffoldTarget {
	skipped := make(map[Category]bool, len(skip))
	for _, c := range skip {
		skipped[c] = true
	}

	var targets []ScaffoldTarget
	for _, res := range report.Results {
		if !res.State.IsAbsent() || skipped[res.Category] {
			continue
		}
		rule, ok := RuleFor(res.Category)
		if !ok {
			continue
		}
		targets = append(targets, ScaffoldTarget{
			Category: res.Category,
			Kind:     rule.Kind,
			Path:     PlaceholderPath(rule),
		})
	}
	return targets
}

// TargetError ties a creation failure to its target.
type TargetError struct {
	Target ScaffoldTarget
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("creating %s %s: %v", e.Target.Kind, e.Target.Path, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// Failures flattens a scaffolder error, usually an errors.Join of
// *TargetError values, into per-target failures.
func Failures(err error) []ArtifactFailure {
	if err == nil {
		return nil
	}

	if te, ok := err.(*TargetError); ok {
		return []ArtifactFailure{{Target: te.Target, Error: te.Err.Error()}}
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []ArtifactFailure
		for _, inner := range joined.Unwrap() {
			out = append(out, Failures(inner)...)
		}
		return out
	}

	return []ArtifactFailure{{Error: err.Error()}}
}
