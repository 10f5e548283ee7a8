package tui_test

import (
	"strings"
	"testing"

	"github.com/pds-go/skeleton/internal/adapters/outbound/tui"
	"github.com/pds-go/skeleton/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() *domain.Report {
	return domain.Validate(domain.Listing{"README.md", "src/", "test/"})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		res  domain.CategoryResult
		want string
	}{
		{domain.CategoryResult{State: domain.StateOptionalNotPresent, Expected: "bin/"}, "Optional bin/ not present"},
		{domain.CategoryResult{State: domain.StateCorrectPresent, Expected: "README", Actual: "README.md"}, "Correct README.md present"},
		{domain.CategoryResult{State: domain.StateIncorrectPresent, Expected: "tests/", Actual: "test/"}, "Incorrect test/ present"},
		{domain.CategoryResult{State: domain.StateRecommendedNotPresent, Expected: "LICENSE"}, "Recommended LICENSE not present"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tui.Message(tt.res))
	}
}

func TestRenderReport_OneLinePerCategory(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// 11 categories plus the verdict line.
	assert.Len(t, lines, 12)
	assert.Contains(t, lines[0], "- Command-line executables: Optional bin/ not present")
	assert.Contains(t, output, "- Source files: Correct src/ present")
	assert.Contains(t, output, "- Tests: Incorrect test/ present")
	assert.Contains(t, output, "- License: Recommended LICENSE not present")
	assert.Contains(t, output, "- Readme: Correct README.md present")
}

func TestRenderReport_Verdict(t *testing.T) {
	assert.Contains(t, tui.RenderReport(sampleReport()), "not compliant (2 violations)")

	compliant := domain.Validate(domain.Listing{"LICENSE"})
	assert.Contains(t, tui.RenderReport(compliant), "Package layout is compliant.")

	one := domain.Validate(nil)
	assert.Contains(t, tui.RenderReport(one), "(1 violation)")
}

func TestRenderTable(t *testing.T) {
	output := tui.RenderTable(sampleReport())
	assert.Contains(t, output, "Command-line executables")
	assert.Contains(t, output, "Incorrect test/ present")
	assert.Contains(t, output, "tests/")
	assert.Contains(t, strings.ToLower(output), "not compliant")
}

func TestRenderGenerate_Created(t *testing.T) {
	result := &domain.GenerateResult{
		Created: []domain.Artifact{
			{Category: domain.CategoryTests, Kind: domain.KindDirectory, Path: "tests"},
			{Category: domain.CategoryLicense, Kind: domain.KindFile, Path: "LICENSE.md"},
		},
		Failures: []domain.ArtifactFailure{
			{Target: domain.ScaffoldTarget{Kind: domain.KindDirectory, Path: "docs"}, Error: "file exists"},
		},
	}
	output := tui.RenderGenerate(result)
	assert.Contains(t, output, "Created tests/\n")
	assert.Contains(t, output, "Created LICENSE.md\n")
	assert.Contains(t, output, "Failed docs/: file exists")
}

func TestRenderGenerate_DryRun(t *testing.T) {
	result := &domain.GenerateResult{
		DryRun:  true,
		Planned: []domain.ScaffoldTarget{{Kind: domain.KindFile, Path: "README.md"}},
	}
	output := tui.RenderGenerate(result)
	assert.Contains(t, output, "Would create README.md")
	assert.NotContains(t, output, "Created")
}

func TestRenderGenerate_Nothing(t *testing.T) {
	assert.Contains(t, tui.RenderGenerate(&domain.GenerateResult{}), "Nothing to create.")
}

func TestRenderRules(t *testing.T) {
	output := tui.RenderRules(domain.Rules())
	assert.Contains(t, output, "Tests")
	assert.Contains(t, output, "tests/")
	assert.Contains(t, output, "recommended")
	assert.Equal(t, 11, strings.Count(output, "\n"))
}
