package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pds-go/skeleton/internal/domain"
)

// ── palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

// stateStyles keys line colors by outcome: optional gaps are informational,
// everything that breaks compliance is an error.
var stateStyles = map[domain.State]lipgloss.Style{
	domain.StateOptionalNotPresent:    warnStyle,
	domain.StateCorrectPresent:        passStyle,
	domain.StateIncorrectPresent:      failStyle,
	domain.StateRecommendedNotPresent: failStyle,
}

// Message returns the human-readable outcome for a result, e.g.
// "Incorrect test/ present".
func Message(res domain.CategoryResult) string {
	switch res.State {
	case domain.StateOptionalNotPresent:
		return fmt.Sprintf("Optional %s not present", res.Expected)
	case domain.StateCorrectPresent:
		return fmt.Sprintf("Correct %s present", res.Actual)
	case domain.StateIncorrectPresent:
		return fmt.Sprintf("Incorrect %s present", res.Actual)
	case domain.StateRecommendedNotPresent:
		return fmt.Sprintf("Recommended %s not present", res.Expected)
	default:
		return res.State.String()
	}
}

// RenderReport renders one line per category followed by the verdict.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	for _, res := range report.Results {
		line := fmt.Sprintf("- %s: %s", res.Label, Message(res))
		if style, ok := stateStyles[res.State]; ok {
			line = style.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(renderVerdict(report))
	return b.String()
}

func renderVerdict(report *domain.Report) string {
	if report.Compliant {
		return passStyle.Render("Package layout is compliant.") + "\n"
	}
	n := len(report.Violations())
	noun := "violations"
	if n == 1 {
		noun = "violation"
	}
	return errorTagStyle.Render(fmt.Sprintf("Package layout is not compliant (%d %s).", n, noun)) + "\n"
}

// RenderGenerate renders one line per created artifact and per failure.
func RenderGenerate(result *domain.GenerateResult) string {
	var b strings.Builder

	if result.DryRun {
		for _, t := range result.Planned {
			fmt.Fprintf(&b, "Would create %s\n", displayPath(t.Kind, t.Path))
		}
		if len(result.Planned) == 0 {
			b.WriteString(dimStyle.Render("Nothing to create.") + "\n")
		}
		return b.String()
	}

	for _, a := range result.Created {
		fmt.Fprintf(&b, "Created %s\n", displayPath(a.Kind, a.Path))
	}
	for _, f := range result.Failures {
		b.WriteString(failStyle.Render(fmt.Sprintf("Failed %s: %s", displayPath(f.Target.Kind, f.Target.Path), f.Error)))
		b.WriteString("\n")
	}
	if len(result.Created) == 0 && len(result.Failures) == 0 {
		b.WriteString(dimStyle.Render("Nothing to create.") + "\n")
	}

	return b.String()
}

func displayPath(kind domain.Kind, path string) string {
	if kind == domain.KindDirectory {
		return path + "/"
	}
	return path
}

// RenderWatchHeader separates successive reports in watch mode.
func RenderWatchHeader(root string) string {
	return "\n" + headerStyle.Render("pds-skeleton") + " " + dimStyle.Render(root) + "\n" +
		faintStyle.Render(strings.Repeat("─", 48)) + "\n"
}

// RenderRules lists the convention table.
func RenderRules(rules []domain.Rule) string {
	var b strings.Builder
	for _, r := range rules {
		absent := "optional"
		if r.WhenAbsent == domain.StateRecommendedNotPresent {
			absent = "recommended"
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			titleStyle.Render(padRight(r.Label, 26)),
			padRight(r.Canonical, 14),
			padRight(absent, 12),
			dimStyle.Render(r.Category.Slug()),
		)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
