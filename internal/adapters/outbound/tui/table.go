package tui

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pds-go/skeleton/internal/domain"
)

// RenderTable renders the report as a bordered table with one row per
// category and a footer carrying the verdict.
func RenderTable(report *domain.Report) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Expected", "Actual", "State"})

	for _, res := range report.Results {
		actual := res.Actual
		if actual == "" {
			actual = "-"
		}
		t.AppendRow(table.Row{res.Label, res.Expected, actual, Message(res)})
	}

	verdict := "compliant"
	if !report.Compliant {
		verdict = "not compliant"
	}
	t.AppendFooter(table.Row{"", "", "", verdict})

	return t.Render() + "\n"
}
