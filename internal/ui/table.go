package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if !noColor {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(Primary)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().Bold(true).Foreground(Primary)
				}
				if col == 0 {
					return lipgloss.NewStyle().Foreground(ColorSuccess)
				}
				return lipgloss.Style{}
			})
	}

	return t.String()
}
