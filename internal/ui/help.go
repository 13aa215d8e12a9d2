package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Browse",
			items: []helpItem{
				{"←/h →/l", "Previous/next page"},
				{"g/G", "First/last page"},
				{"[ ]", "History back/forward"},
			},
		},
		{
			title: "Filters",
			items: []helpItem{
				{"/ or f", "Edit search and price fields"},
				{"tab/shift+tab", "Move between fields"},
				{"enter", "Apply without waiting"},
				{"esc", "Leave fields"},
				{"s", "Cycle availability"},
				{"c", "Cycle category"},
				{"o", "Cycle sort"},
				{"x", "Clear filters (keeps sort)"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			key := styles.WarningText.Render(lipgloss.NewStyle().Width(14).Render(item.key))
			b.WriteString("  " + key + styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))
	return b.String()
}
