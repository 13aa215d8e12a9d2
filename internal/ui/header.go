package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the logo line with load status on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	logo := styles.Logo.Render(siteTitle)
	section := styles.AccentText.Bold(true).Render(" " + sectionTitle)

	var status string
	switch {
	case m.loading:
		status = styles.MutedText.Render(m.spin.View() + "loading catalog")
	case m.catalog.Err != nil:
		status = styles.DangerText.Render("catalog unavailable")
	default:
		status = styles.MutedText.Render(fmt.Sprintf("%d products", len(m.catalog.Products)))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, logo, section)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + status
}

// renderBanner renders the dismissable load-failure banner.
func (m Model) renderBanner() string {
	if m.catalog.Err == nil || m.errDismissed {
		return ""
	}
	styles := m.theme.Styles()
	msg := fmt.Sprintf("Error: %v", m.catalog.Err)
	hint := styles.FaintText.Render("  (esc to dismiss; restart to retry)")
	return styles.DangerText.Render(msg) + hint
}
