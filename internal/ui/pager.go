package ui

import (
	"strconv"
	"strings"
)

// renderPager renders the pagination controls: Previous/Next plus the
// ellipsis-compressed page window. Hidden entirely when one page suffices.
func (m Model) renderPager() string {
	if len(m.window) == 0 {
		return ""
	}
	styles := m.theme.Styles()

	var parts []string

	prev := styles.FaintText.Render("‹ Prev")
	if m.committed.Page > 1 {
		prev = styles.Text.Render("‹ Prev")
	}
	parts = append(parts, prev)

	for _, item := range m.window {
		switch {
		case item.Gap:
			parts = append(parts, styles.FaintText.Render("…"))
		case item.Number == m.committed.Page:
			parts = append(parts, styles.Selection.Render(strconv.Itoa(item.Number)))
		default:
			parts = append(parts, styles.PageButton.Render(strconv.Itoa(item.Number)))
		}
	}

	next := styles.FaintText.Render("Next ›")
	if m.committed.Page < m.result.TotalPages {
		next = styles.Text.Render("Next ›")
	}
	parts = append(parts, next)

	return strings.Join(parts, " ")
}
