package ui

import "strings"

// renderFooter renders the pager, the current route, and the key hint line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	var b strings.Builder
	if pager := m.renderPager(); pager != "" {
		b.WriteString(pager)
		b.WriteString("\n")
	}

	route := "/products"
	if current := m.location.Current(); current != "" {
		route += "?" + current
	}
	b.WriteString(styles.FaintText.Render(route))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("/ filters · s stock · c category · o sort · x clear · ←/→ pages · ? help · q quit"))
	return b.String()
}
