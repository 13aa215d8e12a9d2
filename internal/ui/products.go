package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pixelfront/internal/catalog"
)

const cardWidth = 30

// renderContent renders the main area: spinner, error, empty state, or the
// product grid with the results line.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	if m.loading {
		return "\n" + styles.MutedText.Render("  "+m.spin.View()+"Fetching catalog...")
	}

	if m.catalog.Err != nil {
		banner := m.renderBanner()
		body := styles.MutedText.Render("  The catalog could not be loaded.")
		if banner == "" {
			return "\n" + body
		}
		return banner + "\n\n" + body
	}

	var b strings.Builder
	b.WriteString(m.renderResultsLine())
	b.WriteString("\n")

	if len(m.result.Products) == 0 {
		if m.result.TotalMatches == 0 {
			b.WriteString(styles.MutedText.Render("  No products found matching your criteria."))
		} else {
			// The location asked for a page past the end; it stays honest
			// rather than being clamped.
			b.WriteString(styles.MutedText.Render("  Nothing on this page."))
		}
		return b.String()
	}

	b.WriteString(m.renderGrid())
	return b.String()
}

func (m Model) renderResultsLine() string {
	styles := m.theme.Styles()
	line := fmt.Sprintf("Showing %d of %d products", len(m.result.Products), m.result.TotalMatches)
	return styles.FaintText.Render(line)
}

func (m Model) renderGrid() string {
	columns := m.width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(m.result.Products); start += columns {
		end := start + columns
		if end > len(m.result.Products) {
			end = len(m.result.Products)
		}
		cards := make([]string, 0, columns)
		for _, p := range m.result.Products[start:end] {
			cards = append(cards, m.renderCard(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderCard(p catalog.Product) string {
	styles := m.theme.Styles()
	inner := cardWidth - 4

	title := styles.Text.Bold(true).Render(truncate(p.Title, inner))
	category := styles.FaintText.Render(truncate(p.Category, inner))
	price := styles.AccentText.Bold(true).Render(m.formatPrice(p.Price))

	rating := styles.WarningText.Render(stars(p.Rating.Rate))
	if p.Rating.Count > 0 {
		rating += styles.FaintText.Render(fmt.Sprintf(" (%d)", p.Rating.Count))
	}

	badge := styles.SuccessText.Render("In Stock")
	if !p.InStock {
		badge = styles.DangerText.Render("Out of Stock")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, category, price, rating, badge)
	return styles.Card.Width(cardWidth - 2).Render(body)
}
