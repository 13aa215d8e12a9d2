package ui

import (
	"github.com/charmbracelet/lipgloss"

	"pixelfront/internal/query"
)

// renderFilters renders the filter bar: the three debounced text fields plus
// the immediate selectors (availability, category, sort).
func (m Model) renderFilters() string {
	styles := m.theme.Styles()

	field := func(label string, idx int) string {
		box := styles.Field
		if m.focus == idx {
			box = styles.FieldFocus
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.FieldLabel.Render(label),
			box.Render(m.inputs[idx].View()),
		)
	}

	selector := func(label, value string, active bool) string {
		text := styles.MutedText.Render(value)
		if active {
			text = styles.AccentText.Render(value)
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.FieldLabel.Render(label),
			styles.Field.Render(text),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		field("Search Products", inputSearch),
		" ",
		field("Min Price", inputMinPrice),
		" ",
		field("Max Price", inputMaxPrice),
		" ",
		selector("Availability [s]", stockLabel(m.committed.InStock), m.committed.InStock != nil),
		" ",
		selector("Category [c]", categoryLabel(m.committed.Category), m.committed.Category != ""),
		" ",
		selector("Sort [o]", sortLabel(m.committed.SortField, m.committed.SortOrder), false),
	)
}

func stockLabel(inStock *bool) string {
	switch {
	case inStock == nil:
		return "All Products"
	case *inStock:
		return "In Stock"
	default:
		return "Out of Stock"
	}
}

func categoryLabel(category string) string {
	if category == "" {
		return "All"
	}
	return category
}

func sortLabel(field query.Field, order query.Order) string {
	switch {
	case field == query.FieldPrice && order == query.OrderDesc:
		return "Price (High to Low)"
	case field == query.FieldPrice:
		return "Price (Low to High)"
	case order == query.OrderDesc:
		return "Name (Z-A)"
	default:
		return "Name (A-Z)"
	}
}
