package ui

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
)

// truncate shortens s to at most limit runes, ellipsizing when it cuts.
func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

// stars renders a 0-5 rating as filled and empty stars, rounding to the
// nearest whole star.
func stars(rate float64) string {
	filled := int(math.Round(rate))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// formatPrice renders a price in the user's preferred currency.
func (m Model) formatPrice(v float64) string {
	return m.printer.Sprint(currency.NarrowSymbol(m.unit.Amount(v)))
}
