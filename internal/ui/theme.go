package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Faint  string
	Accent string

	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FieldFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.SelectionBg)).
			Bold(true).
			Padding(0, 1),

		PageButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
	}
}

// Styles holds resolved Lipgloss styles.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Logo       lipgloss.Style
	Card       lipgloss.Style
	FieldLabel lipgloss.Style
	Field      lipgloss.Style
	FieldFocus lipgloss.Style
	Selection  lipgloss.Style
	PageButton lipgloss.Style
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Nord":    nordTheme(),
	"Latte":   latteTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Latte"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Background: "#282a36",
		Surface:    "#343746",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",

		Text:   "#f8f8f2",
		Muted:  "#a8abbe",
		Faint:  "#6272a4",
		Accent: "#bd93f9",

		Success: "#50fa7b",
		Warning: "#f1fa8c",
		Danger:  "#ff5555",

		SelectionBg:   "#bd93f9",
		SelectionText: "#282a36",
	}
}

func nordTheme() Theme {
	// Nord palette: https://www.nordtheme.com/docs/colors-and-palettes
	return Theme{
		Name: "Nord",

		Background: "#2e3440",
		Surface:    "#3b4252",

		Border:      "#4c566a",
		BorderFocus: "#88c0d0",

		Text:   "#eceff4",
		Muted:  "#d8dee9",
		Faint:  "#616e88",
		Accent: "#88c0d0",

		Success: "#a3be8c",
		Warning: "#ebcb8b",
		Danger:  "#bf616a",

		SelectionBg:   "#88c0d0",
		SelectionText: "#2e3440",
	}
}

func latteTheme() Theme {
	// Catppuccin Latte palette: https://catppuccin.com/palette
	return Theme{
		Name: "Latte",

		Background: "#eff1f5",
		Surface:    "#e6e9ef",

		Border:      "#bcc0cc",
		BorderFocus: "#8839ef",

		Text:   "#4c4f69",
		Muted:  "#6c6f85",
		Faint:  "#9ca0b0",
		Accent: "#8839ef",

		Success: "#40a02b",
		Warning: "#df8e1d",
		Danger:  "#d20f39",

		SelectionBg:   "#8839ef",
		SelectionText: "#eff1f5",
	}
}
