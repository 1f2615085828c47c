// Package render draws a breakdown as styled terminal text, Markdown or
// JSON.
package render

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by ThemeByName
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Theme holds the colors of one scheme
type Theme struct {
	Name       string
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	IsDark     bool
}

var (
	success     = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
)

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       ThemeLight,
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#2196F3"),
		Muted:      lipgloss.Color("#8a94a3"),
		Border:     lipgloss.Color("#c4cad3"),
		Highlight:  lipgloss.Color("#FFC107"),
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       ThemeDark,
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#8BC34A"),
		Accent:     lipgloss.Color("#4db6ac"),
		Muted:      lipgloss.Color("#6b7a90"),
		Border:     lipgloss.Color("#2a3850"),
		Highlight:  lipgloss.Color("#ff8a65"),
		IsDark:     true,
	}
}

// ThemeByName returns the dark theme for "dark" and the light theme otherwise
func ThemeByName(name string) Theme {
	if name == ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used by the text renderer
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Empty    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Total    lipgloss.Style
	Notation lipgloss.Style
	Point    lipgloss.Style
	Diff     lipgloss.Style

	// Place-value boxes
	Box            lipgloss.Style
	BoxVacant      lipgloss.Style
	BoxActive      lipgloss.Style
	BoxHighlighted lipgloss.Style
}

// NewStyles builds the styles for theme on r. A nil renderer uses the
// default lipgloss renderer.
func NewStyles(theme Theme, r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Foreground).
		Width(3).
		Align(lipgloss.Center)

	return Styles{
		Theme: theme,

		Title: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Heading: r.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			MarginTop(1),

		Body: r.NewStyle().
			Foreground(theme.Foreground),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		Empty: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Success: r.NewStyle().
			Foreground(success).
			Bold(true),

		Error: r.NewStyle().
			Foreground(destructive).
			Bold(true),

		Total: r.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Notation: r.NewStyle().
			Foreground(theme.Muted).
			Width(5).
			Align(lipgloss.Center),

		Point: r.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			PaddingTop(1),

		Diff: r.NewStyle().
			Foreground(theme.Highlight).
			Bold(true),

		Box: box,

		BoxVacant: box.
			BorderForeground(theme.Muted).
			Foreground(theme.Muted),

		BoxActive: box.
			BorderForeground(theme.Accent).
			Bold(true),

		BoxHighlighted: box.
			BorderForeground(theme.Highlight).
			Foreground(theme.Highlight).
			Bold(true),
	}
}
