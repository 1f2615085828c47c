package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Pretty renders Markdown for a terminal in the named theme
func Pretty(markdown, theme string, width int) (string, error) {
	style := "light"
	if theme == ThemeDark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
