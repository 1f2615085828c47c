package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/placevalue/internal/model"
)

// Format is an output format
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts text, json, markdown and md
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
}

// FormatForPath guesses the format from a file extension
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".md", ".markdown":
		return FormatMarkdown
	}
	return FormatText
}

// Renderer writes breakdowns in one format
type Renderer struct {
	format Format
	theme  Theme
	opts   Options
}

// NewRenderer creates a renderer for format using the named theme
func NewRenderer(format Format, theme string, opts Options) *Renderer {
	return &Renderer{
		format: format,
		theme:  ThemeByName(theme),
		opts:   opts,
	}
}

// Render writes b to w. Text colors follow what w supports, so pipes and
// files get plain text.
func (r *Renderer) Render(w io.Writer, b model.Breakdown) error {
	var out string

	switch r.format {
	case FormatJSON:
		data, err := JSON(b)
		if err != nil {
			return err
		}
		out = string(data)
	case FormatMarkdown:
		out = Markdown(b, r.opts)
	default:
		out = Text(b, NewStyles(r.theme, lipgloss.NewRenderer(w)), r.opts)
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// RenderFile writes b to path, creating parent directories as needed
func (r *Renderer) RenderFile(b model.Breakdown, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := r.Render(f, b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// JSON marshals b with indentation
func JSON(b model.Breakdown) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown: %w", err)
	}
	return data, nil
}

// JSONAll marshals several breakdowns as one array
func JSONAll(bs []model.Breakdown) ([]byte, error) {
	if bs == nil {
		bs = []model.Breakdown{}
	}
	data, err := json.MarshalIndent(bs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal breakdowns: %w", err)
	}
	return data, nil
}
