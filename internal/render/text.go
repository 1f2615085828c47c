package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/placevalue"
	"github.com/ppiankov/placevalue/internal/reveal"
)

// InvalidMessage is shown in place of the title for unparseable input
const InvalidMessage = "Not a valid decimal number"

// Options control the text renderer
type Options struct {
	Scientific bool
	Steps      bool
	// Reveal limits what is drawn to what a reveal pass has shown so far.
	// Nil draws everything.
	Reveal *reveal.State
}

// Text renders every section of b
func Text(b model.Breakdown, st Styles, opts Options) string {
	state := opts.Reveal
	if state == nil {
		state = reveal.Revealed(b)
	}

	sections := []string{
		Title(b, st),
		Boxes(b, st, state),
		st.Heading.Render("Fractions"),
		Fractions(b, st, state),
		st.Heading.Render("Expanded form"),
		Expanded(b, st, state),
	}

	if b.Valid {
		sections = append(sections, st.Heading.Render("Total"), Total(b, st, opts.Scientific))
	}

	if opts.Steps {
		sections = append(sections, st.Heading.Render("Step by step"), StepList(b, st))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Title is the grouped input, or a note when it cannot be parsed
func Title(b model.Breakdown, st Styles) string {
	switch {
	case strings.TrimSpace(b.Input) == "":
		return st.Empty.Render("Enter a number")
	case !b.Valid:
		return st.Error.Render(fmt.Sprintf("%s: %q", InvalidMessage, b.Input))
	}
	return st.Title.Render(b.Formatted)
}

// Boxes draws the integer slots highest place first, the decimal point and
// then the decimal slots tenths first, each over its power of ten.
func Boxes(b model.Breakdown, st Styles, state *reveal.State) string {
	var columns []string

	for i := len(b.IntegerPlaces) - 1; i >= 0; i-- {
		columns = append(columns, box(b.IntegerPlaces[i], boxAt(state.Integer, i), st))
	}
	columns = append(columns, st.Point.Render("."))
	for i, p := range b.DecimalPlaces {
		columns = append(columns, box(p, boxAt(state.Decimal, i), st))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func boxAt(boxes []reveal.Box, i int) reveal.Box {
	if i < len(boxes) {
		return boxes[i]
	}
	return reveal.Box{}
}

func box(p model.Place, state reveal.Box, st Styles) string {
	style := st.BoxVacant
	digit := " "

	if p.Occupied() && state.Entered {
		digit = p.Digit
		style = st.Box
		if state.Active {
			style = st.BoxActive
		}
		if state.Highlighted {
			style = st.BoxHighlighted
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(digit),
		st.Notation.Render(p.Notation),
	)
}

// Fractions lists each non-zero decimal digit over its place denominator
func Fractions(b model.Breakdown, st Styles, state *reveal.State) string {
	if !b.Valid || b.DecimalPart == "" {
		return st.Empty.Render(expand.EmptyFractions)
	}
	if len(b.Fractions) == 0 {
		return st.Empty.Render(expand.ZeroFractions)
	}

	var lines []string
	for i, f := range b.Fractions {
		if i < len(state.Fractions) && !state.Fractions[i] {
			continue
		}
		lines = append(lines, st.Body.Render(FractionLine(f)))
	}
	return strings.Join(lines, "\n")
}

// FractionLine is e.g. "5/100 = 1/20", or "3/10" when already reduced
func FractionLine(f model.Fraction) string {
	plain := f.Numerator + "/" + f.Denominator
	if f.Reduced == plain {
		return plain
	}
	return plain + " = " + f.Reduced
}

// Expanded is the expanded form, showing only terms a reveal has reached
func Expanded(b model.Breakdown, st Styles, state *reveal.State) string {
	if !b.Valid {
		return st.Empty.Render(expand.EmptyExpanded)
	}
	if len(b.Terms) == 0 {
		return st.Body.Render(expand.ZeroExpanded)
	}

	var shown []model.Term
	for i, t := range b.Terms {
		if i < len(state.Terms) && !state.Terms[i] {
			continue
		}
		shown = append(shown, t)
	}
	if len(shown) == 0 {
		return ""
	}

	return st.Body.Render(expand.SignedExpandedForm(shown, b.Negative))
}

// Total is "formatted = total", with scientific notation when requested
func Total(b model.Breakdown, st Styles, scientific bool) string {
	if b.TotalError != "" {
		return st.Error.Render(b.TotalError)
	}

	line := st.Total.Render(b.Formatted + " = " + expand.GroupThousands(b.Total))
	if scientific && b.Scientific != "" {
		line += "\n" + st.Muted.Render(b.Scientific)
	}
	return line
}

// StepList numbers every explanation
func StepList(b model.Breakdown, st Styles) string {
	if len(b.Steps) == 0 {
		return st.Empty.Render(expand.EmptySteps)
	}

	lines := make([]string, len(b.Steps))
	for i, s := range b.Steps {
		lines[i] = st.Body.Render(strconv.Itoa(i+1) + ". " + s.Explanation)
	}
	return strings.Join(lines, "\n")
}

// Step renders the explanation at index with an "n / total" counter
func Step(b model.Breakdown, index int, st Styles) string {
	if len(b.Steps) == 0 {
		return st.Empty.Render(expand.EmptySteps)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(b.Steps) {
		index = len(b.Steps) - 1
	}

	counter := st.Muted.Render(fmt.Sprintf("Step %d / %d", index+1, len(b.Steps)))
	return counter + "\n" + st.Body.Render(b.Steps[index].Explanation)
}

// Comparison lists every place where either number has a digit, with
// differing digits marked. All digits are compared, including those past
// the last box.
func Comparison(a, b model.Breakdown, st Styles) string {
	if !a.Valid || !b.Valid {
		return st.Empty.Render("Enter two numbers to compare")
	}

	header := fmt.Sprintf("%-20s %12s %12s", "place", truncate(a.Formatted, 12), truncate(b.Formatted, 12))
	lines := []string{st.Muted.Render(header)}

	add := func(name, da, db string) {
		line := fmt.Sprintf("%-20s %12s %12s", name, da, db)
		if da != db {
			lines = append(lines, st.Diff.Render(line+"  *"))
			return
		}
		lines = append(lines, st.Body.Render(line))
	}

	// Integer digits are indexed from the ones place.
	ia := strings.TrimPrefix(a.IntegerPart, "-")
	ib := strings.TrimPrefix(b.IntegerPart, "-")
	for i := max(len(ia), len(ib)) - 1; i >= 0; i-- {
		add(placevalue.IntegerName(i), digitAt(ia, len(ia)-1-i), digitAt(ib, len(ib)-1-i))
	}
	for i := 0; i < max(len(a.DecimalPart), len(b.DecimalPart)); i++ {
		add(placevalue.FractionalName(i), digitAt(a.DecimalPart, i), digitAt(b.DecimalPart, i))
	}

	return strings.Join(lines, "\n")
}

// digitAt returns the digit at position i of digits, or "-" past either end
func digitAt(digits string, i int) string {
	if i < 0 || i >= len(digits) {
		return "-"
	}
	return digits[i : i+1]
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
