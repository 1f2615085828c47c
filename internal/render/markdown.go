package render

import (
	"fmt"
	"strings"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
)

// Markdown renders b as a Markdown document
func Markdown(b model.Breakdown, opts Options) string {
	var sb strings.Builder

	if !b.Valid {
		fmt.Fprintf(&sb, "# %s\n\n", InvalidMessage)
		fmt.Fprintf(&sb, "Input: `%s`\n", b.Input)
		return sb.String()
	}

	fmt.Fprintf(&sb, "# %s\n\n", b.Formatted)

	sb.WriteString("## Place values\n\n")
	sb.WriteString("| Place | Digit | Value | Power |\n")
	sb.WriteString("|-------|-------|-------|-------|\n")
	for i := len(b.IntegerPlaces) - 1; i >= 0; i-- {
		writePlaceRow(&sb, b.IntegerPlaces[i])
	}
	for _, p := range b.DecimalPlaces {
		writePlaceRow(&sb, p)
	}

	sb.WriteString("\n## Fractions\n\n")
	switch {
	case b.DecimalPart == "":
		sb.WriteString("_" + expand.EmptyFractions + "_\n")
	case len(b.Fractions) == 0:
		sb.WriteString("_" + expand.ZeroFractions + "_\n")
	default:
		for _, f := range b.Fractions {
			fmt.Fprintf(&sb, "- %s\n", FractionLine(f))
		}
	}

	sb.WriteString("\n## Expanded form\n\n")
	fmt.Fprintf(&sb, "`%s`\n", expand.SignedExpandedForm(b.Terms, b.Negative))

	sb.WriteString("\n## Total\n\n")
	if b.TotalError != "" {
		fmt.Fprintf(&sb, "**Error:** %s\n", b.TotalError)
	} else {
		fmt.Fprintf(&sb, "%s = **%s**\n", b.Formatted, expand.GroupThousands(b.Total))
		if opts.Scientific && b.Scientific != "" {
			fmt.Fprintf(&sb, "\nScientific notation: %s\n", b.Scientific)
		}
	}

	if opts.Steps {
		sb.WriteString("\n## Step by step\n\n")
		if len(b.Steps) == 0 {
			sb.WriteString("_" + expand.EmptySteps + "_\n")
		}
		for i, s := range b.Steps {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, s.Explanation)
		}
	}

	return sb.String()
}

// Only occupied places get a row.
func writePlaceRow(sb *strings.Builder, p model.Place) {
	if !p.Occupied() {
		return
	}
	fmt.Fprintf(sb, "| %s | %s | %s | %s |\n", p.Name, p.Digit, p.Label, p.Notation)
}
