// Package expand turns a parsed decimal into everything a renderer shows:
// place-value slots, digit fractions, the expanded form, the total and the
// step-by-step explanation.
package expand

import (
	"strconv"
	"strings"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/placevalue"
)

// DefaultSlots is the number of place-value boxes shown per side
const DefaultSlots = 8

// Empty-state messages shown instead of derived sections
const (
	EmptyFractions = "Enter a decimal number to see its fractional breakdown"
	ZeroFractions  = "All digits are zero"
	EmptyExpanded  = "Enter a number to see its expanded form"
	ZeroExpanded   = "0 = 0"
	EmptySteps     = "Enter a number to see step-by-step breakdown"
)

// Build parses input and derives the full breakdown.
// Invalid input yields Valid=false and empty derived sections.
func Build(input string, slots int) model.Breakdown {
	if slots <= 0 {
		slots = DefaultSlots
	}

	parsed := placevalue.Parse(input)
	b := model.Breakdown{
		Input:         input,
		Valid:         parsed.Valid,
		IntegerPart:   parsed.IntegerPart,
		DecimalPart:   parsed.DecimalPart,
		IntegerPlaces: []model.Place{},
		DecimalPlaces: []model.Place{},
		Fractions:     []model.Fraction{},
		Terms:         []model.Term{},
		Steps:         []model.Step{},
	}

	if !parsed.Valid {
		return b
	}

	b.Negative = parsed.Negative()
	b.Formatted = GroupThousands(strings.TrimSpace(input))

	integerDigits := parsed.IntegerDigits()
	decimalDigits := parsed.DecimalDigits()

	b.IntegerPlaces = integerPlaces(integerDigits, slots)
	b.DecimalPlaces = decimalPlaces(decimalDigits, slots)
	b.Fractions = fractions(decimalDigits)
	b.Terms = Terms(parsed)
	b.Steps = Steps(b.Terms)

	total, err := Total(b.Terms, b.Negative)
	if err != nil {
		b.TotalError = err.Error()
	} else {
		b.Total = total.String()
		b.Scientific = Scientific(total)
	}

	return b
}

func integerPlaces(digits []int, slots int) []model.Place {
	places := make([]model.Place, slots)
	for i := 0; i < slots; i++ {
		magnitude := placevalue.IntegerMagnitude(i).String()
		places[i] = model.Place{
			Side:      model.SideInteger,
			Index:     i,
			Name:      placevalue.IntegerName(i),
			Magnitude: magnitude,
			Label:     magnitude,
			Notation:  placevalue.PowerNotation(i),
		}
		if i < len(digits) {
			places[i].Digit = strconv.Itoa(digits[i])
		}
	}
	return places
}

func decimalPlaces(digits []int, slots int) []model.Place {
	places := make([]model.Place, slots)
	for i := 0; i < slots; i++ {
		magnitude := placevalue.FractionalMagnitude(i).String()
		places[i] = model.Place{
			Side:      model.SideFractional,
			Index:     i,
			Name:      placevalue.FractionalName(i),
			Magnitude: magnitude,
			Label:     "1/" + magnitude,
			Notation:  placevalue.PowerNotation(-(i + 1)),
		}
		if i < len(digits) {
			places[i].Digit = strconv.Itoa(digits[i])
		}
	}
	return places
}

// fractions converts every non-zero decimal digit, including those past the
// last slot.
func fractions(digits []int) []model.Fraction {
	out := []model.Fraction{}
	for i, digit := range digits {
		if digit == 0 {
			continue
		}
		f := placevalue.ToFraction(digit, i)
		out = append(out, model.Fraction{
			Index:       i,
			Digit:       digit,
			Numerator:   strconv.Itoa(f.Numerator),
			Denominator: f.Denominator.String(),
			Reduced:     f.Reduced(),
		})
	}
	return out
}

// Terms builds the expanded form: integer terms ones first, then decimal
// terms tenths first. Zero digits are skipped, and an integer part of "0"
// contributes nothing.
func Terms(p placevalue.ParsedDecimal) []model.Term {
	terms := []model.Term{}
	if !p.Valid {
		return terms
	}

	if p.IntegerPart != "0" {
		for i, digit := range p.IntegerDigits() {
			if digit == 0 {
				continue
			}
			power := placevalue.IntegerMagnitude(i).String()
			terms = append(terms, model.Term{
				Kind:    model.TermInteger,
				Index:   i,
				Digit:   digit,
				Power:   power,
				Display: strconv.Itoa(digit) + " × " + power,
			})
		}
	}

	for i, digit := range p.DecimalDigits() {
		if digit == 0 {
			continue
		}
		f := placevalue.ToFraction(digit, i)
		terms = append(terms, model.Term{
			Kind:        model.TermDecimal,
			Index:       i,
			Digit:       digit,
			Numerator:   strconv.Itoa(f.Numerator),
			Denominator: f.Denominator.String(),
			Display:     f.String(),
		})
	}

	return terms
}

// ExpandedForm joins the terms with " + ", or returns the zero state
func ExpandedForm(terms []model.Term) string {
	if len(terms) == 0 {
		return ZeroExpanded
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.Display
	}
	return strings.Join(parts, " + ")
}

// SignedExpandedForm is ExpandedForm wrapped as "-(...)" for negative input
func SignedExpandedForm(terms []model.Term, negative bool) string {
	form := ExpandedForm(terms)
	if negative && len(terms) > 0 {
		return "-(" + form + ")"
	}
	return form
}
