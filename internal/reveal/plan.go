// Package reveal turns a breakdown into an ordered list of timed reveal
// instructions and drains that list on a single scheduler.
package reveal

import (
	"sort"
	"time"

	"github.com/ppiankov/placevalue/internal/model"
)

// Section is the part of the display an instruction targets
type Section string

const (
	SectionIntegerBoxes Section = "integer_boxes"
	SectionDecimalBoxes Section = "decimal_boxes"
	SectionFractions    Section = "fractions"
	SectionTerms        Section = "terms"
)

// Action is the visual change to apply
type Action string

const (
	ActionEnter       Action = "enter"       // Digit appears
	ActionActivate    Action = "activate"    // Box marked active
	ActionHighlight   Action = "highlight"   // Box highlighted
	ActionUnhighlight Action = "unhighlight" // Highlight removed
	ActionShow        Action = "show"        // Fraction or term becomes visible
)

// Instruction reveals one element at Offset from the start of a pass
type Instruction struct {
	Offset  time.Duration `json:"offset"`
	Section Section       `json:"section"`
	Index   int           `json:"index"` // Slot, fraction or term index
	Action  Action        `json:"action"`
}

// Plan lists every reveal step for b, sorted by offset.
// Invalid breakdowns have nothing to reveal.
func Plan(b model.Breakdown, t model.TimingConfig) []Instruction {
	if !b.Valid {
		return nil
	}

	var plan []Instruction

	plan = append(plan, boxes(SectionIntegerBoxes, b.IntegerPlaces, t)...)
	plan = append(plan, boxes(SectionDecimalBoxes, b.DecimalPlaces, t)...)

	// Fractions are staggered by digit position, so skipped zeros leave gaps.
	for i, f := range b.Fractions {
		plan = append(plan, Instruction{
			Offset:  time.Duration(f.Index) * t.FractionStep,
			Section: SectionFractions,
			Index:   i,
			Action:  ActionShow,
		})
	}

	for i := range b.Terms {
		plan = append(plan, Instruction{
			Offset:  time.Duration(i) * t.TermStep,
			Section: SectionTerms,
			Index:   i,
			Action:  ActionShow,
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Offset < plan[j].Offset
	})
	return plan
}

func boxes(section Section, places []model.Place, t model.TimingConfig) []Instruction {
	var out []Instruction
	for i, p := range places {
		if !p.Occupied() {
			continue
		}
		highlight := t.HighlightStart + time.Duration(i)*t.HighlightStep
		out = append(out,
			Instruction{Offset: 0, Section: section, Index: i, Action: ActionEnter},
			Instruction{Offset: t.ActivateDelay, Section: section, Index: i, Action: ActionActivate},
			Instruction{Offset: highlight, Section: section, Index: i, Action: ActionHighlight},
			Instruction{Offset: highlight + t.HighlightHold, Section: section, Index: i, Action: ActionUnhighlight},
		)
	}
	return out
}
