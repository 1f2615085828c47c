package reveal

import "github.com/ppiankov/placevalue/internal/model"

// Box is the visual state of one place-value slot
type Box struct {
	Entered     bool
	Active      bool
	Highlighted bool
}

// State is how far a reveal pass has progressed
type State struct {
	Integer   []Box
	Decimal   []Box
	Fractions []bool
	Terms     []bool
}

// NewState returns a state with nothing revealed yet
func NewState(b model.Breakdown) *State {
	return &State{
		Integer:   make([]Box, len(b.IntegerPlaces)),
		Decimal:   make([]Box, len(b.DecimalPlaces)),
		Fractions: make([]bool, len(b.Fractions)),
		Terms:     make([]bool, len(b.Terms)),
	}
}

// Revealed returns the state after every instruction of a pass has run
func Revealed(b model.Breakdown) *State {
	s := NewState(b)
	for _, in := range Plan(b, model.DefaultTiming()) {
		s.Apply(in)
	}
	return s
}

// Apply records one instruction. Out-of-range indexes are ignored.
func (s *State) Apply(in Instruction) {
	switch in.Section {
	case SectionIntegerBoxes:
		applyBox(s.Integer, in)
	case SectionDecimalBoxes:
		applyBox(s.Decimal, in)
	case SectionFractions:
		if in.Index >= 0 && in.Index < len(s.Fractions) {
			s.Fractions[in.Index] = true
		}
	case SectionTerms:
		if in.Index >= 0 && in.Index < len(s.Terms) {
			s.Terms[in.Index] = true
		}
	}
}

func applyBox(boxes []Box, in Instruction) {
	if in.Index < 0 || in.Index >= len(boxes) {
		return
	}
	box := &boxes[in.Index]
	switch in.Action {
	case ActionEnter:
		box.Entered = true
	case ActionActivate:
		box.Active = true
	case ActionHighlight:
		box.Highlighted = true
	case ActionUnhighlight:
		box.Highlighted = false
	}
}
