package expand

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/placevalue"
)

// Steps explains each term, e.g. "4 in the tenths place = 4/10 = 0.4"
func Steps(terms []model.Term) []model.Step {
	steps := make([]model.Step, 0, len(terms))
	for _, t := range terms {
		var name, value, explanation string

		switch t.Kind {
		case model.TermInteger:
			name = placevalue.IntegerName(t.Index)
			value = strconv.Itoa(t.Digit) + strings.Repeat("0", t.Index)
			explanation = fmt.Sprintf("%d in the %s place = %d × %s = %s", t.Digit, name, t.Digit, t.Power, value)
		case model.TermDecimal:
			name = placevalue.FractionalName(t.Index)
			value = "0." + strings.Repeat("0", t.Index) + strconv.Itoa(t.Digit)
			explanation = fmt.Sprintf("%d in the %s place = %s/%s = %s", t.Digit, name, t.Numerator, t.Denominator, value)
		}

		steps = append(steps, model.Step{
			Term:        t,
			PlaceName:   name,
			Value:       value,
			Explanation: explanation,
		})
	}
	return steps
}
