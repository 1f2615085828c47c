package expand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/ppiankov/placevalue/internal/model"
)

// ErrTotalOverflow is returned when a term or the exact sum does not fit a
// 19-digit decimal
var ErrTotalOverflow = errors.New("total exceeds decimal precision")

// Total sums the expanded-form terms exactly.
// An empty term list sums to zero.
func Total(terms []model.Term, negative bool) (decimal.Decimal, error) {
	sum := decimal.MustNew(0, 0)

	for _, t := range terms {
		value, err := termValue(t)
		if err != nil {
			return decimal.Decimal{}, err
		}
		// AddExact fails instead of rounding once the sum needs more than
		// 19 digits at the scale of its terms.
		sum, err = sum.AddExact(value, max(sum.Scale(), value.Scale()))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("add %s: %w", t.Display, ErrTotalOverflow)
		}
	}

	sum = sum.Trim(0)
	if negative && !sum.IsZero() {
		sum = sum.Neg()
	}
	return sum, nil
}

// termValue returns digit × 10^k or digit / 10^(k+1)
func termValue(t model.Term) (decimal.Decimal, error) {
	switch t.Kind {
	case model.TermInteger:
		d, err := decimal.Parse(strconv.Itoa(t.Digit) + strings.Repeat("0", t.Index))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("term %s: %w", t.Display, ErrTotalOverflow)
		}
		return d, nil
	case model.TermDecimal:
		d, err := decimal.New(int64(t.Digit), t.Index+1)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("term %s: %w", t.Display, ErrTotalOverflow)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown term kind %q", t.Kind)
	}
}
