package expand

import (
	"strconv"
	"strings"

	"github.com/govalues/decimal"

	"github.com/ppiankov/placevalue/internal/placevalue"
)

// mantissaScale is the number of mantissa digits kept after the point
const mantissaScale = 10

// Scientific renders d as "m × 10ⁿ" with 1 <= |m| < 10
func Scientific(d decimal.Decimal) string {
	if d.IsZero() {
		return "0 × " + placevalue.PowerNotation(0)
	}

	digits := strconv.FormatUint(d.Coef(), 10)
	exp := len(digits) - 1 - d.Scale()

	m := digits[:1]
	if len(digits) > 1 {
		m += "." + digits[1:]
	}
	mantissa := decimal.MustParse(m).Round(mantissaScale).Trim(0)

	sign := ""
	if d.Sign() < 0 {
		sign = "-"
	}
	return sign + mantissa.String() + " × " + placevalue.PowerNotation(exp)
}

// GroupThousands inserts commas between groups of three integer digits,
// e.g. "-1234567.891" -> "-1,234,567.891". The fractional part is untouched.
func GroupThousands(s string) string {
	intPart, fracPart, hasPoint := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if hasPoint {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
