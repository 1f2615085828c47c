// Package placevalue splits decimal literals into their integer and
// fractional digit strings and names, sizes and fractionizes each digit
// position.
package placevalue

import (
	"regexp"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^\d+$`)
)

// ParsedDecimal is the result of parsing a decimal literal
type ParsedDecimal struct {
	Valid       bool   `json:"valid"`
	IntegerPart string `json:"integer_part"`
	DecimalPart string `json:"decimal_part"`
}

// invalid is the canonical result for rejected input
func invalid() ParsedDecimal {
	return ParsedDecimal{Valid: false, IntegerPart: "0", DecimalPart: ""}
}

// Parse validates text and splits it around the decimal point.
// It never fails; malformed input yields Valid=false with IntegerPart "0"
// and an empty DecimalPart.
func Parse(text string) ParsedDecimal {
	text = strings.TrimSpace(text)

	if text == "" || text == "." {
		return invalid()
	}

	// ".5" reads as "0.5". "-.5" does not match and stays invalid below.
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}

	parts := strings.Split(text, ".")
	if len(parts) > 2 {
		return invalid()
	}

	integerPart := parts[0]
	if integerPart == "" {
		integerPart = "0"
	}
	decimalPart := ""
	if len(parts) == 2 {
		decimalPart = parts[1]
	}

	if !integerPattern.MatchString(integerPart) {
		return invalid()
	}
	if decimalPart != "" && !decimalPattern.MatchString(decimalPart) {
		return invalid()
	}

	return ParsedDecimal{
		Valid:       true,
		IntegerPart: integerPart,
		DecimalPart: decimalPart,
	}
}

// Negative reports whether the integer part carries a minus sign
func (p ParsedDecimal) Negative() bool {
	return strings.HasPrefix(p.IntegerPart, "-")
}

// IntegerDigits returns the integer digits without sign, ones digit first.
func (p ParsedDecimal) IntegerDigits() []int {
	if !p.Valid {
		return nil
	}
	s := strings.TrimPrefix(p.IntegerPart, "-")
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[len(s)-1-i] = int(s[i] - '0')
	}
	return digits
}

// DecimalDigits returns the fractional digits, tenths first.
func (p ParsedDecimal) DecimalDigits() []int {
	if !p.Valid {
		return nil
	}
	digits := make([]int, len(p.DecimalPart))
	for i := 0; i < len(p.DecimalPart); i++ {
		digits[i] = int(p.DecimalPart[i] - '0')
	}
	return digits
}
