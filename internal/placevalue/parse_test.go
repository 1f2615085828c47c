package placevalue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedDecimal
	}{
		{"empty", "", ParsedDecimal{false, "0", ""}},
		{"whitespace only", "   ", ParsedDecimal{false, "0", ""}},
		{"lone dot", ".", ParsedDecimal{false, "0", ""}},
		{"two dots", "1.2.3", ParsedDecimal{false, "0", ""}},
		{"leading dot", ".5", ParsedDecimal{true, "0", "5"}},
		{"integer", "42", ParsedDecimal{true, "42", ""}},
		{"trailing dot", "5.", ParsedDecimal{true, "5", ""}},
		{"leading zeros kept", "007.10", ParsedDecimal{true, "007", "10"}},
		{"surrounding spaces", "  3.14  ", ParsedDecimal{true, "3", "14"}},
		{"negative", "-5.3", ParsedDecimal{true, "-5", "3"}},
		{"negative leading dot", "-.5", ParsedDecimal{false, "0", ""}},
		{"letters", "12a.5", ParsedDecimal{false, "0", ""}},
		{"sign in decimal part", "1.-5", ParsedDecimal{false, "0", ""}},
		{"plus sign", "+1.5", ParsedDecimal{false, "0", ""}},
		{"inner space", "1 2.5", ParsedDecimal{false, "0", ""}},
		{"exponent", "1e5", ParsedDecimal{false, "0", ""}},
		{"mixed", "123.456", ParsedDecimal{true, "123", "456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	for _, input := range []string{"", ".", "123.456", "-.5", "007.10"} {
		first := Parse(input)
		second := Parse(input)
		if first != second {
			t.Errorf("Parse(%q) not repeatable: %+v vs %+v", input, first, second)
		}
	}
}

func TestParsedDecimal_Digits(t *testing.T) {
	p := Parse("-123.405")

	if !p.Negative() {
		t.Error("expected negative")
	}
	if diff := cmp.Diff([]int{3, 2, 1}, p.IntegerDigits()); diff != "" {
		t.Errorf("integer digits mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 0, 5}, p.DecimalDigits()); diff != "" {
		t.Errorf("decimal digits mismatch (-want +got):\n%s", diff)
	}
}

func TestParsedDecimal_DigitsInvalid(t *testing.T) {
	p := Parse("1.2.3")
	if p.IntegerDigits() != nil {
		t.Errorf("expected nil integer digits, got %v", p.IntegerDigits())
	}
	if p.DecimalDigits() != nil {
		t.Errorf("expected nil decimal digits, got %v", p.DecimalDigits())
	}
}
