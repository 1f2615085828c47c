package expand

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/placevalue"
)

func termDisplays(terms []model.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Display
	}
	return out
}

func TestBuild_EndToEnd(t *testing.T) {
	b := Build("123.456", 8)

	if !b.Valid {
		t.Fatal("expected valid breakdown")
	}
	if b.IntegerPart != "123" || b.DecimalPart != "456" {
		t.Errorf("expected 123/456, got %s/%s", b.IntegerPart, b.DecimalPart)
	}

	want := []string{"3 × 1", "2 × 10", "1 × 100", "4/10", "5/100", "6/1000"}
	if diff := cmp.Diff(want, termDisplays(b.Terms)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}

	var fractions []string
	for _, f := range b.Fractions {
		fractions = append(fractions, f.Numerator+"/"+f.Denominator)
	}
	if diff := cmp.Diff([]string{"4/10", "5/100", "6/1000"}, fractions); diff != "" {
		t.Errorf("fractions mismatch (-want +got):\n%s", diff)
	}

	if b.Total != "123.456" {
		t.Errorf("expected total 123.456, got %s", b.Total)
	}
	if b.Scientific != "1.23456 × 10²" {
		t.Errorf("expected 1.23456 × 10², got %s", b.Scientific)
	}
	if len(b.Steps) != len(b.Terms) {
		t.Errorf("expected %d steps, got %d", len(b.Terms), len(b.Steps))
	}
}

func TestBuild_ZeroIntegerPart(t *testing.T) {
	b := Build("0.123", 8)

	want := []string{"1/10", "2/100", "3/1000"}
	if diff := cmp.Diff(want, termDisplays(b.Terms)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	for _, term := range b.Terms {
		if term.Kind == model.TermInteger {
			t.Errorf("integer part 0 must not contribute a term, got %s", term.Display)
		}
	}
	if b.Scientific != "1.23 × 10⁻¹" {
		t.Errorf("expected 1.23 × 10⁻¹, got %s", b.Scientific)
	}
}

func TestBuild_Invalid(t *testing.T) {
	for _, input := range []string{"", ".", "1.2.3", "-.5", "abc"} {
		b := Build(input, 8)
		if b.Valid {
			t.Errorf("Build(%q): expected invalid", input)
		}
		if b.IntegerPart != "0" || b.DecimalPart != "" {
			t.Errorf("Build(%q): expected canonical empty parts, got %q/%q", input, b.IntegerPart, b.DecimalPart)
		}
		if len(b.IntegerPlaces)+len(b.DecimalPlaces)+len(b.Fractions)+len(b.Terms)+len(b.Steps) != 0 {
			t.Errorf("Build(%q): expected empty derived sections", input)
		}
		if b.Total != "" || b.Scientific != "" {
			t.Errorf("Build(%q): expected no total, got %q %q", input, b.Total, b.Scientific)
		}
	}
}

func TestBuild_Places(t *testing.T) {
	b := Build("42.5", 8)

	if len(b.IntegerPlaces) != 8 || len(b.DecimalPlaces) != 8 {
		t.Fatalf("expected 8 slots per side, got %d and %d", len(b.IntegerPlaces), len(b.DecimalPlaces))
	}

	ones := b.IntegerPlaces[0]
	if ones.Digit != "2" || ones.Name != "ones" || ones.Label != "1" || ones.Notation != "10⁰" {
		t.Errorf("unexpected ones place: %+v", ones)
	}
	tens := b.IntegerPlaces[1]
	if tens.Digit != "4" || tens.Name != "tens" {
		t.Errorf("unexpected tens place: %+v", tens)
	}
	if b.IntegerPlaces[2].Occupied() {
		t.Errorf("hundreds place should be empty, got %q", b.IntegerPlaces[2].Digit)
	}

	tenths := b.DecimalPlaces[0]
	if tenths.Digit != "5" || tenths.Label != "1/10" || tenths.Notation != "10⁻¹" {
		t.Errorf("unexpected tenths place: %+v", tenths)
	}
	if b.DecimalPlaces[7].Name != "hundred-millionths" {
		t.Errorf("expected hundred-millionths, got %s", b.DecimalPlaces[7].Name)
	}
}

func TestBuild_DigitsBeyondSlots(t *testing.T) {
	b := Build("0.1234567891", 8)

	if len(b.DecimalPlaces) != 8 {
		t.Fatalf("expected 8 decimal slots, got %d", len(b.DecimalPlaces))
	}
	if len(b.Fractions) != 10 {
		t.Errorf("expected fractions for all 10 digits, got %d", len(b.Fractions))
	}
	last := b.Fractions[len(b.Fractions)-1]
	if last.Denominator != "10000000000" {
		t.Errorf("expected denominator 10^10, got %s", last.Denominator)
	}
}

func TestBuild_ZeroDigitsSkipped(t *testing.T) {
	b := Build("1000.5", 8)

	want := []string{"1 × 1000", "5/10"}
	if diff := cmp.Diff(want, termDisplays(b.Terms)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	if b.Total != "1000.5" {
		t.Errorf("expected 1000.5, got %s", b.Total)
	}
	if b.Formatted != "1,000.5" {
		t.Errorf("expected 1,000.5, got %s", b.Formatted)
	}
}

func TestBuild_AllZero(t *testing.T) {
	b := Build("0.00", 8)

	if !b.Valid {
		t.Fatal("expected valid")
	}
	if len(b.Fractions) != 0 || len(b.Terms) != 0 {
		t.Errorf("expected no fractions or terms, got %d and %d", len(b.Fractions), len(b.Terms))
	}
	if ExpandedForm(b.Terms) != ZeroExpanded {
		t.Errorf("expected %q, got %q", ZeroExpanded, ExpandedForm(b.Terms))
	}
	if b.Total != "0" || b.Scientific != "0 × 10⁰" {
		t.Errorf("expected zero total, got %q %q", b.Total, b.Scientific)
	}
}

func TestBuild_Negative(t *testing.T) {
	b := Build("-5.3", 8)

	if !b.Negative {
		t.Error("expected negative flag")
	}
	if diff := cmp.Diff([]string{"5 × 1", "3/10"}, termDisplays(b.Terms)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	if b.Total != "-5.3" {
		t.Errorf("expected -5.3, got %s", b.Total)
	}
	if b.Scientific != "-5.3 × 10⁰" {
		t.Errorf("expected -5.3 × 10⁰, got %s", b.Scientific)
	}
}

func TestBuild_LeadingZeros(t *testing.T) {
	b := Build("007.10", 8)

	if b.IntegerPart != "007" || b.DecimalPart != "10" {
		t.Errorf("expected parts kept verbatim, got %s/%s", b.IntegerPart, b.DecimalPart)
	}
	if diff := cmp.Diff([]string{"7 × 1", "1/10"}, termDisplays(b.Terms)); diff != "" {
		t.Errorf("terms mismatch (-want +got):\n%s", diff)
	}
	if b.Total != "7.1" {
		t.Errorf("expected 7.1, got %s", b.Total)
	}
}

func TestBuild_TotalOverflow(t *testing.T) {
	b := Build("1"+strings.Repeat("0", 25), 8)

	if !b.Valid {
		t.Fatal("expected valid")
	}
	if b.Total != "" || b.TotalError == "" {
		t.Errorf("expected overflow, got total %q error %q", b.Total, b.TotalError)
	}
	if len(b.Terms) != 1 {
		t.Errorf("expected terms to be built regardless, got %d", len(b.Terms))
	}
}

func TestBuild_TotalOverflowAcrossSides(t *testing.T) {
	// Each term fits on its own, but the exact sum needs 20 digits.
	for _, input := range []string{"9999999999.9999999999", "1234567890.1234567891"} {
		b := Build(input, 8)
		if b.Total != "" || b.Scientific != "" {
			t.Errorf("%s: expected no rounded total, got %q (%q)", input, b.Total, b.Scientific)
		}
		if b.TotalError == "" {
			t.Errorf("%s: expected total error", input)
		}
	}
}

func TestTotal_NineteenDigits(t *testing.T) {
	b := Build("123456789.0123456789", 8)
	if b.TotalError != "" {
		t.Fatalf("expected no error, got %q", b.TotalError)
	}
	if b.Total != "123456789.0123456789" {
		t.Errorf("expected exact total, got %q", b.Total)
	}
}

func TestTotal_OverflowError(t *testing.T) {
	p := placevalue.Parse("0." + strings.Repeat("0", 25) + "1")
	_, err := Total(Terms(p), false)
	if !errors.Is(err, ErrTotalOverflow) {
		t.Errorf("expected ErrTotalOverflow, got %v", err)
	}
}

func TestTerms_Invalid(t *testing.T) {
	terms := Terms(placevalue.Parse("."))
	if len(terms) != 0 {
		t.Errorf("expected no terms, got %d", len(terms))
	}
}

func TestExpandedForm(t *testing.T) {
	terms := Terms(placevalue.Parse("12.34"))
	want := "2 × 1 + 1 × 10 + 3/10 + 4/100"
	if got := ExpandedForm(terms); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSignedExpandedForm(t *testing.T) {
	terms := Terms(placevalue.Parse("-1.5"))
	if got, want := SignedExpandedForm(terms, true), "-(1 × 1 + 5/10)"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := SignedExpandedForm(nil, true); got != ZeroExpanded {
		t.Errorf("expected %q, got %q", ZeroExpanded, got)
	}
}
