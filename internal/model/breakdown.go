package model

import "time"

// Breakdown is the complete decomposition of one input
// Every derived list is empty when Valid is false.
type Breakdown struct {
	Input       string `json:"input"`                 // Raw text as entered
	Valid       bool   `json:"valid"`                 // Parser verdict
	Negative    bool   `json:"negative,omitempty"`    // Leading minus sign
	IntegerPart string `json:"integer_part"`          // Parser output, sign included
	DecimalPart string `json:"decimal_part"`          // Parser output
	Formatted   string `json:"formatted,omitempty"`   // Input with thousands separators

	IntegerPlaces []Place    `json:"integer_places"` // Ones first
	DecimalPlaces []Place    `json:"decimal_places"` // Tenths first
	Fractions     []Fraction `json:"fractions"`      // Non-zero decimal digits only
	Terms         []Term     `json:"terms"`          // Expanded form, zero digits skipped
	Steps         []Step     `json:"steps"`          // One explanation per term

	Total      string `json:"total,omitempty"`       // Exact sum of the terms
	TotalError string `json:"total_error,omitempty"` // Why Total is missing
	Scientific string `json:"scientific,omitempty"`  // m × 10ⁿ
}

// Side identifies which side of the decimal point a position is on
type Side string

const (
	SideInteger    Side = "integer"
	SideFractional Side = "fractional"
)

// Place is one place-value slot
type Place struct {
	Side      Side   `json:"side"`
	Index     int    `json:"index"`           // 0 = ones / tenths
	Digit     string `json:"digit,omitempty"` // Empty when the slot is unoccupied
	Name      string `json:"name"`            // e.g. "hundredths"
	Magnitude string `json:"magnitude"`       // 10^k as a decimal integer
	Label     string `json:"label"`           // "100" or "1/100"
	Notation  string `json:"notation"`        // "10²" or "10⁻²"
}

// Occupied reports whether the slot holds a digit
func (p Place) Occupied() bool {
	return p.Digit != ""
}

// Fraction is a non-zero decimal digit over its place denominator
type Fraction struct {
	Index       int    `json:"index"`
	Digit       int    `json:"digit"`
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
	Reduced     string `json:"reduced"` // e.g. "1/20"
}

// TermKind distinguishes integer from decimal expanded-form terms
type TermKind string

const (
	TermInteger TermKind = "integer" // digit × 10^k
	TermDecimal TermKind = "decimal" // digit / 10^(k+1)
)

// Term is one element of the expanded form
type Term struct {
	Kind        TermKind `json:"kind"`
	Index       int      `json:"index"` // Digit position on its side
	Digit       int      `json:"digit"`
	Power       string   `json:"power,omitempty"`       // Integer terms: 10^k
	Numerator   string   `json:"numerator,omitempty"`   // Decimal terms
	Denominator string   `json:"denominator,omitempty"` // Decimal terms
	Display     string   `json:"display"`               // "2 × 10" or "5/100"
}

// Step is one line of the step-by-step explanation
type Step struct {
	Term        Term   `json:"term"`
	PlaceName   string `json:"place_name"`
	Value       string `json:"value"`
	Explanation string `json:"explanation"`
}

// HistoryEntry is one remembered input
type HistoryEntry struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Result    string    `json:"result"` // Total at the time of entry
	Timestamp time.Time `json:"timestamp"`
}
