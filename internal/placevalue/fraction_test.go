package placevalue

import (
	"math/big"
	"testing"
)

func TestToFraction(t *testing.T) {
	tests := []struct {
		digit, index int
		unreduced    string
		reduced      string
	}{
		{4, 0, "4/10", "2/5"},
		{5, 1, "5/100", "1/20"},
		{6, 2, "6/1000", "3/500"},
		{1, 0, "1/10", "1/10"},
		{9, 3, "9/10000", "9/10000"},
		{8, 2, "8/1000", "1/125"},
		{0, 4, "0/100000", "0/1"},
	}

	for _, tt := range tests {
		f := ToFraction(tt.digit, tt.index)
		if got := f.String(); got != tt.unreduced {
			t.Errorf("ToFraction(%d, %d): expected %s, got %s", tt.digit, tt.index, tt.unreduced, got)
		}
		if got := f.Reduced(); got != tt.reduced {
			t.Errorf("ToFraction(%d, %d) reduced: expected %s, got %s", tt.digit, tt.index, tt.reduced, got)
		}
	}
}

func TestToFraction_ZeroReducesToZeroOverOne(t *testing.T) {
	for k := 0; k < 30; k++ {
		f := ToFraction(0, k)
		if f.ReducedNumerator.Sign() != 0 || f.ReducedDenominator.Cmp(big.NewInt(1)) != 0 {
			t.Errorf("ToFraction(0, %d): expected 0/1, got %s", k, f.Reduced())
		}
	}
}

func TestToFraction_ReducedFormIsEquivalent(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		for index := 0; index < 25; index++ {
			f := ToFraction(digit, index)
			denominator := FractionalMagnitude(index)

			if f.Denominator.Cmp(denominator) != 0 {
				t.Fatalf("ToFraction(%d, %d): denominator %s, expected %s", digit, index, f.Denominator, denominator)
			}

			rem := new(big.Int).Rem(denominator, f.ReducedDenominator)
			if rem.Sign() != 0 {
				t.Errorf("ToFraction(%d, %d): reduced denominator %s does not divide %s", digit, index, f.ReducedDenominator, denominator)
			}

			original := new(big.Rat).SetFrac(big.NewInt(int64(digit)), denominator)
			reduced := new(big.Rat).SetFrac(f.ReducedNumerator, f.ReducedDenominator)
			if original.Cmp(reduced) != 0 {
				t.Errorf("ToFraction(%d, %d): %s != %s", digit, index, f.String(), f.Reduced())
			}
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 0, 12},
		{0, 7, 7},
		{4, 10, 2},
		{5, 100, 5},
		{9, 1000, 1},
		{48, 18, 6},
	}

	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		got := GCD(a, b)
		if got.Int64() != tt.want {
			t.Errorf("GCD(%d, %d): expected %d, got %s", tt.a, tt.b, tt.want, got)
		}
		if a.Int64() != tt.a || b.Int64() != tt.b {
			t.Errorf("GCD(%d, %d) modified its arguments", tt.a, tt.b)
		}
	}
}
