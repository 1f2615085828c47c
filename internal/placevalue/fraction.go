package placevalue

import (
	"math/big"
)

// Fraction is a single decimal digit written over its place denominator
type Fraction struct {
	Numerator          int
	Denominator        *big.Int
	ReducedNumerator   *big.Int
	ReducedDenominator *big.Int
}

// ToFraction converts digit at fractional position index to digit/10^(index+1)
// and its reduced form. The digit range is not checked.
func ToFraction(digit, index int) Fraction {
	denominator := FractionalMagnitude(index)
	rn, rd := simplify(digit, denominator)
	return Fraction{
		Numerator:          digit,
		Denominator:        denominator,
		ReducedNumerator:   rn,
		ReducedDenominator: rd,
	}
}

// simplify divides numerator and denominator by their GCD.
// A zero numerator always reduces to 0/1.
func simplify(numerator int, denominator *big.Int) (*big.Int, *big.Int) {
	if numerator == 0 {
		return big.NewInt(0), big.NewInt(1)
	}

	n := big.NewInt(int64(numerator))
	g := GCD(new(big.Int).Abs(n), denominator)
	return new(big.Int).Quo(n, g), new(big.Int).Quo(denominator, g)
}

// GCD computes the greatest common divisor with the Euclidean algorithm:
// gcd(a, 0) = a, otherwise gcd(b, a mod b). Arguments are not modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}

// String renders the unreduced fraction, e.g. 5/100
func (f Fraction) String() string {
	return big.NewInt(int64(f.Numerator)).String() + "/" + f.Denominator.String()
}

// Reduced renders the reduced fraction, e.g. 1/20
func (f Fraction) Reduced() string {
	return f.ReducedNumerator.String() + "/" + f.ReducedDenominator.String()
}
