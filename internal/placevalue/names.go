package placevalue

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// fractionalNames are the place names right of the decimal point
var fractionalNames = []string{
	"tenths", "hundredths", "thousandths", "ten-thousandths",
	"hundred-thousandths", "millionths", "ten-millionths", "hundred-millionths",
	"billionths", "ten-billionths", "hundred-billionths", "trillionths",
}

// integerNames are the place names left of the decimal point
var integerNames = []string{
	"ones", "tens", "hundreds", "thousands",
	"ten-thousands", "hundred-thousands", "millions", "ten-millions",
	"hundred-millions", "billions", "ten-billions", "hundred-billions",
}

// powerNames maps a power of ten to its short name
var powerNames = map[int]string{
	1: "ten", 2: "hundred", 3: "thousand", 4: "ten-thousand",
	5: "hundred-thousand", 6: "million", 7: "ten-million",
	8: "hundred-million", 9: "billion", 10: "ten-billion",
	11: "hundred-billion", 12: "trillion",
}

// powerName returns the short name of 10^power, or "10^<power>" when there is none
func powerName(power int) string {
	if name, ok := powerNames[power]; ok {
		return name
	}
	return fmt.Sprintf("10^%d", power)
}

// FractionalName returns the name of the digit position index places right
// of the decimal point (0 = tenths).
func FractionalName(index int) string {
	if index < len(fractionalNames) {
		return fractionalNames[index]
	}

	power := index + 1
	switch power {
	case 13:
		return "ten-trillionths"
	case 14:
		return "hundred-trillionths"
	}
	return powerName(power) + "ths"
}

// IntegerName returns the name of the digit position index places left of
// the decimal point (0 = ones).
func IntegerName(index int) string {
	if index < len(integerNames) {
		return integerNames[index]
	}
	// Past the table the lookup is keyed on index+1, so index 12 is "10^13s".
	return powerName(index+1) + "s"
}

// FractionalMagnitude returns 10^(index+1), the denominator of the position
func FractionalMagnitude(index int) *big.Int {
	return pow10(index + 1)
}

// IntegerMagnitude returns 10^index
func IntegerMagnitude(index int) *big.Int {
	return pow10(index)
}

func pow10(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

// Superscript renders n with superscript digits, e.g. -12 -> ⁻¹²
func Superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteRune('⁻')
		n = -n
	}
	for _, c := range strconv.Itoa(n) {
		b.WriteRune(superscripts[c-'0'])
	}
	return b.String()
}

// PowerNotation renders 10 raised to power, e.g. 10³ or 10⁻²
func PowerNotation(power int) string {
	return "10" + Superscript(power)
}
