// Package quiz generates "which digit is in the X place" questions.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/ppiankov/placevalue/internal/expand"
	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/placevalue"
)

// Question is a single quiz item
type Question struct {
	Number string     `json:"number"`
	Side   model.Side `json:"side"`
	Index  int        `json:"index"` // Position on Side, 0 = ones / tenths
	Place  string     `json:"place"`
	Text   string     `json:"text"`
	Answer int        `json:"answer"`
}

// Check reports whether answer is the expected digit
func (q Question) Check(answer string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return false
	}
	return n == q.Answer
}

// Generator produces random questions
type Generator struct {
	rng              *rand.Rand
	maxIntegerDigits int
	maxDecimalDigits int
}

// NewGenerator creates a generator. A seed of 0 picks a random seed.
func NewGenerator(cfg model.QuizConfig) *Generator {
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = rand.Uint64()
	}
	if cfg.MaxIntegerDigits <= 0 {
		cfg.MaxIntegerDigits = 4
	}
	if cfg.MaxDecimalDigits <= 0 {
		cfg.MaxDecimalDigits = 3
	}

	return &Generator{
		rng:              rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		maxIntegerDigits: cfg.MaxIntegerDigits,
		maxDecimalDigits: cfg.MaxDecimalDigits,
	}
}

// Next generates a number with 1..maxIntegerDigits integer digits and
// 1..maxDecimalDigits decimal digits and asks for one random position.
func (g *Generator) Next() Question {
	integerPlaces := g.rng.IntN(g.maxIntegerDigits) + 1
	decimalPlaces := g.rng.IntN(g.maxDecimalDigits) + 1

	integerPart := g.digits(integerPlaces)
	decimalPart := g.digits(decimalPlaces)
	number := integerPart + "." + decimalPart

	// Positions are counted left to right across the whole number.
	position := g.rng.IntN(integerPlaces + decimalPlaces)

	q := Question{Number: number}
	if position < integerPlaces {
		q.Side = model.SideInteger
		q.Index = integerPlaces - 1 - position
		q.Place = placevalue.IntegerName(q.Index)
		q.Answer = int(integerPart[position] - '0')
	} else {
		q.Side = model.SideFractional
		q.Index = position - integerPlaces
		q.Place = placevalue.FractionalName(q.Index)
		q.Answer = int(decimalPart[q.Index] - '0')
	}
	q.Text = fmt.Sprintf("What is the digit in the %s place of %s?", q.Place, expand.GroupThousands(number))

	return q
}

func (g *Generator) digits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	return b.String()
}
