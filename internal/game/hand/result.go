package hand

import (
	"math/big"
	"strconv"
)

// Result is the outcome of one calculation.
//
// Invariant: 0 <= Hits() <= Hands() and Rat() == Hits()/Hands().
type Result struct {
	exact       *big.Rat
	hits        *big.Int
	hands       *big.Int
	assignments int
}

func (r Result) mustBeSet() {
	if r.exact == nil {
		panic("hand: Result used before Probability populated it")
	}
}

// Rat returns the exact probability in lowest terms.
func (r Result) Rat() *big.Rat {
	r.mustBeSet()
	return new(big.Rat).Set(r.exact)
}

// Hits returns the number of hands that meet every requirement.
func (r Result) Hits() *big.Int {
	r.mustBeSet()
	return new(big.Int).Set(r.hits)
}

// Hands returns the number of possible hands, C(population, hand size).
func (r Result) Hands() *big.Int {
	r.mustBeSet()
	return new(big.Int).Set(r.hands)
}

// Assignments returns how many per-category count combinations contributed
// at least one hand.
func (r Result) Assignments() int {
	r.mustBeSet()
	return r.assignments
}

// Float64 returns the probability as the nearest float64.
func (r Result) Float64() float64 {
	r.mustBeSet()
	f, _ := r.exact.Float64()
	return f
}

// Percent returns the probability scaled to [0, 100].
func (r Result) Percent() float64 {
	p := r.Float64() * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Format renders the percentage with precision decimal places, e.g. "33.76%".
func (r Result) Format(precision int) string {
	return strconv.FormatFloat(r.Percent(), 'f', precision, 64) + "%"
}

// String renders the percentage with two decimal places.
func (r Result) String() string {
	return r.Format(2)
}
