// Package hand computes the exact probability that a random opening hand
// satisfies a set of per-card count requirements.
//
// A deck (the population) is partitioned into tracked categories plus an
// unconstrained remainder. A hand is an unordered draw without replacement.
// The probability is the number of hands meeting every category's accepted
// range divided by the number of possible hands (multivariate hypergeometric).
package hand

// Category is one tracked card type.
//
// Invariant (after Request.Validate): 0 <= Min <= Max <= Count.
type Category struct {
	ID    string // caller-assigned identifier; not used in computation
	Label string // free-form display name, e.g. "Ash Blossom"
	Count int    // copies of the card in the deck
	Min   int    // fewest copies accepted in the hand (inclusive)
	Max   int    // most copies accepted in the hand (inclusive)
}

// name returns a display name for error messages.
func (c Category) name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Request describes one calculation: a deck of Population cards, a hand of
// HandSize cards, and the requirements on each tracked Category.
//
// Categories are disjoint: every card belongs to at most one of them.
// Category order never affects the result.
type Request struct {
	Population int
	HandSize   int
	Categories []Category
}

// Remainder returns the number of cards not covered by any tracked category.
//
// Precondition: r has passed Validate; otherwise the value may be negative.
func (r Request) Remainder() int {
	rem := r.Population
	for _, c := range r.Categories {
		rem -= c.Count
	}
	return rem
}
