package hand

import (
	"math/big"

	"github.com/cory-johannsen/handodds/internal/game/combin"
)

// part is one disjoint slice of the deck with its accepted draw range. The
// uncovered remainder of the deck is the final part with range [0, size].
type part struct {
	size int
	lo   int
	hi   int
}

// plan is a validated Request flattened into parts, with suffix sums used to
// prune branches that cannot reach exactly the hand size.
type plan struct {
	parts []part
	// minTail[i] is the fewest cards parts[i:] can contribute.
	minTail []int
	// maxTail[i] is the most cards parts[i:] can contribute.
	maxTail []int
}

func newPlan(r Request) plan {
	parts := make([]part, 0, len(r.Categories)+1)
	for _, c := range r.Categories {
		parts = append(parts, part{size: c.Count, lo: c.Min, hi: min(c.Max, c.Count)})
	}
	rem := r.Remainder()
	parts = append(parts, part{size: rem, lo: 0, hi: rem})

	minTail := make([]int, len(parts)+1)
	maxTail := make([]int, len(parts)+1)
	for i := len(parts) - 1; i >= 0; i-- {
		minTail[i] = minTail[i+1] + parts[i].lo
		maxTail[i] = maxTail[i+1] + parts[i].hi
	}
	return plan{parts: parts, minTail: minTail, maxTail: maxTail}
}

// bounds returns the admissible draw counts for parts[idx] given slots open
// hand slots, or ok == false when no count can lead to a full hand.
func (p plan) bounds(idx, slots int) (lo, hi int, ok bool) {
	if p.minTail[idx] > slots || p.maxTail[idx] < slots {
		return 0, 0, false
	}
	pt := p.parts[idx]
	lo = max(pt.lo, slots-p.maxTail[idx+1])
	hi = min(pt.hi, slots-p.minTail[idx+1])
	return lo, hi, lo <= hi
}

// ways returns the number of hands drawn from parts[idx:] that fill exactly
// slots cards within every part's range, and how many per-part count
// assignments contributed.
func (p plan) ways(idx, slots int) (*big.Int, int) {
	if idx == len(p.parts) {
		if slots == 0 {
			return big.NewInt(1), 1
		}
		return new(big.Int), 0
	}
	total := new(big.Int)
	lo, hi, ok := p.bounds(idx, slots)
	if !ok {
		return total, 0
	}
	assignments := 0
	term := new(big.Int)
	for k := lo; k <= hi; k++ {
		rest, n := p.ways(idx+1, slots-k)
		if n == 0 {
			continue
		}
		term.Mul(combin.Choose(p.parts[idx].size, k), rest)
		total.Add(total, term)
		assignments += n
	}
	return total, assignments
}

// Probability returns the exact probability that a hand of r.HandSize cards
// drawn from r.Population meets every category's range.
//
// Postcondition: returns a Result in [0, 1], or a *ConfigError when r is invalid.
// An unreachable requirement yields a zero Result, not an error.
func Probability(r Request) (Result, error) {
	if err := r.Validate(); err != nil {
		return Result{}, err
	}
	p := newPlan(r)
	hits, assignments := p.ways(0, r.HandSize)
	hands := combin.Choose(r.Population, r.HandSize)
	res := Result{
		exact:       new(big.Rat).SetFrac(hits, hands),
		hands:       hands,
		hits:        hits,
		assignments: assignments,
	}
	if res.exact.Sign() < 0 || res.exact.Cmp(big.NewRat(1, 1)) > 0 {
		panic("hand: probability outside [0, 1] for a validated request: " + res.exact.RatString())
	}
	return res, nil
}
