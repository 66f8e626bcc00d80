package hand

import (
	"math/big"

	"github.com/cory-johannsen/handodds/internal/game/combin"
)

// Assignment is one admissible way to split a hand across the categories.
type Assignment struct {
	// Counts holds the copies drawn of each category, in Request order.
	Counts []int
	// Leftover is the number of hand slots filled from the remainder.
	Leftover int
	// Ways is the number of distinct hands with exactly these counts.
	Ways *big.Int
	// Probability is Ways divided by the number of possible hands.
	Probability *big.Rat
}

// list returns every complete assignment of parts[idx:] filling exactly slots
// cards, each prefixed with counts already chosen for parts[:idx].
func (p plan) list(idx, slots int, prefix []int) [][]int {
	if idx == len(p.parts) {
		if slots != 0 {
			return nil
		}
		return [][]int{append([]int(nil), prefix...)}
	}
	lo, hi, ok := p.bounds(idx, slots)
	if !ok {
		return nil
	}
	var out [][]int
	for k := lo; k <= hi; k++ {
		out = append(out, p.list(idx+1, slots-k, append(prefix, k))...)
	}
	return out
}

// Breakdown lists every admissible per-category count assignment for r with
// the number of hands it accounts for. The Ways of all assignments sum to
// Probability(r).Hits().
//
// Postcondition: returns the assignments in lexicographic order of Counts, or
// a *ConfigError when r is invalid.
func Breakdown(r Request) ([]Assignment, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	p := newPlan(r)
	hands := combin.Choose(r.Population, r.HandSize)
	rows := p.list(0, r.HandSize, make([]int, 0, len(p.parts)))
	out := make([]Assignment, 0, len(rows))
	for _, counts := range rows {
		ways := big.NewInt(1)
		for i, k := range counts {
			ways.Mul(ways, combin.Choose(p.parts[i].size, k))
		}
		last := len(counts) - 1
		out = append(out, Assignment{
			Counts:      counts[:last:last],
			Leftover:    counts[last],
			Ways:        ways,
			Probability: new(big.Rat).SetFrac(ways, hands),
		})
	}
	return out, nil
}
