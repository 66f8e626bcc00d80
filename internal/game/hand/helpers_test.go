package hand_test

import (
	"fmt"

	gcombin "gonum.org/v1/gonum/stat/combin"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/handodds/internal/game/hand"
)

// drawRequest generates a valid Request with a deck of at most maxDeck cards.
func drawRequest(rt *rapid.T, maxDeck, maxCategories int) hand.Request {
	population := rapid.IntRange(1, maxDeck).Draw(rt, "population")
	handSize := rapid.IntRange(1, population).Draw(rt, "hand_size")
	n := rapid.IntRange(0, maxCategories).Draw(rt, "categories")
	free := population
	cats := make([]hand.Category, 0, n)
	for i := 0; i < n; i++ {
		count := rapid.IntRange(0, free).Draw(rt, fmt.Sprintf("count_%d", i))
		lo := rapid.IntRange(0, count).Draw(rt, fmt.Sprintf("min_%d", i))
		hi := rapid.IntRange(lo, count).Draw(rt, fmt.Sprintf("max_%d", i))
		free -= count
		cats = append(cats, hand.Category{Label: fmt.Sprintf("card-%d", i), Count: count, Min: lo, Max: hi})
	}
	return hand.Request{Population: population, HandSize: handSize, Categories: cats}
}

// bruteForce counts qualifying hands by visiting every hand in the deck.
// Cards [0, Count_0) belong to category 0, the next Count_1 to category 1,
// and so on; the rest are the remainder.
func bruteForce(r hand.Request) (hits, hands int) {
	owner := make([]int, r.Population)
	for i := range owner {
		owner[i] = -1
	}
	next := 0
	for ci, c := range r.Categories {
		for j := 0; j < c.Count; j++ {
			owner[next] = ci
			next++
		}
	}

	gen := gcombin.NewCombinationGenerator(r.Population, r.HandSize)
	combo := make([]int, r.HandSize)
	counts := make([]int, len(r.Categories))
	for gen.Next() {
		gen.Combination(combo)
		for i := range counts {
			counts[i] = 0
		}
		for _, card := range combo {
			if owner[card] >= 0 {
				counts[owner[card]]++
			}
		}
		hands++
		ok := true
		for i, c := range r.Categories {
			if counts[i] < c.Min || counts[i] > c.Max {
				ok = false
				break
			}
		}
		if ok {
			hits++
		}
	}
	return hits, hands
}
