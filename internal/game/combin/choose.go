// Package combin provides exact binomial coefficients for the hand
// probability engine.
package combin

import "math/big"

// Choose returns the number of ways to pick r unordered items from n.
//
// Postcondition: returns 0 when r < 0 or r > n, 1 when r == 0, and the exact
// binomial coefficient otherwise. The returned value is freshly allocated and
// owned by the caller.
func Choose(n, r int) *big.Int {
	if r < 0 || n < 0 || r > n {
		return new(big.Int)
	}
	if r > n-r {
		r = n - r
	}
	result := big.NewInt(1)
	num := new(big.Int)
	den := new(big.Int)
	for i := 1; i <= r; i++ {
		// result * (n-r+i) is always divisible by i: it equals C(n-r+i, i) * i.
		num.SetInt64(int64(n - r + i))
		den.SetInt64(int64(i))
		result.Mul(result, num)
		result.Quo(result, den)
	}
	return result
}
