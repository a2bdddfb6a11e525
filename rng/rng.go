// Package rng provides the random source used by the game engines.
// Engines take a Source so tests can substitute deterministic sequences;
// production wiring uses Crypto, backed by crypto/rand.
package rng

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers. Implementations must return a
// value in [0, n) for any n > 0.
type Source interface {
	Intn(n int) int
}

// Crypto is a Source backed by crypto/rand (CSPRNG).
type Crypto struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// SampleUnique draws k distinct positions from [0, n) without replacement.
// Returns nil if k is out of range.
func SampleUnique(src Source, n, k int) []int {
	if k < 0 || k > n {
		return nil
	}
	picked := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		pos := src.Intn(n)
		if picked[pos] {
			continue
		}
		picked[pos] = true
		out = append(out, pos)
	}
	return out
}
