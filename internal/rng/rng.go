// Package rng wraps math/rand.Rand so every strategy (sampler, annotator,
// clusterer, annealer) owns its own seeded source instead of reaching for
// the global math/rand functions. No module-level mutable RNG state is
// allowed: each strategy receives a seed at construction and carries its
// own *rand.Rand from then on, which is what makes a simulation
// replayable given the same seed vector.
package rng

import "math/rand"

// Rand is a per-strategy pseudo-random source with a handful of
// sampling helpers layered on top of math/rand.Rand.
type Rand struct {
	*rand.Rand
}

// New constructs a Rand seeded deterministically from seed.
func New(seed int64) *Rand {
	return &Rand{Rand: rand.New(rand.NewSource(seed))}
}

// SampleN draws min(k, len(pool)) distinct elements from pool without
// replacement, in random order. Requesting more than is available is
// not an error: the result is simply capped.
func (r *Rand) SampleN(pool []int, k int) []int {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}

	shuffled := make([]int, len(pool))
	copy(shuffled, pool)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	out := make([]int, k)
	copy(out, shuffled[:k])

	return out
}

// Choice returns a uniformly random element of pool. Panics if pool is
// empty -- callers must check length first, mirroring the narrow,
// precondition-checked helpers throughout this module.
func (r *Rand) Choice(pool []int) int {
	return pool[r.Intn(len(pool))]
}
