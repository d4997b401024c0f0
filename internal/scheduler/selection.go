package scheduler

import (
	"math/rand"
	"sort"
)

// rainEliteFraction of the population is kept unconditionally under RAIN
// selection; the count is floored before use.
const rainEliteFraction = 0.2

// sortByScore orders individuals descending by score. The sort is stable, so
// ties keep merged-pool order: current population first, then admitted
// children, each in insertion order.
func sortByScore(pool []individual) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})
}

// selectGreedy keeps the best size individuals of the merged pool.
func selectGreedy(pool []individual, size int) []individual {
	sorted := make([]individual, len(pool))
	copy(sorted, pool)
	sortByScore(sorted)
	return sorted[:size]
}

// selectRain keeps floor(size × 0.2) elite individuals by score and fills the
// remaining slots by sampling the merged pool uniformly with replacement.
func selectRain(pool []individual, size int, rng *rand.Rand) []individual {
	eliteCount := int(float64(size) * rainEliteFraction)

	sorted := make([]individual, len(pool))
	copy(sorted, pool)
	sortByScore(sorted)

	next := make([]individual, 0, size)
	next = append(next, sorted[:eliteCount]...)
	for len(next) < size {
		next = append(next, pool[rng.Intn(len(pool))])
	}
	return next
}
