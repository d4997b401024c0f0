package scheduler

import (
	"math/rand"

	"evoschedule/internal/entities"
)

// crossover recombines two parents of matching structure into two children:
// at every aligned index a fair coin decides which parent's assignment child
// A inherits, and child B receives the complement. Group and subject agree at
// each index because both parents were generated from the same rosters, so
// exchanging whole sessions exchanges exactly the (room, teacher, slot)
// triple.
func crossover(parentA, parentB entities.Schedule, rng *rand.Rand) (entities.Schedule, entities.Schedule) {
	childA := parentA.Clone()
	childB := parentB.Clone()
	for i := range childA.Sessions {
		if rng.Intn(2) == 0 {
			continue
		}
		childA.Sessions[i], childB.Sessions[i] = childB.Sessions[i], childA.Sessions[i]
	}
	return childA, childB
}
