package scheduler

import (
	"math/rand"

	"evoschedule/internal/entities"

	"github.com/samber/lo"
)

type mutationKind int

const (
	retime mutationKind = iota
	reteach
	reroom
	swapSlots
	mutationKinds
)

// mutate produces a child from one parent: a structural copy with a single
// field changed by one uniformly chosen mutation kind, or the untouched
// parent with probability skipProbability. Children are not guaranteed to be
// conflict-free; the constraint checker filters them downstream.
func mutate(
	parent entities.Schedule,
	rooms []*entities.Room,
	teachers []*entities.Teacher,
	skipProbability float64,
	rng *rand.Rand,
) entities.Schedule {
	if len(parent.Sessions) == 0 || rng.Float64() < skipProbability {
		return parent
	}

	child := parent.Clone()
	switch mutationKind(rng.Intn(int(mutationKinds))) {
	case retime:
		mutateRetime(child.Sessions, rng)
	case reteach:
		mutateReteach(child.Sessions, teachers, rng)
	case reroom:
		mutateReroom(child.Sessions, rooms, rng)
	case swapSlots:
		mutateSwapSlots(child.Sessions, rng)
	}
	return child
}

// mutateRetime assigns one session a fresh random slot regardless of
// conflicts.
func mutateRetime(sessions []entities.Session, rng *rand.Rand) {
	i := rng.Intn(len(sessions))
	sessions[i].Slot = entities.TimeSlot{
		Day:    entities.Days[rng.Intn(len(entities.Days))],
		Period: entities.Periods[rng.Intn(len(entities.Periods))],
	}
}

// mutateReteach reassigns one session to a random teacher capable of its
// subject.
func mutateReteach(sessions []entities.Session, teachers []*entities.Teacher, rng *rand.Rand) {
	i := rng.Intn(len(sessions))
	capable := lo.Filter(teachers, func(teacher *entities.Teacher, _ int) bool {
		return teacher.CanTeach(sessions[i].Subject)
	})
	sessions[i].Teacher = capable[rng.Intn(len(capable))]
}

// mutateReroom reassigns one session to a random room from the full list.
func mutateReroom(sessions []entities.Session, rooms []*entities.Room, rng *rand.Rand) {
	i := rng.Intn(len(sessions))
	sessions[i].Room = rooms[rng.Intn(len(rooms))]
}

// mutateSwapSlots exchanges the slots of two distinct sessions. Both slot
// values are captured before reassignment by the tuple swap, and TimeSlot is
// held by value, so the exchange can never collapse both sessions onto one
// slot.
func mutateSwapSlots(sessions []entities.Session, rng *rand.Rand) {
	if len(sessions) < 2 {
		return
	}
	i := rng.Intn(len(sessions))
	j := rng.Intn(len(sessions) - 1)
	if j >= i {
		j++
	}
	sessions[i].Slot, sessions[j].Slot = sessions[j].Slot, sessions[i].Slot
}
