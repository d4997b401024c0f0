package scheduler

import "evoschedule/internal/entities"

// conflicts reports whether two sessions double-book a room, a teacher or a
// group. It is the single conflict predicate of the engine: the generator
// applies it per placement step and IsValid applies it pairwise, so the two
// stay in lock-step.
func conflicts(a, b *entities.Session) bool {
	if a.Slot != b.Slot {
		return false
	}
	return a.Room.Identifier == b.Room.Identifier ||
		a.Teacher.Fullname == b.Teacher.Fullname ||
		a.Group.Name == b.Group.Name
}

// IsValid reports whether the schedule satisfies every hard constraint: no
// two sessions share a time slot together with a room, teacher or group.
func IsValid(schedule entities.Schedule) bool {
	sessions := schedule.Sessions
	for i := range sessions {
		for j := i + 1; j < len(sessions); j++ {
			if conflicts(&sessions[i], &sessions[j]) {
				return false
			}
		}
	}
	return true
}
