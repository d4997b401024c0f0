package scheduler

import (
	"math/rand"

	"evoschedule/internal/entities"

	"github.com/samber/lo"
)

// generate builds one full schedule by randomized greedy first-fit: for every
// required session it shuffles the teacher, room, day and period candidate
// lists independently and scans their product in nested order, accepting the
// first conflict-free combination. There is no backtracking into earlier
// placements; if some session finds no combination the whole attempt fails.
//
// Rooms are deliberately not capacity-filtered: an undersized room is a legal
// placement whose shortfall is penalized by the fitness score instead.
func generate(
	groups []*entities.Group,
	rooms []*entities.Room,
	teachers []*entities.Teacher,
	rng *rand.Rand,
) (entities.Schedule, bool) {
	schedule := entities.Schedule{}

	for _, group := range groups {
		for _, requirement := range group.Requirements {
			for i := 0; i < requirement.Count; i++ {
				teacherCandidates := lo.Filter(teachers, func(teacher *entities.Teacher, _ int) bool {
					return teacher.CanTeach(requirement.Subject)
				})
				roomCandidates := make([]*entities.Room, len(rooms))
				copy(roomCandidates, rooms)
				dayCandidates := make([]entities.Day, len(entities.Days))
				copy(dayCandidates, entities.Days)
				periodCandidates := make([]entities.Period, len(entities.Periods))
				copy(periodCandidates, entities.Periods)

				shuffle(teacherCandidates, rng)
				shuffle(roomCandidates, rng)
				shuffle(dayCandidates, rng)
				shuffle(periodCandidates, rng)

				session, ok := firstFit(schedule.Sessions, group, requirement.Subject, teacherCandidates, roomCandidates, dayCandidates, periodCandidates)
				if !ok {
					return entities.Schedule{}, false
				}
				schedule.Sessions = append(schedule.Sessions, session)
			}
		}
	}

	return schedule, true
}

// firstFit scans the candidate product with teachers outermost and periods
// innermost, returning the first combination that does not collide with any
// already placed session.
func firstFit(
	placed []entities.Session,
	group *entities.Group,
	subject entities.Subject,
	teachers []*entities.Teacher,
	rooms []*entities.Room,
	days []entities.Day,
	periods []entities.Period,
) (entities.Session, bool) {
	for _, teacher := range teachers {
		for _, room := range rooms {
			for _, day := range days {
				for _, period := range periods {
					candidate := entities.Session{
						Room:    room,
						Group:   group,
						Subject: subject,
						Teacher: teacher,
						Slot:    entities.TimeSlot{Day: day, Period: period},
					}
					if !collides(placed, &candidate) {
						return candidate, true
					}
				}
			}
		}
	}
	return entities.Session{}, false
}

func collides(placed []entities.Session, candidate *entities.Session) bool {
	for i := range placed {
		if conflicts(&placed[i], candidate) {
			return true
		}
	}
	return false
}

func shuffle[T any](items []T, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
