package scheduler

import (
	"fmt"

	"evoschedule/internal/entities"
)

var (
	math    = entities.Subject{Name: "math"}
	science = entities.Subject{Name: "science"}
)

// testRoster is a small feasible instance: two groups, two subjects, two
// teachers each teaching both subjects and two rooms large enough for every
// group.
func testRoster() ([]*entities.Group, []*entities.Room, []*entities.Teacher) {
	groups := []*entities.Group{
		{
			Name: "a1",
			Size: 20,
			Requirements: []entities.SubjectRequirement{
				{Count: 2, Subject: math},
				{Count: 1, Subject: science},
			},
		},
		{
			Name: "b1",
			Size: 25,
			Requirements: []entities.SubjectRequirement{
				{Count: 1, Subject: math},
				{Count: 2, Subject: science},
			},
		},
	}
	rooms := []*entities.Room{
		{Identifier: 1, Capacity: 30},
		{Identifier: 2, Capacity: 30},
	}
	teachers := []*entities.Teacher{
		entities.NewTeacher("John Doe", []entities.Subject{math, science}),
		entities.NewTeacher("Jane Roe", []entities.Subject{math, science}),
	}
	return groups, rooms, teachers
}

// renderSchedule flattens a schedule into comparable strings, one per
// session.
func renderSchedule(schedule entities.Schedule) []string {
	rendered := make([]string, 0, len(schedule.Sessions))
	for _, session := range schedule.Sessions {
		rendered = append(rendered, fmt.Sprintf(
			"%v/%v/%v/%v/%v/%v",
			session.Group.Name,
			session.Subject.Name,
			session.Teacher.Fullname,
			session.Room.Identifier,
			session.Slot.Day,
			session.Slot.Period,
		))
	}
	return rendered
}

// sessionCounts tallies sessions per group and subject.
func sessionCounts(schedule entities.Schedule) map[string]int {
	counts := make(map[string]int)
	for _, session := range schedule.Sessions {
		counts[session.Group.Name+"/"+session.Subject.Name]++
	}
	return counts
}
