package scheduler

import (
	"testing"

	"evoschedule/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestCountWindows(t *testing.T) {
	t.Run("one idle period between two sessions", func(t *testing.T) {
		slots := []entities.TimeSlot{
			{Day: entities.Monday, Period: entities.First},
			{Day: entities.Monday, Period: entities.Third},
		}
		assert.Equal(t, 1, countWindows(slots))
	})

	t.Run("consecutive sessions leave no window", func(t *testing.T) {
		slots := []entities.TimeSlot{
			{Day: entities.Monday, Period: entities.First},
			{Day: entities.Monday, Period: entities.Second},
			{Day: entities.Monday, Period: entities.Third},
		}
		assert.Equal(t, 0, countWindows(slots))
	})

	t.Run("single session per day contributes nothing", func(t *testing.T) {
		slots := []entities.TimeSlot{
			{Day: entities.Monday, Period: entities.First},
			{Day: entities.Tuesday, Period: entities.Sixth},
		}
		assert.Equal(t, 0, countWindows(slots))
	})

	t.Run("windows add up across days", func(t *testing.T) {
		slots := []entities.TimeSlot{
			{Day: entities.Monday, Period: entities.First},
			{Day: entities.Monday, Period: entities.Fourth},
			{Day: entities.Tuesday, Period: entities.Second},
			{Day: entities.Tuesday, Period: entities.Sixth},
		}
		// Monday: (4-1) - 2 + 1 = 2, Tuesday: (6-2) - 2 + 1 = 3.
		assert.Equal(t, 5, countWindows(slots))
	})
}

func TestScore(t *testing.T) {
	group := &entities.Group{Name: "a1", Size: 30}
	teacher := entities.NewTeacher("John Doe", []entities.Subject{math})
	small := &entities.Room{Identifier: 1, Capacity: 25}
	large := &entities.Room{Identifier: 2, Capacity: 40}

	t.Run("undersized room contributes the seat shortfall", func(t *testing.T) {
		schedule := entities.Schedule{Sessions: []entities.Session{
			{Room: small, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.First}},
		}}

		// 30 students in a room of 25: five seats lacking, no windows.
		assert.Equal(t, 1.0/6.0, Score(schedule))
	})

	t.Run("gapless schedule with fitting rooms scores exactly one", func(t *testing.T) {
		schedule := entities.Schedule{Sessions: []entities.Session{
			{Room: large, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.First}},
			{Room: large, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.Second}},
		}}

		assert.Equal(t, 1.0, Score(schedule))
	})

	t.Run("windows of groups and teachers both count", func(t *testing.T) {
		schedule := entities.Schedule{Sessions: []entities.Session{
			{Room: large, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.First}},
			{Room: large, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.Third}},
		}}

		// The single gap is counted once for the group and once for the
		// teacher.
		assert.Equal(t, 1.0/3.0, Score(schedule))
	})

	t.Run("score stays within (0, 1]", func(t *testing.T) {
		schedule := entities.Schedule{Sessions: []entities.Session{
			{Room: small, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.First}},
			{Room: small, Group: group, Subject: math, Teacher: teacher, Slot: entities.TimeSlot{Day: entities.Monday, Period: entities.Sixth}},
		}}

		score := Score(schedule)
		assert.Greater(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}
