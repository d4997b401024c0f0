package scheduler

import (
	"evoschedule/internal/entities"

	"github.com/samber/lo"
)

// Score maps a schedule into (0, 1], higher is better:
//
//	1 / (1 + groupWindows + teacherWindows + seatsLacking)
//
// A score of exactly 1 means no entity has an idle gap on any day and no
// room is undersized for its assigned group.
func Score(schedule entities.Schedule) float64 {
	groupSlots := make(map[string][]entities.TimeSlot)
	teacherSlots := make(map[string][]entities.TimeSlot)
	seatsLacking := 0

	for _, session := range schedule.Sessions {
		groupSlots[session.Group.Name] = append(groupSlots[session.Group.Name], session.Slot)
		teacherSlots[session.Teacher.Fullname] = append(teacherSlots[session.Teacher.Fullname], session.Slot)
		if lacking := session.Group.Size - session.Room.Capacity; lacking > 0 {
			seatsLacking += lacking
		}
	}

	windows := 0
	for _, slots := range groupSlots {
		windows += countWindows(slots)
	}
	for _, slots := range teacherSlots {
		windows += countWindows(slots)
	}

	return 1 / float64(1+windows+seatsLacking)
}

// countWindows counts the idle periods strictly between an entity's earliest
// and latest session per day. Days with fewer than two sessions contribute
// nothing.
func countWindows(slots []entities.TimeSlot) int {
	perDay := lo.GroupBy(slots, func(slot entities.TimeSlot) entities.Day { return slot.Day })

	total := 0
	for _, daySlots := range perDay {
		if len(daySlots) < 2 {
			continue
		}
		periods := lo.Map(daySlots, func(slot entities.TimeSlot, _ int) int { return int(slot.Period) })
		span := lo.Max(periods) - lo.Min(periods)
		total += span - len(daySlots) + 1
	}
	return total
}
