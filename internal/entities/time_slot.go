package entities

import "fmt"

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Days is the closed, ordered set of teaching days.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Day(%d)", int(d))
}

type Period int

const (
	First Period = iota + 1
	Second
	Third
	Fourth
	Fifth
	Sixth
)

// Periods is the closed, ordered set of periods within a day.
var Periods = []Period{First, Second, Third, Fourth, Fifth, Sixth}

// TimeSlot is a plain value: it is compared and copied by value, so two
// sessions can never share the same underlying slot. Reassigning a session's
// slot therefore cannot alias another session's slot.
type TimeSlot struct {
	Day    Day
	Period Period
}

// NewTimeSlot rejects day and period values outside the fixed sets; window
// arithmetic over min/max periods relies on the sets being closed.
func NewTimeSlot(day Day, period Period) (TimeSlot, error) {
	if day < Monday || day > Friday {
		return TimeSlot{}, fmt.Errorf("day out of range: %v", int(day))
	}
	if period < First || period > Sixth {
		return TimeSlot{}, fmt.Errorf("period out of range: %v", int(period))
	}
	return TimeSlot{Day: day, Period: period}, nil
}
