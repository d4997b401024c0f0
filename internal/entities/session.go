package entities

// Session is one scheduled occurrence of a group studying a subject with a
// teacher, in a room, at a time slot. Room, Group and Teacher point into the
// read-only roster; Slot is held by value so replacing it never touches
// another session.
type Session struct {
	Room    *Room
	Group   *Group
	Subject Subject
	Teacher *Teacher
	Slot    TimeSlot
}
