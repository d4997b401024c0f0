package entities

// Schedule is one candidate solution: the ordered sequence of all sessions.
// Order is generation order (group order × requirement order × instance
// index) and only matters for diagnostics and export.
type Schedule struct {
	Sessions []Session
}

// Clone returns a structurally independent copy. Sessions are value structs
// whose pointers target the immutable roster, so copying the slice is enough
// for variation operators to modify the clone freely.
func (s Schedule) Clone() Schedule {
	sessions := make([]Session, len(s.Sessions))
	copy(sessions, s.Sessions)
	return Schedule{Sessions: sessions}
}
