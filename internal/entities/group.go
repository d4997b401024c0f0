package entities

// SubjectRequirement states that a group needs Count sessions of Subject per
// week. A group may list the same subject more than once; every pair must be
// realized in full by any accepted schedule.
type SubjectRequirement struct {
	Count   int
	Subject Subject
}

// Group is identified by Name. Requirements keep roster order, which fixes
// the session ordering of every generated schedule.
type Group struct {
	Name         string
	Size         int
	Requirements []SubjectRequirement
}

// TotalSessions is the number of sessions the group requires per week.
func (g *Group) TotalSessions() int {
	total := 0
	for _, requirement := range g.Requirements {
		total += requirement.Count
	}
	return total
}
