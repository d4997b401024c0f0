package entities

// Teacher is identified by Fullname and carries the set of subjects they can
// teach.
type Teacher struct {
	Fullname  string
	teachable map[Subject]bool
}

func NewTeacher(fullname string, subjects []Subject) *Teacher {
	teachable := make(map[Subject]bool, len(subjects))
	for _, subject := range subjects {
		teachable[subject] = true
	}
	return &Teacher{Fullname: fullname, teachable: teachable}
}

func (t *Teacher) CanTeach(subject Subject) bool {
	return t.teachable[subject]
}
