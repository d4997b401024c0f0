package roster

import (
	"encoding/json"
	"os"

	"evoschedule/internal/entities"

	"github.com/mitchellh/mapstructure"
)

type jsonRequirement struct {
	Subject string
	Count   int
}

type jsonGroup struct {
	Name         string
	Size         int
	Requirements []jsonRequirement
}

type jsonRoom struct {
	Identifier int
	Capacity   int
}

type jsonTeacher struct {
	Fullname string
	Subjects []string
}

type jsonInput struct {
	Groups   []jsonGroup
	Rooms    []jsonRoom
	Teachers []jsonTeacher
}

// LoadJSON reads a single json document holding groups, rooms and teachers.
// The field contracts match the csv loaders.
func LoadJSON(path string) ([]*entities.Group, []*entities.Room, []*entities.Teacher, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, &FormatError{File: path, Msg: err.Error()}
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, nil, nil, &FormatError{File: path, Msg: err.Error()}
	}

	var input jsonInput
	if err := mapstructure.Decode(raw, &input); err != nil {
		return nil, nil, nil, &FormatError{File: path, Msg: err.Error()}
	}

	groups := make([]*entities.Group, 0, len(input.Groups))
	for _, record := range input.Groups {
		requirements := make([]entities.SubjectRequirement, 0, len(record.Requirements))
		for _, requirement := range record.Requirements {
			if requirement.Subject == "" {
				return nil, nil, nil, &FormatError{File: path, Msg: "empty subject in group " + record.Name}
			}
			if requirement.Count < 1 {
				return nil, nil, nil, &FormatError{File: path, Msg: "requirement count must be >= 1 in group " + record.Name}
			}
			requirements = append(requirements, entities.SubjectRequirement{
				Count:   requirement.Count,
				Subject: entities.Subject{Name: requirement.Subject},
			})
		}
		if record.Name == "" {
			return nil, nil, nil, &FormatError{File: path, Msg: "empty group name"}
		}
		if record.Size < 0 {
			return nil, nil, nil, &FormatError{File: path, Msg: "negative size in group " + record.Name}
		}
		groups = append(groups, &entities.Group{Name: record.Name, Size: record.Size, Requirements: requirements})
	}

	seen := make(map[int]bool, len(input.Rooms))
	rooms := make([]*entities.Room, 0, len(input.Rooms))
	for _, record := range input.Rooms {
		room, err := buildRoom(record.Identifier, record.Capacity, seen)
		if err != nil {
			return nil, nil, nil, &FormatError{File: path, Msg: err.Error()}
		}
		rooms = append(rooms, room)
	}

	teachers := make([]*entities.Teacher, 0, len(input.Teachers))
	for _, record := range input.Teachers {
		if record.Fullname == "" {
			return nil, nil, nil, &FormatError{File: path, Msg: "empty teacher fullname"}
		}
		subjects := make([]entities.Subject, 0, len(record.Subjects))
		for _, name := range record.Subjects {
			if name == "" {
				return nil, nil, nil, &FormatError{File: path, Msg: "empty subject in teacher " + record.Fullname}
			}
			subjects = append(subjects, entities.Subject{Name: name})
		}
		teachers = append(teachers, entities.NewTeacher(record.Fullname, subjects))
	}

	return groups, rooms, teachers, nil
}
