package roster

import (
	"os"

	"evoschedule/internal/entities"

	"github.com/gocarina/gocsv"
)

type groupRow struct {
	Name                string `csv:"name"`
	Size                int    `csv:"size"`
	SubjectRequirements string `csv:"subject_requirements"`
}

type roomRow struct {
	Identifier int `csv:"identifier"`
	Capacity   int `csv:"capacity"`
}

type teacherRow struct {
	Fullname string `csv:"fullname"`
	Subjects string `csv:"subjects"`
}

// LoadGroups reads and parses the given csv file for group data.
func LoadGroups(path string) ([]*entities.Group, error) {
	rows := []*groupRow{}
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, err
	}

	groups := make([]*entities.Group, 0, len(rows))
	for i, row := range rows {
		group, err := buildGroup(row.Name, row.Size, row.SubjectRequirements)
		if err != nil {
			return nil, &FormatError{File: path, Line: i + 2, Msg: err.Error()}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// LoadRooms reads and parses the given csv file for room data.
func LoadRooms(path string) ([]*entities.Room, error) {
	rows := []*roomRow{}
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(rows))
	rooms := make([]*entities.Room, 0, len(rows))
	for i, row := range rows {
		room, err := buildRoom(row.Identifier, row.Capacity, seen)
		if err != nil {
			return nil, &FormatError{File: path, Line: i + 2, Msg: err.Error()}
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// LoadTeachers reads and parses the given csv file for teacher data.
func LoadTeachers(path string) ([]*entities.Teacher, error) {
	rows := []*teacherRow{}
	if err := unmarshalCSV(path, &rows); err != nil {
		return nil, err
	}

	teachers := make([]*entities.Teacher, 0, len(rows))
	for i, row := range rows {
		teacher, err := buildTeacher(row.Fullname, row.Subjects)
		if err != nil {
			return nil, &FormatError{File: path, Line: i + 2, Msg: err.Error()}
		}
		teachers = append(teachers, teacher)
	}
	return teachers, nil
}

func unmarshalCSV(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return &FormatError{File: path, Msg: err.Error()}
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return &FormatError{File: path, Msg: err.Error()}
	}
	return nil
}
