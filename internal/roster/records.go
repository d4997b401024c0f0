package roster

import (
	"fmt"
	"strconv"
	"strings"

	"evoschedule/internal/entities"
)

// buildGroup converts a raw roster record into a Group. Requirements are
// comma-separated "subject:count" tokens with surrounding whitespace trimmed,
// e.g. "math:4, science:2, pe:1".
func buildGroup(name string, size int, requirements string) (*entities.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("empty group name")
	}
	if size < 0 {
		return nil, fmt.Errorf("negative group size: %v", size)
	}

	parsed, err := parseRequirements(requirements)
	if err != nil {
		return nil, err
	}
	return &entities.Group{Name: name, Size: size, Requirements: parsed}, nil
}

func parseRequirements(raw string) ([]entities.SubjectRequirement, error) {
	requirements := make([]entities.SubjectRequirement, 0)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		subjectName, countStr, found := strings.Cut(token, ":")
		if !found {
			return nil, fmt.Errorf("malformed requirement token %q: want subject:count", token)
		}
		subjectName = strings.TrimSpace(subjectName)
		if subjectName == "" {
			return nil, fmt.Errorf("empty subject in requirement token %q", token)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, fmt.Errorf("non-integer count in requirement token %q", token)
		}
		if count < 1 {
			return nil, fmt.Errorf("requirement count must be >= 1 in token %q", token)
		}
		requirements = append(requirements, entities.SubjectRequirement{
			Count:   count,
			Subject: entities.Subject{Name: subjectName},
		})
	}
	return requirements, nil
}

func buildRoom(identifier, capacity int, seen map[int]bool) (*entities.Room, error) {
	if seen[identifier] {
		return nil, fmt.Errorf("duplicate room identifier: %v", identifier)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("negative room capacity: %v", capacity)
	}
	seen[identifier] = true
	return &entities.Room{Identifier: identifier, Capacity: capacity}, nil
}

// buildTeacher converts a raw record into a Teacher. Subjects are a
// comma-separated list with whitespace trimmed, e.g. "math, programming".
func buildTeacher(fullname string, subjects string) (*entities.Teacher, error) {
	if fullname == "" {
		return nil, fmt.Errorf("empty teacher fullname")
	}

	names := make([]entities.Subject, 0)
	for _, token := range strings.Split(subjects, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("empty subject in teacher %q", fullname)
		}
		names = append(names, entities.Subject{Name: token})
	}
	return entities.NewTeacher(fullname, names), nil
}
