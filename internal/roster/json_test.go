package roster

import (
	"errors"
	"os"
	"testing"

	"evoschedule/internal/entities"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readScheduleRows(path string) ([]*scheduleRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows := []*scheduleRow{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

const validInput = `{
	"groups": [
		{
			"name": "a1",
			"size": 25,
			"requirements": [
				{"subject": "math", "count": 4},
				{"subject": "science", "count": 2}
			]
		}
	],
	"rooms": [
		{"identifier": 1, "capacity": 30},
		{"identifier": 2, "capacity": 20}
	],
	"teachers": [
		{"fullname": "John Doe", "subjects": ["math", "science"]}
	]
}`

func TestLoadJSON(t *testing.T) {
	t.Run("parses a complete document", func(t *testing.T) {
		path := writeFile(t, "input.json", validInput)

		groups, rooms, teachers, err := LoadJSON(path)

		require.Nil(t, err)
		require.Equal(t, 1, len(groups))
		assert.Equal(t, "a1", groups[0].Name)
		assert.Equal(t, 6, groups[0].TotalSessions())
		require.Equal(t, 2, len(rooms))
		assert.Equal(t, 30, rooms[0].Capacity)
		require.Equal(t, 1, len(teachers))
		assert.True(t, teachers[0].CanTeach(entities.Subject{Name: "math"}))
	})

	t.Run("rejects a duplicate room identifier", func(t *testing.T) {
		path := writeFile(t, "input.json", `{
			"groups": [],
			"rooms": [
				{"identifier": 1, "capacity": 30},
				{"identifier": 1, "capacity": 20}
			],
			"teachers": []
		}`)

		_, _, _, err := LoadJSON(path)

		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	t.Run("rejects an empty subject", func(t *testing.T) {
		path := writeFile(t, "input.json", `{
			"groups": [
				{"name": "a1", "size": 10, "requirements": [{"subject": "", "count": 1}]}
			],
			"rooms": [],
			"teachers": []
		}`)

		_, _, _, err := LoadJSON(path)

		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		path := writeFile(t, "input.json", "{not json")

		_, _, _, err := LoadJSON(path)

		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
	})
}

func TestWriteSchedule(t *testing.T) {
	room := &entities.Room{Identifier: 7, Capacity: 30}
	group := &entities.Group{Name: "a1", Size: 20}
	teacher := entities.NewTeacher("John Doe", []entities.Subject{{Name: "math"}})
	schedule := entities.Schedule{Sessions: []entities.Session{
		{
			Room:    room,
			Group:   group,
			Subject: entities.Subject{Name: "math"},
			Teacher: teacher,
			Slot:    entities.TimeSlot{Day: entities.Wednesday, Period: entities.Second},
		},
	}}

	path := writeFile(t, "schedule.csv", "")
	require.Nil(t, WriteSchedule(path, schedule))

	// Written schedules must round-trip through the csv layer.
	rows, err := readScheduleRows(path)
	require.Nil(t, err)
	require.Equal(t, 1, len(rows))
	assert.Equal(t, "a1", rows[0].Group)
	assert.Equal(t, "math", rows[0].Subject)
	assert.Equal(t, "John Doe", rows[0].Teacher)
	assert.Equal(t, 7, rows[0].Room)
	assert.Equal(t, "Wednesday", rows[0].Day)
	assert.Equal(t, 2, rows[0].Period)
}
