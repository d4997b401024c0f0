package roster

import (
	"fmt"
	"os"

	"evoschedule/internal/entities"

	"github.com/gocarina/gocsv"
)

type scheduleRow struct {
	Group   string `csv:"group"`
	Subject string `csv:"subject"`
	Teacher string `csv:"teacher"`
	Room    int    `csv:"room"`
	Day     string `csv:"day"`
	Period  int    `csv:"period"`
}

// WriteSchedule exports an accepted schedule to csv, one row per session in
// schedule order.
func WriteSchedule(path string, schedule entities.Schedule) error {
	rows := make([]*scheduleRow, 0, len(schedule.Sessions))
	for _, session := range schedule.Sessions {
		rows = append(rows, &scheduleRow{
			Group:   session.Group.Name,
			Subject: session.Subject.Name,
			Teacher: session.Teacher.Fullname,
			Room:    session.Room.Identifier,
			Day:     session.Slot.Day.String(),
			Period:  int(session.Slot.Period),
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %v: %w", path, err)
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}
