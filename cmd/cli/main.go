package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"evoschedule/internal/config"
	"evoschedule/internal/entities"
	"evoschedule/internal/logger"
	"evoschedule/internal/roster"
	"evoschedule/internal/scheduler"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "evoschedule",
	Short:        "Evolutionary weekly timetable generator",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("cli")

	groups, rooms, teachers, err := loadRosters(cfg.Input)
	if err != nil {
		return fmt.Errorf("load rosters: %w", err)
	}
	log.Infof("rosters loaded: %v groups, %v rooms, %v teachers", len(groups), len(rooms), len(teachers))

	engine, err := scheduler.New(cfg.Scheduler, logger.New("scheduler"))
	if err != nil {
		return err
	}

	schedule, err := engine.Run(groups, rooms, teachers)
	if err != nil {
		return err
	}

	if err := roster.WriteSchedule(cfg.Output, schedule); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	log.Infof("schedule with %v sessions written to %v (score %v)", len(schedule.Sessions), cfg.Output, scheduler.Score(schedule))
	return nil
}

func loadRosters(input config.InputConfig) ([]*entities.Group, []*entities.Room, []*entities.Teacher, error) {
	if input.File != "" {
		return roster.LoadJSON(input.File)
	}

	groups, err := roster.LoadGroups(input.Groups)
	if err != nil {
		return nil, nil, nil, err
	}
	rooms, err := roster.LoadRooms(input.Rooms)
	if err != nil {
		return nil, nil, nil, err
	}
	teachers, err := roster.LoadTeachers(input.Teachers)
	if err != nil {
		return nil, nil, nil, err
	}
	return groups, rooms, teachers, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
