package scheduler

import (
	"math/rand"

	"evoschedule/internal/entities"
	"evoschedule/internal/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Scheduler evolves a population of candidate schedules over a fixed number
// of generations and returns the best schedule ever observed.
type Scheduler interface {
	// Run assigns every required session of every group to a teacher, room
	// and time slot. The roster is treated as read-only for the whole run.
	// It fails with *InfeasibleProblemError when seeding cannot fill the
	// initial population and with *StalledEvolutionError when a generation
	// cannot breed enough valid children; no partial schedule is returned.
	Run(
		groups []*entities.Group,
		rooms []*entities.Room,
		teachers []*entities.Teacher,
	) (entities.Schedule, error)
}

func New(cfg Config, log logger.Logger) (Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &geneticScheduler{cfg: cfg, log: log}, nil
}

type individual struct {
	schedule entities.Schedule
	score    float64
}

type geneticScheduler struct {
	cfg Config
	log logger.Logger
}

func (s *geneticScheduler) Run(
	groups []*entities.Group,
	rooms []*entities.Room,
	teachers []*entities.Teacher,
) (entities.Schedule, error) {
	// A single source seeded from the config feeds every draw, so a fixed
	// seed reproduces the entire run.
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	runID := uuid.NewString()

	s.log.Infof("run %v: seeding population of %v", runID, s.cfg.PopulationSize)
	population, err := s.seed(groups, rooms, teachers, rng)
	if err != nil {
		return entities.Schedule{}, err
	}

	best := lo.MaxBy(population, func(a, b individual) bool { return a.score > b.score })
	withoutImprovement := 0

	for generation := 0; generation < s.cfg.Generations; generation++ {
		children, err := s.breed(population, rooms, teachers, generation, rng)
		if err != nil {
			return entities.Schedule{}, err
		}

		pool := make([]individual, 0, len(population)+len(children))
		pool = append(pool, population...)
		pool = append(pool, children...)

		switch s.cfg.Selection {
		case SelectionGreedy:
			population = selectGreedy(pool, s.cfg.PopulationSize)
		case SelectionRain:
			population = selectRain(pool, s.cfg.PopulationSize, rng)
		}

		top := lo.MaxBy(population, func(a, b individual) bool { return a.score > b.score })
		if top.score > best.score {
			best = top
			withoutImprovement = 0
		} else {
			withoutImprovement++
		}

		scores := lo.Map(population, func(ind individual, _ int) float64 { return ind.score })
		s.log.Debugw("generation complete", map[string]any{
			"run":                 runID,
			"generation":          generation,
			"best":                best.score,
			"mean":                stat.Mean(scores, nil),
			"stddev":              stat.StdDev(scores, nil),
			"without_improvement": withoutImprovement,
		})
	}

	s.log.Infof("run %v: done after %v generations, best score %v", runID, s.cfg.Generations, best.score)
	return best.schedule, nil
}

// seed collects PopulationSize valid schedules from the randomized generator,
// giving up after PopulationSize × MaxSeedAttemptsMultiplier attempts.
func (s *geneticScheduler) seed(
	groups []*entities.Group,
	rooms []*entities.Room,
	teachers []*entities.Teacher,
	rng *rand.Rand,
) ([]individual, error) {
	budget := s.cfg.PopulationSize * s.cfg.MaxSeedAttemptsMultiplier
	population := make([]individual, 0, s.cfg.PopulationSize)

	attempts := 0
	for len(population) < s.cfg.PopulationSize && attempts < budget {
		attempts++
		schedule, ok := generate(groups, rooms, teachers, rng)
		if !ok {
			continue
		}
		population = append(population, individual{schedule: schedule, score: Score(schedule)})
	}

	if len(population) < s.cfg.PopulationSize {
		return nil, &InfeasibleProblemError{
			Required: s.cfg.PopulationSize,
			Seeded:   len(population),
			Attempts: attempts,
		}
	}
	return population, nil
}

// breed produces exactly PopulationSize constraint-valid children for one
// generation. Parents are drawn uniformly with replacement; invalid children
// are discarded silently and do not count toward the admitted pool. The loop
// aborts once PopulationSize × MaxBreedingAttemptsMultiplier attempts have
// been spent without filling the pool.
func (s *geneticScheduler) breed(
	population []individual,
	rooms []*entities.Room,
	teachers []*entities.Teacher,
	generation int,
	rng *rand.Rand,
) ([]individual, error) {
	limit := s.cfg.PopulationSize * s.cfg.MaxBreedingAttemptsMultiplier
	children := make([]individual, 0, s.cfg.PopulationSize)

	attempts := 0
	for len(children) < s.cfg.PopulationSize {
		if attempts >= limit {
			return nil, &StalledEvolutionError{
				Generation: generation,
				Admitted:   len(children),
				Attempts:   attempts,
			}
		}
		attempts++

		parentA := population[rng.Intn(len(population))].schedule
		parentB := population[rng.Intn(len(population))].schedule

		childA, childB := parentA, parentB
		if s.cfg.Crossover {
			childA, childB = crossover(parentA, parentB, rng)
		}

		for _, child := range []entities.Schedule{childA, childB} {
			if len(children) == s.cfg.PopulationSize {
				break
			}
			child = mutate(child, rooms, teachers, s.cfg.MutationSkipProbability, rng)
			if !IsValid(child) {
				continue
			}
			children = append(children, individual{schedule: child, score: Score(child)})
		}
	}
	return children, nil
}
