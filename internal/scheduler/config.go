package scheduler

import "fmt"

// SelectionStrategy selects how a merged pool of parents and children is
// reduced to the next generation.
type SelectionStrategy string

const (
	// SelectionGreedy keeps the top of the merged pool by score.
	SelectionGreedy SelectionStrategy = "greedy"
	// SelectionRain keeps a small elite by score and fills the rest by
	// sampling the merged pool uniformly with replacement.
	SelectionRain SelectionStrategy = "rain"
)

type Config struct {
	// PopulationSize is the number of schedules per generation.
	PopulationSize int `json:"population_size"`
	// Generations bounds the run; there is no convergence-based early exit.
	Generations int               `json:"generations"`
	Selection   SelectionStrategy `json:"selection"`
	// MutationSkipProbability is the chance a child is passed through
	// unmutated, preserving diversity pressure.
	MutationSkipProbability float64 `json:"mutation_skip_probability"`
	// MaxSeedAttemptsMultiplier bounds seeding: at most
	// PopulationSize × multiplier generation attempts.
	MaxSeedAttemptsMultiplier int `json:"max_seed_attempts_multiplier"`
	// MaxBreedingAttemptsMultiplier bounds each generation's breeding loop:
	// at most PopulationSize × multiplier variation attempts.
	MaxBreedingAttemptsMultiplier int `json:"max_breeding_attempts_multiplier"`
	// Crossover toggles uniform recombination; disabled runs are
	// mutation-only.
	Crossover bool `json:"crossover"`
	// Seed feeds every random draw of the run; a fixed seed reproduces the
	// returned schedule.
	Seed int64 `json:"seed"`
}

func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("population size must be > 0: %v", c.PopulationSize)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0: %v", c.Generations)
	}
	if c.Selection != SelectionGreedy && c.Selection != SelectionRain {
		return fmt.Errorf("unknown selection strategy: %v", c.Selection)
	}
	if c.MutationSkipProbability < 0 || c.MutationSkipProbability > 1 {
		return fmt.Errorf("mutation skip probability must be within [0, 1]: %v", c.MutationSkipProbability)
	}
	if c.MaxSeedAttemptsMultiplier <= 0 {
		return fmt.Errorf("seed attempts multiplier must be > 0: %v", c.MaxSeedAttemptsMultiplier)
	}
	if c.MaxBreedingAttemptsMultiplier <= 0 {
		return fmt.Errorf("breeding attempts multiplier must be > 0: %v", c.MaxBreedingAttemptsMultiplier)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		PopulationSize:                50,
		Generations:                   100,
		Selection:                     SelectionGreedy,
		MutationSkipProbability:       0.3,
		MaxSeedAttemptsMultiplier:     100,
		MaxBreedingAttemptsMultiplier: 50,
		Crossover:                     true,
		Seed:                          1,
	}
}
