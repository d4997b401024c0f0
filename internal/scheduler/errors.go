package scheduler

import "fmt"

// InfeasibleProblemError reports that seeding exhausted its attempt budget
// before collecting a full population of valid schedules.
type InfeasibleProblemError struct {
	Required int
	Seeded   int
	Attempts int
}

func (e *InfeasibleProblemError) Error() string {
	return fmt.Sprintf("could not seed %v valid schedules within %v attempts (got %v)", e.Required, e.Attempts, e.Seeded)
}

// StalledEvolutionError reports that one generation's breeding loop exceeded
// its attempt bound before admitting a full set of valid children.
type StalledEvolutionError struct {
	Generation int
	Admitted   int
	Attempts   int
}

func (e *StalledEvolutionError) Error() string {
	return fmt.Sprintf("generation %v stalled: %v valid children after %v breeding attempts", e.Generation, e.Admitted, e.Attempts)
}
