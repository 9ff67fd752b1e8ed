// Package sim orchestrates the per-cycle state machine: arbitrate a
// destination, search the maze, decay and replenish drives.
// See design doc Section 3.4.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/needs"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/route"
)

// Rat is the simulated agent: a name, a location, and four drives.
// Location starts at the exit vestibule and is mutated only by a
// completed search.
type Rat struct {
	Name     string
	Location maze.Node
	Drives   *needs.Drives
}

// NewRat places a rat in the vestibule with randomized drives.
func NewRat(name string, rng *rand.Rand) *Rat {
	return &Rat{
		Name:     name,
		Location: maze.Exit,
		Drives:   needs.NewDrives(rng),
	}
}

// CycleResult reports what happened during one simulation cycle.
type CycleResult struct {
	Destination maze.Node     // Where arbitration sent the rat
	Distance    int           // Shortest-path distance traveled
	Percent     needs.Percent // Drive percentages before traveling
	Replenished bool          // Destination served a drive
}

// Hooks let the UI layer narrate a run without the core knowing about
// prompts or pauses.
type Hooks struct {
	// OnArbitrate runs after the destination is chosen, before travel.
	OnArbitrate func(rat *Rat, pct needs.Percent, dest maze.Node)
	// OnArrival runs after the rat reaches the cycle's destination.
	OnArrival func(rat *Rat, res CycleResult)
}

// Simulation owns the rat and the base graph for one run.
type Simulation struct {
	Base  *maze.Graph
	Rat   *Rat
	Hooks Hooks

	Cycles        int // Cycles completed so far
	TotalDistance int // Distance accumulated across all cycles
}

// Cycle runs one full simulation step: arbitrate a destination, clone
// the base graph, search, decay drives by the distance traveled, then
// replenish the drive served by the destination. The working copy never
// outlives the call.
func (s *Simulation) Cycle() (CycleResult, error) {
	pct := s.Rat.Drives.Percentages()
	dest := needs.Arbitrate(s.Rat.Drives)

	if s.Hooks.OnArbitrate != nil {
		s.Hooks.OnArbitrate(s.Rat, pct, dest)
	}

	work := s.Base.Clone()
	distance, arrived, err := route.Find(work, s.Rat.Location, dest)
	if err != nil {
		return CycleResult{}, fmt.Errorf("cycle %d: %w", s.Cycles+1, err)
	}

	s.Rat.Drives.Decay(distance)
	replenished := s.Rat.Drives.Replenish(arrived)
	s.Rat.Location = arrived
	s.Cycles++
	s.TotalDistance += distance

	res := CycleResult{
		Destination: dest,
		Distance:    distance,
		Percent:     pct,
		Replenished: replenished,
	}

	if s.Hooks.OnArrival != nil {
		s.Hooks.OnArrival(s.Rat, res)
	}

	return res, nil
}

// Run cycles until the rat is back at the exit. The first cycle always
// runs even though the rat starts there: the loop condition is checked
// after travel, and a satisfied rat exits on a zero-distance trip.
//
// Termination is bounded by the exit threshold: every cycle fully
// replenishes one drive, decay per cycle is capped by the maze
// diameter, so within a few cycles every drive clears the threshold
// and arbitration selects the exit.
func (s *Simulation) Run() error {
	for {
		res, err := s.Cycle()
		if err != nil {
			return err
		}

		slog.Debug("cycle complete",
			"cycle", s.Cycles,
			"destination", res.Destination,
			"distance", res.Distance,
			"location", s.Rat.Location,
		)

		if s.Rat.Location == maze.Exit {
			return nil
		}
	}
}
