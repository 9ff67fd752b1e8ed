// Package needs models the rat's four biological drives and the
// arbitration policy that picks its next destination.
// See design doc Section 3.3.
package needs

import (
	"math/rand"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
)

// Drive maxima. Percentages are computed against these, so the drives
// carry different weights despite decaying uniformly.
const (
	FunMax    = 35
	HealthMax = 60
	HungerMax = 30
	SleepMax  = 40
)

// Drives tracks the four drive counters.
// Invariant: each counter stays in [0, its max].
type Drives struct {
	Fun    int `json:"fun"`
	Health int `json:"health"`
	Hunger int `json:"hunger"`
	Sleep  int `json:"sleep"`
}

// NewDrives rolls a fresh drive state, each counter uniform in [0, max).
// The caller supplies the random source so runs can be reproduced.
func NewDrives(rng *rand.Rand) *Drives {
	return &Drives{
		Fun:    rng.Intn(FunMax),
		Health: rng.Intn(HealthMax),
		Hunger: rng.Intn(HungerMax),
		Sleep:  rng.Intn(SleepMax),
	}
}

// Percent is the derived 0–100 view of each drive, used for comparison
// and display. Computed fresh each cycle, never stored.
type Percent struct {
	Fun    int
	Health int
	Hunger int
	Sleep  int
}

// Percentages scales each counter to a percentage of its maximum.
func (d *Drives) Percentages() Percent {
	return Percent{
		Fun:    100 * d.Fun / FunMax,
		Health: 100 * d.Health / HealthMax,
		Hunger: 100 * d.Hunger / HungerMax,
		Sleep:  100 * d.Sleep / SleepMax,
	}
}

// Decay subtracts the distance traveled from every drive, flooring each
// at zero. Travel wears on the rat no matter where it was headed.
func (d *Drives) Decay(amount int) {
	d.Fun = floor(d.Fun - amount)
	d.Health = floor(d.Health - amount)
	d.Hunger = floor(d.Hunger - amount)
	d.Sleep = floor(d.Sleep - amount)
}

func floor(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Replenish restores the drive served by the arrived node to its
// maximum and reports whether anything was replenished. The exit and
// the alcoves serve no drive.
func (d *Drives) Replenish(n maze.Node) bool {
	switch n {
	case maze.Food:
		d.Hunger = HungerMax
	case maze.Medicine:
		d.Health = HealthMax
	case maze.Nest:
		d.Sleep = SleepMax
	case maze.Wheel:
		d.Fun = FunMax
	default:
		return false
	}
	return true
}
