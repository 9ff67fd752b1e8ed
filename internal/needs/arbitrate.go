package needs

import "github.com/kbrimm/Flowers-for-Algorithm/internal/maze"

// ExitThreshold is the percentage above which a drive no longer demands
// attention. Once every drive clears it, the rat heads for the exit.
const ExitThreshold = 50

// Arbitrate picks the node serving the rat's most urgent drive. On equal
// percentages the earlier drive in the fixed order health, hunger,
// sleep, fun keeps the pick; a later drive takes it only by being
// strictly lower. A minimum above ExitThreshold overrides everything:
// the rat is satisfied and goes home.
func Arbitrate(d *Drives) maze.Node {
	pct := d.Percentages()

	dest := maze.Medicine
	low := pct.Health
	if pct.Hunger < low {
		low = pct.Hunger
		dest = maze.Food
	}
	if pct.Sleep < low {
		low = pct.Sleep
		dest = maze.Nest
	}
	if pct.Fun < low {
		low = pct.Fun
		dest = maze.Wheel
	}
	if low > ExitThreshold {
		dest = maze.Exit
	}

	return dest
}

// Satisfied reports whether every drive has cleared the exit threshold,
// i.e. arbitration would send the rat to the exit.
func Satisfied(d *Drives) bool {
	return Arbitrate(d) == maze.Exit
}
