package needs

import (
	"testing"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
)

func TestArbitrate(t *testing.T) {
	cases := []struct {
		name string
		d    Drives
		want maze.Node
	}{
		{
			// Percentages: fun 85, health 91, hunger 16, sleep 87.
			name: "hunger lowest",
			d:    Drives{Fun: 30, Health: 55, Hunger: 5, Sleep: 35},
			want: maze.Food,
		},
		{
			// Percentages: fun 85, health 91, hunger 83, sleep 87, all past
			// the threshold, so the nominal low (hunger) is overridden.
			name: "all satisfied",
			d:    Drives{Fun: 30, Health: 55, Hunger: 25, Sleep: 35},
			want: maze.Exit,
		},
		{
			name: "health lowest",
			d:    Drives{Fun: 30, Health: 10, Hunger: 25, Sleep: 35},
			want: maze.Medicine,
		},
		{
			name: "sleep lowest",
			d:    Drives{Fun: 30, Health: 55, Hunger: 25, Sleep: 10},
			want: maze.Nest,
		},
		{
			name: "fun lowest",
			d:    Drives{Fun: 5, Health: 55, Hunger: 25, Sleep: 35},
			want: maze.Wheel,
		},
		{
			// fun 0%, health 0%, hunger 0%, sleep 0%: health holds the
			// pick on an all-way tie.
			name: "all zero prefers health",
			d:    Drives{},
			want: maze.Medicine,
		},
		{
			// hunger 40% vs sleep 40%: hunger scans first and sleep is not
			// strictly lower, so the food bowl wins.
			name: "hunger beats sleep on tie",
			d:    Drives{Fun: 30, Health: 55, Hunger: 12, Sleep: 16},
			want: maze.Food,
		},
		{
			// health 50% with everything else higher: 50 is not strictly
			// above the threshold, so the rat still seeks medicine.
			name: "threshold is exclusive",
			d:    Drives{Fun: 30, Health: 30, Hunger: 25, Sleep: 35},
			want: maze.Medicine,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Arbitrate(&tc.d); got != tc.want {
				t.Errorf("Arbitrate(%+v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

// Arbitrate must return Exit exactly when every percentage clears the
// threshold, for every reachable drive state. The state space is small
// enough to sweep a coarse grid of it.
func TestArbitrateExitIffAllAboveThreshold(t *testing.T) {
	for fun := 0; fun <= FunMax; fun += 5 {
		for health := 0; health <= HealthMax; health += 5 {
			for hunger := 0; hunger <= HungerMax; hunger += 5 {
				for sleep := 0; sleep <= SleepMax; sleep += 5 {
					d := Drives{Fun: fun, Health: health, Hunger: hunger, Sleep: sleep}
					pct := d.Percentages()
					allAbove := pct.Fun > ExitThreshold && pct.Health > ExitThreshold &&
						pct.Hunger > ExitThreshold && pct.Sleep > ExitThreshold

					got := Arbitrate(&d)
					if allAbove != (got == maze.Exit) {
						t.Fatalf("Arbitrate(%+v) = %v with percentages %+v", d, got, pct)
					}
					if Satisfied(&d) != allAbove {
						t.Fatalf("Satisfied(%+v) = %v, want %v", d, !allAbove, allAbove)
					}
				}
			}
		}
	}
}

func TestArbitrateNeverTargetsAlcoves(t *testing.T) {
	for health := 0; health <= HealthMax; health++ {
		d := Drives{Fun: 1, Health: health, Hunger: 1, Sleep: 1}
		switch Arbitrate(&d) {
		case maze.AlcoveA, maze.AlcoveB:
			t.Fatalf("Arbitrate(%+v) picked a corridor junction", d)
		}
	}
}
