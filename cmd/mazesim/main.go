// Command mazesim runs the Flowers for Algorithm maze simulation: a rat
// with randomized drives navigates a weighted maze by shortest path
// until every drive is satisfied, then heads for the exit.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/config"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/journal"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/needs"
	"github.com/kbrimm/Flowers-for-Algorithm/internal/sim"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	// ── Maze ──────────────────────────────────────────────────────────
	base, err := maze.Load(cfg.GraphPath)
	if err != nil {
		slog.Error("failed to load graph", "path", cfg.GraphPath, "error", err)
		fmt.Printf("Failed to load graph. Program unable to continue.\n")
		fmt.Printf("Check the location of %s and try again.\n", cfg.GraphPath)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// ── Journal (optional) ────────────────────────────────────────────
	var db *journal.DB
	if cfg.JournalPath != "" {
		db, err = journal.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("journal opened", "path", cfg.JournalPath)
	}

	// ── Introductions ─────────────────────────────────────────────────
	in := bufio.NewReader(os.Stdin)

	fmt.Println("~~ Flowers for Algorithm ~~")
	fmt.Println()
	fmt.Println("The scientist places the rat in the vestibule of a maze.")
	fmt.Println("The rat is a thinly veiled metaphor for the tenuous nature of human existence.")
	name := prompt(in, "What is the rat's name?")

	rat := sim.NewRat(name, rng)
	slog.Info("run starting", "rat", name, "seed", seed,
		"fun", rat.Drives.Fun, "health", rat.Drives.Health,
		"hunger", rat.Drives.Hunger, "sleep", rat.Drives.Sleep)

	var runID string
	if db != nil {
		runID, err = db.StartRun(name, seed)
		if err != nil {
			slog.Error("failed to record run", "error", err)
			os.Exit(1)
		}
	}

	// ── Simulation ────────────────────────────────────────────────────
	s := &sim.Simulation{Base: base, Rat: rat}
	s.Hooks = sim.Hooks{
		OnArbitrate: func(rat *sim.Rat, pct needs.Percent, dest maze.Node) {
			fmt.Printf("%s is currently feeling:\n", rat.Name)
			fmt.Printf("\t%d%% entertained\n", pct.Fun)
			fmt.Printf("\t%d%% healthy\n", pct.Health)
			fmt.Printf("\t%d%% nourished\n", pct.Hunger)
			fmt.Printf("\t%d%% rested\n", pct.Sleep)
			pause(in)
			fmt.Println(destinationLine(rat.Name, dest))
		},
		OnArrival: func(rat *sim.Rat, res sim.CycleResult) {
			fmt.Printf("\tTraveling to node %c.\n", rat.Location.Label())
			fmt.Printf("\tTraveled a total of %d distance units.\n", res.Distance)
			for _, line := range arrivalLines(rat.Name, rat.Location) {
				fmt.Println(line)
			}
			if db != nil {
				if err := db.RecordCycle(runID, s.Cycles, res.Destination, res.Distance, res.Percent); err != nil {
					slog.Warn("failed to record cycle", "cycle", s.Cycles, "error", err)
				}
			}
		},
	}

	if err := s.Run(); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	if db != nil {
		if err := db.FinishRun(runID, s.Cycles, s.TotalDistance); err != nil {
			slog.Warn("failed to finalize run", "error", err)
		}
	}

	slog.Info("run complete", "cycles", s.Cycles, "total_distance", s.TotalDistance)

	fmt.Printf("The scientist removes %s from the maze and jots in her notebook:\n", name)
	fmt.Println("\t'Science accomplished.'")
	fmt.Println("THE END")
	pause(in)
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func prompt(in *bufio.Reader, question string) string {
	fmt.Printf("%s ", question)
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return "Algernon"
	}
	return line
}

func pause(in *bufio.Reader) {
	fmt.Println("Press enter to continue.")
	in.ReadString('\n')
}

// destinationLine narrates where the rat decided to go and why.
func destinationLine(name string, dest maze.Node) string {
	switch dest {
	case maze.Exit:
		return name + " is feeling satisfied and is going to the exit for release."
	case maze.Food:
		return name + " is hungry and is going to the food bowl."
	case maze.Medicine:
		return name + " is feeling sick and is going to the medicine dispenser."
	case maze.Nest:
		return name + " is sleepy and is going to the nest for a nap."
	case maze.Wheel:
		return name + " is bored and is going to the exercise wheel."
	}
	return ""
}

// arrivalLines narrates what the rat found when it got there.
func arrivalLines(name string, loc maze.Node) []string {
	switch loc {
	case maze.Food:
		return []string{
			name + " has reached the food bowl.",
			name + " finds a tasty kibble to chew on. Mmmm, lab diets.",
		}
	case maze.Medicine:
		return []string{
			name + " has reached the medical pod.",
			"YUCK! That medicine is disgusting, but " + name + " feels much better now.",
		}
	case maze.Nest:
		return []string{
			name + " has reached the rat's nest.",
			"Off to dreamland!",
			name + " is bright-eyed and ready to go after that refreshing nap!",
		}
	case maze.Wheel:
		return []string{
			name + " has reached the exercise wheel.",
			"The wheel goes squeak, squeak, squeak, squeak, squeak, squeak.",
		}
	}
	return nil
}
