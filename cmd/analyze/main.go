// Command analyze prints quick, human-readable heuristics about maze layouts.
// With no arguments it analyzes the built-in maze; otherwise each argument is
// a text file holding one layout row per line. It summarizes dimensions,
// consumables, spawns and dead ends, and highlights consumables or opponent
// spawns that cannot be reached from the player spawn.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wricardo/charminar-game/game/engine"
)

// Analysis is the summary computed for one layout
type Analysis struct {
	Cols, Rows     int
	Consumables    int
	PlayerSpawn    engine.Cell
	OpponentSpawns []engine.Cell
	DeadEnds       []engine.Cell

	// Unreachable lists consumables the player can never eat
	Unreachable []engine.Cell
	// Furthest is the reachable consumable with the longest path from spawn
	Furthest     engine.Cell
	FurthestDist int
	// NearestOpponent is the shortest path from spawn to any opponent spawn,
	// or -1 when no opponent can reach the player
	NearestOpponent int
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("\n=== Analyzing built-in maze ===\n")
		if err := run(os.Stdout, engine.DefaultLayout()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	failed := false
	for _, path := range os.Args[1:] {
		fmt.Printf("\n=== Analyzing %s ===\n", path)
		layout, err := readLayout(path)
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			failed = true
			continue
		}
		if err := run(os.Stdout, layout); err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(w io.Writer, layout []string) error {
	a, err := analyzeLayout(layout)
	if err != nil {
		return err
	}
	printAnalysis(w, a)
	return nil
}

// readLayout reads layout rows from a text file, ignoring trailing blank lines
func readLayout(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

func analyzeLayout(layout []string) (*Analysis, error) {
	maze, err := engine.ParseLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	grid := maze.Grid
	dist := engine.ReachableFrom(grid, maze.PlayerSpawn)

	a := &Analysis{
		Cols:            grid.Cols(),
		Rows:            grid.Rows(),
		Consumables:     maze.Consumables,
		PlayerSpawn:     maze.PlayerSpawn,
		OpponentSpawns:  maze.OpponentSpawns,
		DeadEnds:        engine.DeadEnds(grid),
		NearestOpponent: -1,
	}

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			c := engine.Cell{X: x, Y: y}
			if grid.At(c) != engine.Consumable {
				continue
			}
			d, ok := dist[c]
			if !ok {
				a.Unreachable = append(a.Unreachable, c)
				continue
			}
			if d > a.FurthestDist {
				a.Furthest = c
				a.FurthestDist = d
			}
		}
	}

	for _, spawn := range maze.OpponentSpawns {
		if d, ok := dist[spawn]; ok && (a.NearestOpponent < 0 || d < a.NearestOpponent) {
			a.NearestOpponent = d
		}
	}

	return a, nil
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Grid Size: %d x %d\n", a.Cols, a.Rows)
	fmt.Fprintf(w, "Player Spawn: (%d, %d)\n", a.PlayerSpawn.X, a.PlayerSpawn.Y)
	fmt.Fprintf(w, "Opponent Spawns: %d\n", len(a.OpponentSpawns))
	fmt.Fprintf(w, "Total Consumables: %d\n", a.Consumables)
	fmt.Fprintf(w, "Dead Ends: %d\n", len(a.DeadEnds))

	if a.NearestOpponent >= 0 {
		fmt.Fprintf(w, "Nearest Opponent: %d steps from spawn\n", a.NearestOpponent)
	} else if len(a.OpponentSpawns) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: no opponent can reach the player\n")
	}

	if a.FurthestDist > 0 {
		fmt.Fprintf(w, "Furthest Consumable: (%d, %d) at %d steps\n", a.Furthest.X, a.Furthest.Y, a.FurthestDist)
	}

	if len(a.Unreachable) > 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: %d consumables are unreachable from spawn!\n", len(a.Unreachable))
		for i, c := range a.Unreachable {
			if i < 5 { // Show first 5 unreachable consumables
				fmt.Fprintf(w, "   Unreachable: (%d, %d)\n", c.X, c.Y)
			}
		}
		if len(a.Unreachable) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(a.Unreachable)-5)
		}
	} else {
		fmt.Fprintf(w, "✅ All consumables are reachable from spawn\n")
	}
}
