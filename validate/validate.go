// Package validate checks tuning profile JSON files and maze layouts before
// they reach the engine. For profiles it checks:
//   - strict JSON structure (unknown fields are rejected)
//   - every engine rule enforced by engine.ValidateGameConfig
//   - that the profile plays on the default maze
//
// For layouts it checks the character set, rectangular shape, a single player
// spawn and that every consumable is reachable from it.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wricardo/charminar-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file or
// layout. Errors holds what made it invalid; Info holds the summary lines
// reported for a valid input.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
	Info   []string `json:"info,omitempty"`
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) note(format string, args ...any) {
	r.Info = append(r.Info, fmt.Sprintf(format, args...))
}

// ValidateFile loads and validates a single tuning profile
func ValidateFile(path string) ValidationResult {
	result := ValidationResult{File: filepath.Base(path), Valid: true}

	data, err := os.ReadFile(path)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	config, err := decodeStrict(data)
	if err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateGameConfig(config); err != nil {
		result.fail("%v", err)
		return result
	}

	maze := ValidateLayout(engine.DefaultLayout())
	if !maze.Valid {
		result.Valid = false
		result.Errors = append(result.Errors, maze.Errors...)
		return result
	}

	result.note("✓ Name: %s", config.Name)
	result.note("✓ Lives: %d", config.StartingLives)
	result.note("✓ Player: %.2f cells/s (%.3f per step)", config.PlayerSpeed, config.PlayerSpeed*engine.FixedStep)
	result.note("✓ Opponents: %.2f cells/s (%.3f per step)", config.EffectiveOpponentSpeed(), config.EffectiveOpponentSpeed()*engine.FixedStep)
	result.note("✓ Aggressiveness: %d/%d", config.Aggressiveness, engine.MaxAggressiveness)
	result.Info = append(result.Info, maze.Info...)

	return result
}

// ValidateDir validates every *.json file in dir, sorted by name
func ValidateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list config files: %w", err)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}

// ValidateLayout parses layout rows and checks that every consumable can be
// reached from the player spawn through passable cells.
func ValidateLayout(layout []string) ValidationResult {
	result := ValidationResult{File: "layout", Valid: true}

	maze, err := engine.ParseLayout(layout)
	if err != nil {
		result.fail("Invalid layout: %v", err)
		return result
	}

	grid := maze.Grid
	reachable := engine.ReachableFrom(grid, maze.PlayerSpawn)

	var unreachable []engine.Cell
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			c := engine.Cell{X: x, Y: y}
			if grid.At(c) != engine.Consumable {
				continue
			}
			if _, ok := reachable[c]; !ok {
				unreachable = append(unreachable, c)
			}
		}
	}

	for _, spawn := range maze.OpponentSpawns {
		if _, ok := reachable[spawn]; !ok {
			result.fail("Opponent spawn at (%d,%d) is walled off from the player", spawn.X, spawn.Y)
		}
	}

	if len(unreachable) > 0 {
		result.fail("Connectivity failure: %d/%d consumables unreachable from spawn", len(unreachable), maze.Consumables)
		for _, c := range unreachable {
			result.fail("Unreachable: consumable at (%d,%d)", c.X, c.Y)
		}
		return result
	}
	if !result.Valid {
		return result
	}

	result.note("✓ Grid: %dx%d", grid.Cols(), grid.Rows())
	result.note("✓ Consumables: %d", maze.Consumables)
	result.note("✓ Opponents: %d", len(maze.OpponentSpawns))
	result.note("✓ Connectivity: all %d consumables reachable from spawn", maze.Consumables)

	return result
}

func decodeStrict(data []byte) (*engine.GameConfig, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var config engine.GameConfig
	if err := dec.Decode(&config); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after profile object")
	}
	return &config, nil
}
