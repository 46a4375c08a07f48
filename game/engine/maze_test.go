package engine

import (
	"errors"
	"testing"
)

func TestParseLayout_DefaultMaze(t *testing.T) {
	maze, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatalf("Failed to parse default layout: %v", err)
	}

	if maze.Grid.Cols() != 19 || maze.Grid.Rows() != 19 {
		t.Errorf("Expected 19x19 grid, got %dx%d", maze.Grid.Cols(), maze.Grid.Rows())
	}

	if maze.PlayerSpawn != (Cell{X: 10, Y: 3}) {
		t.Errorf("Expected player spawn (10,3), got %+v", maze.PlayerSpawn)
	}

	expectedSpawns := []Cell{{X: 1, Y: 3}, {X: 17, Y: 3}, {X: 1, Y: 15}, {X: 17, Y: 15}}
	if len(maze.OpponentSpawns) != len(expectedSpawns) {
		t.Fatalf("Expected %d opponent spawns, got %d", len(expectedSpawns), len(maze.OpponentSpawns))
	}
	for i, want := range expectedSpawns {
		if maze.OpponentSpawns[i] != want {
			t.Errorf("Opponent spawn %d: expected %+v, got %+v", i, want, maze.OpponentSpawns[i])
		}
	}

	// Row 9 holds plain consumables where some layouts place two more spawns.
	for _, c := range []Cell{{X: 6, Y: 9}, {X: 10, Y: 9}} {
		if kind := maze.Grid.At(c); kind != Consumable {
			t.Errorf("Expected a consumable at %+v, got %v", c, kind)
		}
	}

	if maze.Consumables != 177 {
		t.Errorf("Expected 177 consumables, got %d", maze.Consumables)
	}
	if got := maze.Grid.Count(Consumable); got != maze.Consumables {
		t.Errorf("Consumable cells (%d) should match consumable count (%d)", got, maze.Consumables)
	}
}

func TestParseLayout_MarkersBecomeConsumables(t *testing.T) {
	maze, err := ParseLayout([]string{
		"######",
		"#P G.#",
		"######",
	})
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}

	tests := []struct {
		name     string
		cell     Cell
		expected TileKind
	}{
		{"player spawn", Cell{X: 1, Y: 1}, Consumable},
		{"empty", Cell{X: 2, Y: 1}, Empty},
		{"opponent spawn", Cell{X: 3, Y: 1}, Consumable},
		{"consumable", Cell{X: 4, Y: 1}, Consumable},
		{"wall", Cell{X: 0, Y: 0}, Wall},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := maze.Grid.At(test.cell); got != test.expected {
				t.Errorf("At(%+v): expected %v, got %v", test.cell, test.expected, got)
			}
		})
	}

	if maze.Consumables != 3 {
		t.Errorf("Expected 3 consumables (two markers plus one dot), got %d", maze.Consumables)
	}
}

func TestParseLayout_Errors(t *testing.T) {
	tests := []struct {
		name     string
		layout   []string
		expected error
	}{
		{"empty", nil, ErrEmptyLayout},
		{"empty row", []string{""}, ErrEmptyLayout},
		{"ragged", []string{"#####", "#P.#", "#####"}, ErrRaggedLayout},
		{"unknown tile", []string{"#####", "#P.X#", "#####"}, ErrUnknownTile},
		{"no player", []string{"#####", "#.G.#", "#####"}, ErrNoPlayerSpawn},
		{"two players", []string{"#####", "#P.P#", "#####"}, ErrMultiplePlayerSpawns},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseLayout(test.layout)
			if !errors.Is(err, test.expected) {
				t.Errorf("Expected error %v, got %v", test.expected, err)
			}
		})
	}
}

func TestGrid_OutOfBoundsIsImpassable(t *testing.T) {
	maze, err := ParseLayout([]string{"P."})
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}

	tests := []struct {
		name     string
		cell     Cell
		passable bool
	}{
		{"inside", Cell{X: 1, Y: 0}, true},
		{"left", Cell{X: -1, Y: 0}, false},
		{"right", Cell{X: 2, Y: 0}, false},
		{"above", Cell{X: 0, Y: -1}, false},
		{"below", Cell{X: 0, Y: 1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := maze.Grid.IsPassable(test.cell); got != test.passable {
				t.Errorf("IsPassable(%+v): expected %v, got %v", test.cell, test.passable, got)
			}
			if got := maze.Grid.IsWall(test.cell); got == test.passable {
				t.Errorf("IsWall(%+v): expected %v, got %v", test.cell, !test.passable, got)
			}
		})
	}

	if maze.Grid.Set(Cell{X: 5, Y: 5}, Empty) {
		t.Error("Set outside the grid should report false")
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	maze, err := ParseLayout(DefaultLayout())
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}

	clone := maze.Grid.Clone()
	clone.Set(maze.PlayerSpawn, Empty)

	if maze.Grid.At(maze.PlayerSpawn) != Consumable {
		t.Error("Mutating a clone should not change the original grid")
	}
}

func TestDefaultLayout_ReturnsCopy(t *testing.T) {
	first := DefaultLayout()
	first[1] = "mutated"

	if DefaultLayout()[1] == "mutated" {
		t.Error("DefaultLayout should return a fresh copy")
	}
}
