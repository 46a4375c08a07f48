package service

import (
	"github.com/wricardo/charminar-game/game/engine"
)

// Autopilot steers the player toward the nearest consumable. Paths through
// cells within AvoidRadius of an opponent are skipped unless no other path
// exists.
type Autopilot struct {
	AvoidRadius int
}

// NewAutopilot returns an autopilot that keeps one cell away from opponents
func NewAutopilot() *Autopilot {
	return &Autopilot{AvoidRadius: 1}
}

// Next implements session.Pilot
func (a *Autopilot) Next(state *engine.GameState) engine.Input {
	start := state.Player.Pos.Cell()

	h, ok := firstStepToConsumable(state.Grid, start, a.dangerCells(state))
	if !ok {
		h, ok = firstStepToConsumable(state.Grid, start, nil)
	}
	if !ok {
		return engine.InputNone
	}
	return engine.InputFor(h)
}

// dangerCells returns every cell within AvoidRadius steps of an opponent
func (a *Autopilot) dangerCells(state *engine.GameState) map[engine.Cell]bool {
	danger := make(map[engine.Cell]bool)
	for _, o := range state.Opponents {
		at := o.Pos.Cell()
		for dy := -a.AvoidRadius; dy <= a.AvoidRadius; dy++ {
			for dx := -a.AvoidRadius; dx <= a.AvoidRadius; dx++ {
				c := engine.Cell{X: at.X + dx, Y: at.Y + dy}
				if engine.ManhattanDistance(at, c) <= a.AvoidRadius {
					danger[c] = true
				}
			}
		}
	}
	return danger
}

// firstStepToConsumable runs a breadth-first search from start and returns
// the first heading on a shortest path to a consumable other than start.
// Cells in blocked are never entered.
func firstStepToConsumable(grid *engine.Grid, start engine.Cell, blocked map[engine.Cell]bool) (engine.Heading, bool) {
	first := map[engine.Cell]engine.Heading{start: engine.None}
	queue := []engine.Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, h := range engine.Headings {
			next := cur.Add(h)
			if _, seen := first[next]; seen || !grid.IsPassable(next) || blocked[next] {
				continue
			}

			step := first[cur]
			if cur == start {
				step = h
			}
			if grid.At(next) == engine.Consumable {
				return step, true
			}

			first[next] = step
			queue = append(queue, next)
		}
	}

	return engine.None, false
}
