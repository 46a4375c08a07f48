package engine

import "math"

// IsCentered reports whether pos is within epsilon of a tile centre on both axes
func IsCentered(pos Vec, epsilon float64) bool {
	c := pos.Cell()
	return math.Abs(pos.X-float64(c.X)) < epsilon &&
		math.Abs(pos.Y-float64(c.Y)) < epsilon
}

// TryCommitTurn applies the player's pending heading when the player is on a
// tile centre and the cell ahead in that heading is open. The position is
// snapped to the centre so the new motion starts without drift. A pending
// heading equal to the current one is already in effect and does not snap.
// It returns whether the pending heading was taken.
func TryCommitTurn(grid *Grid, p *Player, epsilon float64) bool {
	if p.Pending.IsZero() || p.Pending == p.Heading || !IsCentered(p.Pos, epsilon) {
		return false
	}

	center := p.Pos.Cell()
	if !grid.IsPassable(center.Add(p.Pending)) {
		return false
	}

	p.Heading = p.Pending
	p.Pos = center.Center()
	return true
}

// Advance moves the actor heading*speed*dt cells. Motion toward a wall stops
// at the centre of the last open tile, where a turn can still be committed.
// When the full move would end in a wall, the X and Y components are tried
// independently so an actor drifting slightly off-axis slides along the wall
// instead of stalling. It returns whether the position changed.
func Advance(grid *Grid, a *Actor, dt float64) bool {
	step := a.Speed * dt
	here := a.Pos.Cell()
	next := Vec{
		X: stopAtCenter(grid, here, Heading{DX: a.Heading.DX}, a.Pos.X+float64(a.Heading.DX)*step, float64(here.X)),
		Y: stopAtCenter(grid, here, Heading{DY: a.Heading.DY}, a.Pos.Y+float64(a.Heading.DY)*step, float64(here.Y)),
	}
	if next == a.Pos {
		return false
	}

	if grid.IsPassable(next.Cell()) {
		a.Pos = next
		return true
	}

	xOnly := Cell{X: Round(next.X), Y: Round(a.Pos.Y)}
	yOnly := Cell{X: Round(a.Pos.X), Y: Round(next.Y)}

	moved := false
	if next.X != a.Pos.X && grid.IsPassable(xOnly) {
		a.Pos.X = next.X
		moved = true
	}
	if next.Y != a.Pos.Y && grid.IsPassable(yOnly) {
		a.Pos.Y = next.Y
		moved = true
	}
	return moved
}

// stopAtCenter limits a move along one axis to the tile centre when the next
// tile on that axis is a wall
func stopAtCenter(grid *Grid, here Cell, axis Heading, to, center float64) float64 {
	if axis.IsZero() || grid.IsPassable(here.Add(axis)) {
		return to
	}
	if (to-center)*float64(axis.DX+axis.DY) > 0 {
		return center
	}
	return to
}
