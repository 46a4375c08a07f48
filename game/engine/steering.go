package engine

import (
	"cmp"
	"math"
	"slices"
)

// Rand is the source of randomness used by opponent steering.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// SteeringCandidates returns the headings an opponent standing on from may
// take next. The exact reverse of current is excluded unless it is the only
// open cell, so opponents never oscillate but also never stall in a dead end.
func SteeringCandidates(grid *Grid, from Cell, current Heading) []Heading {
	back := current.Reverse()
	candidates := make([]Heading, 0, len(Headings))
	for _, h := range Headings {
		if h == back && !current.IsZero() {
			continue
		}
		if grid.IsPassable(from.Add(h)) {
			candidates = append(candidates, h)
		}
	}

	if len(candidates) == 0 && !current.IsZero() && grid.IsPassable(from.Add(back)) {
		candidates = append(candidates, back)
	}
	return candidates
}

// RankCandidates sorts candidates by ascending Manhattan distance from the
// resulting cell to target. Ties keep the Headings order.
func RankCandidates(candidates []Heading, from, target Cell) {
	slices.SortStableFunc(candidates, func(a, b Heading) int {
		return cmp.Compare(
			ManhattanDistance(from.Add(a), target),
			ManhattanDistance(from.Add(b), target),
		)
	})
}

// PickIndex maps a uniform draw r in [0,1) onto one of the best
// aggressiveness-many ranked candidates. An aggressiveness of 1 always picks
// the best candidate; larger values spread choices over more of the list.
func PickIndex(r float64, aggressiveness, n int) int {
	if n <= 0 {
		return 0
	}
	if aggressiveness < 1 {
		aggressiveness = 1
	}
	idx := int(math.Floor(r * float64(aggressiveness)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Steer chooses a new heading for an opponent standing on a tile centre.
// Off-centre opponents keep their heading, and an opponent decides at most
// once per tile it crosses. When a decision is made the opponent is snapped
// to the centre first. It returns whether a decision was made.
func Steer(grid *Grid, o *Opponent, target Cell, epsilon float64, aggressiveness int, rng Rand) bool {
	if !IsCentered(o.Pos, epsilon) {
		return false
	}

	center := o.Pos.Cell()
	if o.Decided && o.LastDecision == center {
		return false
	}
	o.Pos = center.Center()
	o.LastDecision = center
	o.Decided = true

	candidates := SteeringCandidates(grid, center, o.Heading)
	if len(candidates) == 0 {
		return true
	}

	RankCandidates(candidates, center, target)
	o.Heading = candidates[PickIndex(rng.Float64(), aggressiveness, len(candidates))]
	return true
}
