package engine

import (
	"fmt"
	"strings"
)

// Input is a discrete command delivered by the host
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputRestart
)

func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputRestart:
		return "restart"
	default:
		return "none"
	}
}

// Heading returns the heading a directional input requests
func (in Input) Heading() (Heading, bool) {
	switch in {
	case InputUp:
		return Up, true
	case InputDown:
		return Down, true
	case InputLeft:
		return Left, true
	case InputRight:
		return Right, true
	default:
		return None, false
	}
}

// ParseInput maps a key or command name to an Input. Arrow names, WASD and
// plain direction words are accepted, case-insensitively.
func ParseInput(s string) (Input, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "arrowup", "w":
		return InputUp, nil
	case "down", "arrowdown", "s":
		return InputDown, nil
	case "left", "arrowleft", "a":
		return InputLeft, nil
	case "right", "arrowright", "d":
		return InputRight, nil
	case "restart", "r":
		return InputRestart, nil
	default:
		return InputNone, fmt.Errorf("unknown input %q", s)
	}
}

// InputFor returns the directional input requesting h
func InputFor(h Heading) Input {
	switch h {
	case Up:
		return InputUp
	case Down:
		return InputDown
	case Left:
		return InputLeft
	case Right:
		return InputRight
	default:
		return InputNone
	}
}
