package engine

import (
	"fmt"
	"math"
)

// TileKind represents the content of a single maze cell
type TileKind uint8

const (
	Wall TileKind = iota
	Consumable
	Empty
)

// String returns the lower-case name of the tile kind
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Consumable:
		return "consumable"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Layout characters
const (
	WallChar       = '#'
	ConsumableChar = '.'
	EmptyChar      = ' '
	PlayerChar     = 'P'
	OpponentChar   = 'G'
)

const (
	// FixedStep is the simulated time, in seconds, of one update.
	FixedStep = 1.0 / 60.0

	// MinTileSize is the smallest tile edge, in pixels, a host may draw.
	MinTileSize = 10

	DefaultStartingLives       = 3
	DefaultPickupReward        = 10
	DefaultPlayerSpeed         = 6.0
	DefaultOpponentSpeed       = 5.5
	DefaultOpponentSpeedFactor = 0.98
	DefaultPlayerEpsilon       = 0.15
	DefaultOpponentEpsilon     = 0.1
	DefaultCollisionRadius     = 0.6
	DefaultAggressiveness      = 3

	// Validation constants
	MaxStartingLives   = 9
	MaxAggressiveness  = 4
	MaxCollisionRadius = 1.0
	MaxEpsilon         = 0.5
)

// Cell is an integer grid coordinate
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the neighbouring cell one step along h
func (c Cell) Add(h Heading) Cell {
	return Cell{X: c.X + h.DX, Y: c.Y + h.DY}
}

// Center returns the continuous position of the cell's centre
func (c Cell) Center() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Vec is a continuous position measured in cell units
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cell returns the cell whose centre is nearest to v
func (v Vec) Cell() Cell {
	return Cell{X: Round(v.X), Y: Round(v.Y)}
}

// Dist returns the Euclidean distance between two positions
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Round rounds half up, so a position exactly between two cells belongs to
// the one with the larger coordinate.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Heading is a cardinal unit step on the grid
type Heading struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

var (
	None  = Heading{}
	Right = Heading{DX: 1}
	Left  = Heading{DX: -1}
	Down  = Heading{DY: 1}
	Up    = Heading{DY: -1}
)

// Headings lists the four cardinal headings in steering tie-break order.
var Headings = [4]Heading{Right, Left, Down, Up}

// Reverse returns the opposite heading
func (h Heading) Reverse() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsZero reports whether h is the zero heading
func (h Heading) IsZero() bool {
	return h == None
}

func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// Actor is anything that moves through the maze
type Actor struct {
	Pos     Vec     `json:"pos"`
	Heading Heading `json:"heading"`
	Speed   float64 `json:"speed"` // cells per second
}

// Player is the user-steered actor. Pending holds the last requested heading
// until the player reaches a tile centre where it can be taken.
type Player struct {
	Actor
	Pending Heading `json:"pending"`
}

// Opponent is a chasing actor. Spawn is recorded once at parse time and
// reused for every respawn. LastDecision is the tile where the opponent
// last chose a heading; it is only meaningful when Decided is set.
type Opponent struct {
	Actor
	ID           int  `json:"id"`
	Spawn        Cell `json:"spawn"`
	LastDecision Cell `json:"last_decision"`
	Decided      bool `json:"decided"`
}

// Status is the state machine position of a session
type Status int

const (
	Playing Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "playing"
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name written by MarshalText
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*s = Playing
	case "game_over":
		*s = GameOver
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Reason records which trigger ended the session
type Reason int

const (
	ReasonNone    Reason = iota
	ReasonCleared        // every consumable eaten
	ReasonCaught         // last life lost
)

func (r Reason) String() string {
	switch r {
	case ReasonCleared:
		return "cleared"
	case ReasonCaught:
		return "caught"
	default:
		return "none"
	}
}

// MarshalText encodes the reason by name
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason name written by MarshalText
func (r *Reason) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*r = ReasonNone
	case "cleared":
		*r = ReasonCleared
	case "caught":
		*r = ReasonCaught
	default:
		return fmt.Errorf("unknown reason %q", text)
	}
	return nil
}

// Event types emitted by Step and Restart
const (
	EventPickup   = "pickup"
	EventLifeLost = "life_lost"
	EventGameOver = "game_over"
	EventVictory  = "victory"
	EventRestart  = "restart"
)

// GameEvent represents something that happened during a step
type GameEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Tick    int    `json:"tick"`
	Cell    Cell   `json:"cell"`
}

// GameState represents the complete mutable state of one session
type GameState struct {
	Grid      *Grid      `json:"-"`
	Player    Player     `json:"player"`
	Opponents []Opponent `json:"opponents"`
	Score     int        `json:"score"`
	Lives     int        `json:"lives"`
	Remaining int        `json:"remaining"`
	Total     int        `json:"total"`
	Status    Status     `json:"status"`
	Reason    Reason     `json:"reason"`
	Tick      int        `json:"tick"`
}

// IsGameOver reports whether the session reached its terminal state
func (gs *GameState) IsGameOver() bool {
	return gs.Status == GameOver
}
