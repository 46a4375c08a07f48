package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	Restart() []GameEvent
	IsGameOver() bool
	GetReason() Reason
	GetScore() int
	GetLives() int
	GetRemaining() int

	// Update
	SetPendingHeading(h Heading)
	Step(dt float64) []GameEvent

	// Configuration
	GetConfig() *GameConfig
	GetGrid() *Grid
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	maze   *Maze // parsed once; never mutated
	rng    Rand
}

// NewEngine creates a new game engine on the built-in maze
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return NewEngineWithLayout(config, DefaultLayout())
}

// NewEngineWithLayout creates a new game engine on the given maze rows
func NewEngineWithLayout(config *GameConfig, layout []string) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	maze, err := ParseLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	seed := uint64(config.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	engine := &GameEngine{
		state:  newGameState(config, maze),
		config: config,
		maze:   maze,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}

	return engine, nil
}

// newGameState builds the initial session state from a parsed maze. The grid
// is copied so the template stays pristine for restarts.
func newGameState(config *GameConfig, maze *Maze) *GameState {
	opponents := make([]Opponent, len(maze.OpponentSpawns))
	for i, spawn := range maze.OpponentSpawns {
		opponents[i] = Opponent{
			Actor: Actor{
				Pos:     spawn.Center(),
				Heading: Right,
				Speed:   config.EffectiveOpponentSpeed(),
			},
			ID:    i,
			Spawn: spawn,
		}
	}

	return &GameState{
		Grid: maze.Grid.Clone(),
		Player: Player{
			Actor: Actor{
				Pos:     maze.PlayerSpawn.Center(),
				Heading: Right,
				Speed:   config.PlayerSpeed,
			},
			Pending: Right,
		},
		Opponents: opponents,
		Score:     0,
		Lives:     config.StartingLives,
		Remaining: maze.Consumables,
		Total:     maze.Consumables,
		Status:    Playing,
		Reason:    ReasonNone,
	}
}

// SetRand replaces the steering randomness source
func (e *GameEngine) SetRand(rng Rand) {
	e.rng = rng
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// GetConfig returns the tuning profile in use
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetGrid returns the live maze grid
func (e *GameEngine) GetGrid() *Grid {
	return e.state.Grid
}

// IsGameOver returns whether the session is in its terminal state
func (e *GameEngine) IsGameOver() bool {
	return e.state.IsGameOver()
}

// GetReason returns why the session ended, or ReasonNone while playing
func (e *GameEngine) GetReason() Reason {
	return e.state.Reason
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetLives returns the remaining lives
func (e *GameEngine) GetLives() int {
	return e.state.Lives
}

// GetRemaining returns the number of consumables left in the maze
func (e *GameEngine) GetRemaining() int {
	return e.state.Remaining
}

// SetPendingHeading buffers a heading for the player. It is applied at the
// next tile centre where the cell ahead is open.
func (e *GameEngine) SetPendingHeading(h Heading) {
	if h.IsZero() {
		return
	}
	e.state.Player.Pending = h
}

// Restart rebuilds the maze from the layout parsed at construction and
// resets score, lives, counters and actors to their spawn values
func (e *GameEngine) Restart() []GameEvent {
	state := newGameState(e.config, e.maze)
	e.state = state

	return []GameEvent{{
		Type:    EventRestart,
		Message: "New game",
		Cell:    state.Player.Pos.Cell(),
	}}
}

// Step advances the session by dt seconds. A session in its terminal state
// is left untouched.
func (e *GameEngine) Step(dt float64) []GameEvent {
	s := e.state
	if s.IsGameOver() {
		return nil
	}
	s.Tick++

	var events []GameEvent

	// Player
	TryCommitTurn(s.Grid, &s.Player, e.config.PlayerEpsilon)
	Advance(s.Grid, &s.Player.Actor, dt)

	playerTile := s.Player.Pos.Cell()
	if s.Grid.At(playerTile) == Consumable {
		s.Grid.Set(playerTile, Empty)
		s.Score += e.config.PickupReward
		if s.Remaining > 0 {
			s.Remaining--
		}
		events = append(events, GameEvent{
			Type:    EventPickup,
			Message: fmt.Sprintf("Score: %d", s.Score),
			Tick:    s.Tick,
			Cell:    playerTile,
		})
	}

	// Opponents
	for i := range s.Opponents {
		o := &s.Opponents[i]
		Steer(s.Grid, o, playerTile, e.config.OpponentEpsilon, e.config.Aggressiveness, e.rng)
		Advance(s.Grid, &o.Actor, dt)

		if o.Pos.Dist(s.Player.Pos) >= e.config.CollisionRadius {
			continue
		}

		events = append(events, e.loseLife(o.ID, playerTile)...)
		break
	}

	if !s.IsGameOver() && s.Remaining <= 0 {
		s.Status = GameOver
		s.Reason = ReasonCleared
		events = append(events, GameEvent{
			Type:    EventVictory,
			Message: fmt.Sprintf("Maze cleared! Score: %d", s.Score),
			Tick:    s.Tick,
			Cell:    playerTile,
		})
	}

	return events
}

// loseLife applies an opponent collision: one life is lost, and unless that
// was the last one the player is placed on its current tile and every
// opponent returns to its spawn. On the last life the actors stay where
// the catch happened.
func (e *GameEngine) loseLife(opponentID int, playerTile Cell) []GameEvent {
	s := e.state
	s.Lives--

	events := []GameEvent{{
		Type:    EventLifeLost,
		Message: fmt.Sprintf("Caught by ghost %d, %d lives left", opponentID, max(s.Lives, 0)),
		Tick:    s.Tick,
		Cell:    playerTile,
	}}

	if s.Lives <= 0 {
		s.Lives = 0
		s.Status = GameOver
		s.Reason = ReasonCaught
		events = append(events, GameEvent{
			Type:    EventGameOver,
			Message: fmt.Sprintf("Game over! Score: %d", s.Score),
			Tick:    s.Tick,
			Cell:    playerTile,
		})
		return events
	}

	s.Player.Pos = playerTile.Center()
	e.respawnOpponents()
	return events
}

// respawnOpponents returns every opponent to its recorded spawn
func (e *GameEngine) respawnOpponents() {
	for i := range e.state.Opponents {
		o := &e.state.Opponents[i]
		o.Pos = o.Spawn.Center()
		o.Heading = Right
		o.Decided = false
	}
}
