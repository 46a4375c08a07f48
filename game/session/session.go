package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wricardo/charminar-game/game/engine"
)

// ErrFrameInProgress is returned when Frame is called while another call
// on the same session has not returned yet
var ErrFrameInProgress = errors.New("frame already in progress")

// FrameDuration is the simulated time one frame advances the game
var FrameDuration = time.Second / 60

// Pilot chooses an input for the coming frame from the current state.
// Run consults it before every frame.
type Pilot interface {
	Next(state *engine.GameState) engine.Input
}

// Snapshot is a read-only copy of the values a host displays
type Snapshot struct {
	Score         int            `json:"score"`
	Lives         int            `json:"lives"`
	Remaining     int            `json:"remaining"`
	Total         int            `json:"total"`
	GameOver      bool           `json:"game_over"`
	Reason        engine.Reason  `json:"reason"`
	Tick          int            `json:"tick"`
	Player        engine.Vec     `json:"player"`
	PlayerHeading engine.Heading `json:"player_heading"`
	Opponents     []engine.Vec   `json:"opponents"`
	Elapsed       time.Duration  `json:"elapsed"`
}

// Session drives one game engine from a host. Inputs may be pushed from
// any goroutine; they are applied at the start of the next frame.
type Session struct {
	ID        string
	Config    *engine.GameConfig
	CreatedAt time.Time

	engine *engine.GameEngine

	inputMu sync.Mutex
	pending engine.Heading
	restart bool

	stateMu      sync.RWMutex
	elapsed      time.Duration
	frames       int
	lastAccessed time.Time

	inFrame atomic.Bool

	listenMu  sync.RWMutex
	listeners []func(engine.GameEvent)
}

// New creates a session running a fresh engine for config
func New(id string, config *engine.GameConfig) (*Session, error) {
	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}
	return NewWithEngine(id, eng), nil
}

// NewWithEngine wraps an existing engine
func NewWithEngine(id string, eng *engine.GameEngine) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Config:       eng.GetConfig(),
		CreatedAt:    now,
		lastAccessed: now,
		engine:       eng,
	}
}

// Push buffers an input for the next frame. Only the latest heading is
// kept. A restart request is honoured only if the game is over when the
// frame runs.
func (s *Session) Push(in engine.Input) {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()

	if in == engine.InputRestart {
		s.restart = true
		return
	}
	if h, ok := in.Heading(); ok {
		s.pending = h
	}
}

// OnEvent registers a listener called synchronously, in order, with every
// event a frame produces
func (s *Session) OnEvent(fn func(engine.GameEvent)) {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Frame consumes buffered input and advances the game by one fixed step.
// elapsed is wall time since the previous frame and only feeds animation.
func (s *Session) Frame(elapsed time.Duration) ([]engine.GameEvent, error) {
	if !s.inFrame.CompareAndSwap(false, true) {
		return nil, ErrFrameInProgress
	}
	defer s.inFrame.Store(false)

	s.inputMu.Lock()
	heading, restart := s.pending, s.restart
	s.pending, s.restart = engine.None, false
	s.inputMu.Unlock()

	var events []engine.GameEvent

	s.stateMu.Lock()
	s.elapsed += elapsed
	s.frames++
	s.lastAccessed = time.Now()
	if restart && s.engine.IsGameOver() {
		events = append(events, s.engine.Restart()...)
	}
	if !heading.IsZero() {
		s.engine.SetPendingHeading(heading)
	}
	events = append(events, s.engine.Step(engine.FixedStep)...)
	s.stateMu.Unlock()

	s.notify(events)
	return events, nil
}

// Run drives frames from ticks until the channel closes or ctx is done.
// When pilot is non-nil its input is pushed before every frame.
func (s *Session) Run(ctx context.Context, ticks <-chan time.Time, pilot Pilot) error {
	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}

			var elapsed time.Duration
			if !last.IsZero() {
				elapsed = now.Sub(last)
			}
			last = now

			if pilot != nil {
				var in engine.Input
				s.View(func(state *engine.GameState) {
					in = pilot.Next(state)
				})
				if in != engine.InputNone {
					s.Push(in)
				}
			}

			if _, err := s.Frame(elapsed); err != nil {
				return err
			}
		}
	}
}

// View calls fn with the live state under the session's read lock. fn must
// not retain the state or call back into the session.
func (s *Session) View(fn func(state *engine.GameState)) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	fn(s.engine.GetState())
}

// Snapshot copies the display values out of the live state
func (s *Session) Snapshot() Snapshot {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	state := s.engine.GetState()
	opponents := make([]engine.Vec, len(state.Opponents))
	for i, o := range state.Opponents {
		opponents[i] = o.Pos
	}

	return Snapshot{
		Score:         state.Score,
		Lives:         state.Lives,
		Remaining:     state.Remaining,
		Total:         state.Total,
		GameOver:      state.IsGameOver(),
		Reason:        state.Reason,
		Tick:          state.Tick,
		Player:        state.Player.Pos,
		PlayerHeading: state.Player.Heading,
		Opponents:     opponents,
		Elapsed:       s.elapsed,
	}
}

// Frames returns the number of frames run so far
func (s *Session) Frames() int {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.frames
}

// LastAccessed returns when the session last ran a frame
func (s *Session) LastAccessed() time.Time {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastAccessed
}

// Elapsed returns the accumulated wall time passed to Frame
func (s *Session) Elapsed() time.Duration {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.elapsed
}

func (s *Session) notify(events []engine.GameEvent) {
	if len(events) == 0 {
		return
	}

	s.listenMu.RLock()
	listeners := slices.Clone(s.listeners)
	s.listenMu.RUnlock()

	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}
