package service

import (
	"time"

	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/session"
)

// DefaultMaxTicks bounds a simulation run: five minutes of play at 60 ticks per second
const DefaultMaxTicks = 5 * 60 * 60

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	Frames         int                `json:"frames"`
	Snapshot       session.Snapshot   `json:"snapshot"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// SimulationOptions configures a headless run
type SimulationOptions struct {
	MaxTicks    int   `json:"max_ticks"`             // 0 means DefaultMaxTicks
	Seed        int64 `json:"seed,omitempty"`        // overrides the profile seed when non-zero
	Parallelism int   `json:"parallelism,omitempty"` // batch runs in flight; 0 means GOMAXPROCS
}

// SimulationResult summarises one headless run
type SimulationResult struct {
	RunID      string         `json:"run_id"`
	ConfigName string         `json:"config_name"`
	Seed       int64          `json:"seed"`
	Ticks      int            `json:"ticks"`
	Score      int            `json:"score"`
	Lives      int            `json:"lives"`
	Remaining  int            `json:"remaining"`
	Total      int            `json:"total"`
	GameOver   bool           `json:"game_over"`
	Reason     engine.Reason  `json:"reason"`
	Events     map[string]int `json:"events"`
	Simulated  time.Duration  `json:"simulated_ns"`
	WallTime   time.Duration  `json:"wall_time_ns"`
}

// ConfigInfo provides information about a tuning profile
type ConfigInfo struct {
	Filename       string `json:"filename"`
	ConfigID       string `json:"config_id"` // The identifier to use for session creation
	Name           string `json:"name"`      // Display name
	Description    string `json:"description"`
	StartingLives  int    `json:"starting_lives"`
	Aggressiveness int    `json:"aggressiveness"`
}
