package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig represents a tuning profile loaded from JSON. The maze layout is
// not part of it.
type GameConfig struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	PlayerSpeed         float64 `json:"player_speed"`
	OpponentSpeed       float64 `json:"opponent_speed"`
	OpponentSpeedFactor float64 `json:"opponent_speed_factor"`
	PlayerEpsilon       float64 `json:"player_epsilon"`
	OpponentEpsilon     float64 `json:"opponent_epsilon"`
	StartingLives       int     `json:"starting_lives"`
	PickupReward        int     `json:"pickup_reward"`
	CollisionRadius     float64 `json:"collision_radius"`
	Aggressiveness      int     `json:"aggressiveness"`
	Seed                int64   `json:"seed,omitempty"` // 0 seeds from the clock
}

// DefaultConfig returns the classic tuning
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:                "classic",
		Description:         "Arcade defaults: three lives, four ghosts that mostly chase",
		PlayerSpeed:         DefaultPlayerSpeed,
		OpponentSpeed:       DefaultOpponentSpeed,
		OpponentSpeedFactor: DefaultOpponentSpeedFactor,
		PlayerEpsilon:       DefaultPlayerEpsilon,
		OpponentEpsilon:     DefaultOpponentEpsilon,
		StartingLives:       DefaultStartingLives,
		PickupReward:        DefaultPickupReward,
		CollisionRadius:     DefaultCollisionRadius,
		Aggressiveness:      DefaultAggressiveness,
	}
}

// EffectiveOpponentSpeed is the speed opponents actually move at
func (c *GameConfig) EffectiveOpponentSpeed() float64 {
	return c.OpponentSpeed * c.OpponentSpeedFactor
}

// ValidateGameConfig validates a tuning profile for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	if config.PlayerEpsilon <= 0 || config.PlayerEpsilon >= MaxEpsilon {
		return fmt.Errorf("config validation: player_epsilon must be in (0, %.1f), got %v", MaxEpsilon, config.PlayerEpsilon)
	}
	if config.OpponentEpsilon <= 0 || config.OpponentEpsilon >= MaxEpsilon {
		return fmt.Errorf("config validation: opponent_epsilon must be in (0, %.1f), got %v", MaxEpsilon, config.OpponentEpsilon)
	}

	if config.PlayerSpeed <= 0 {
		return fmt.Errorf("config validation: player_speed must be positive, got %v", config.PlayerSpeed)
	}
	if config.OpponentSpeed <= 0 {
		return fmt.Errorf("config validation: opponent_speed must be positive, got %v", config.OpponentSpeed)
	}
	if config.OpponentSpeedFactor <= 0 || config.OpponentSpeedFactor > 1 {
		return fmt.Errorf("config validation: opponent_speed_factor must be in (0, 1], got %v", config.OpponentSpeedFactor)
	}

	// An actor moving more than the width of the centring window per step
	// can skip over it and never turn.
	if step := config.PlayerSpeed * FixedStep; step >= 2*config.PlayerEpsilon {
		return fmt.Errorf("config validation: player_speed %v moves %.3f cells per step, must be below %.3f (2 x player_epsilon)",
			config.PlayerSpeed, step, 2*config.PlayerEpsilon)
	}
	if step := config.EffectiveOpponentSpeed() * FixedStep; step >= 2*config.OpponentEpsilon {
		return fmt.Errorf("config validation: opponent speed %v moves %.3f cells per step, must be below %.3f (2 x opponent_epsilon)",
			config.EffectiveOpponentSpeed(), step, 2*config.OpponentEpsilon)
	}
	if config.EffectiveOpponentSpeed() >= config.PlayerSpeed {
		return fmt.Errorf("config validation: opponents (%v) must be slower than the player (%v)",
			config.EffectiveOpponentSpeed(), config.PlayerSpeed)
	}

	if config.StartingLives < 1 || config.StartingLives > MaxStartingLives {
		return fmt.Errorf("config validation: starting_lives must be between 1 and %d, got %d", MaxStartingLives, config.StartingLives)
	}
	if config.PickupReward < 1 {
		return fmt.Errorf("config validation: pickup_reward must be at least 1, got %d", config.PickupReward)
	}
	if config.CollisionRadius <= 0 || config.CollisionRadius > MaxCollisionRadius {
		return fmt.Errorf("config validation: collision_radius must be in (0, %.1f], got %v", MaxCollisionRadius, config.CollisionRadius)
	}
	if config.Aggressiveness < 1 || config.Aggressiveness > MaxAggressiveness {
		return fmt.Errorf("config validation: aggressiveness must be between 1 and %d, got %d", MaxAggressiveness, config.Aggressiveness)
	}

	return nil
}

// LoadGameConfig loads a tuning profile from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}

	return &config, nil
}
